package entities

import "fmt"

type Farmer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Village string `json:"village"`
}

// Label is how a farmer is shown in selectors and report titles.
func (f Farmer) Label() string { return fmt.Sprintf("%s (%s)", f.Name, f.Village) }
