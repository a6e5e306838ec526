package entities

type Crop struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}
