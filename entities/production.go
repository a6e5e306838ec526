package entities

type Production struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	FarmerID uint    `json:"farmer_id"`
	CropID   uint    `json:"crop_id"`
	Year     int     `json:"year"`
	Quantity float64 `json:"quantity"` // tons
}

func (Production) TableName() string { return "production" }

// ReportRow is one line of a farmer's production report.
type ReportRow struct {
	Serial   int     `gorm:"-" json:"serial"`
	CropName string  `json:"crop"`
	Year     int     `json:"year"`
	Quantity float64 `json:"quantity"`
}

type Report struct {
	Farmer Farmer      `json:"farmer"`
	Rows   []ReportRow `json:"rows"`
}
