package service

import (
	"context"

	"cropbook/entities"
)

const (
	MinYear = 1900
	MaxYear = 2100
)

// FormOptions are the choices offered by the record form.
type FormOptions struct {
	Farmers []entities.Farmer `json:"farmers"`
	Crops   []entities.Crop   `json:"crops"`
}

type RecordInput struct {
	FarmerID uint    `json:"farmer_id"`
	CropID   uint    `json:"crop_id"`
	Year     int     `json:"year"`
	Quantity float64 `json:"quantity"`
}

type ProductionService interface {
	Options(ctx context.Context) (*FormOptions, error)
	Record(ctx context.Context, in RecordInput) (*entities.Production, error)
}
