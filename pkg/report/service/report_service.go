package service

import (
	"context"
	"io"

	"cropbook/entities"
)

type ReportService interface {
	// Farmers lists the farmers a report can be shown for.
	Farmers(ctx context.Context) ([]entities.Farmer, error)
	ForFarmer(ctx context.Context, farmerID uint) (*entities.Report, error)
	WriteXLSX(ctx context.Context, farmerID uint, w io.Writer) error
}
