package repository

import (
	"context"

	"cropbook/entities"
)

type ProductionRepository interface {
	Create(ctx context.Context, p *entities.Production) error
	// ListByFarmer joins crop names, newest year first then crop name.
	ListByFarmer(ctx context.Context, farmerID uint) ([]entities.ReportRow, error)
}
