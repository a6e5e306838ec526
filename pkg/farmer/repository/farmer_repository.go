package repository

import (
	"context"
	"errors"

	"cropbook/entities"
)

var ErrNotFound = errors.New("farmer not found")

type FarmerRepository interface {
	Create(ctx context.Context, f *entities.Farmer) error
	List(ctx context.Context) ([]entities.Farmer, error)
	FindByID(ctx context.Context, id uint) (*entities.Farmer, error)
	Count(ctx context.Context) (int64, error)
}
