package repository

import (
	"context"
	"errors"

	"cropbook/entities"
)

// ErrDuplicate is returned by Create when a crop with the same name exists.
var ErrDuplicate = errors.New("crop already exists")

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	List(ctx context.Context) ([]entities.Crop, error)
	Count(ctx context.Context) (int64, error)
}
