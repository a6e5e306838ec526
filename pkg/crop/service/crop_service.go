package service

import (
	"context"

	"cropbook/entities"
)

type RegisterInput struct {
	Name string `json:"name" form:"name"`
}

type CropService interface {
	Register(ctx context.Context, in RegisterInput) (*entities.Crop, error)
	List(ctx context.Context) ([]entities.Crop, error)
}
