package service

import (
	"context"

	"cropbook/entities"
)

type RegisterInput struct {
	Name    string `json:"name" form:"name"`
	Village string `json:"village" form:"village"`
}

type FarmerService interface {
	Register(ctx context.Context, in RegisterInput) (*entities.Farmer, error)
	List(ctx context.Context) ([]entities.Farmer, error)
}
