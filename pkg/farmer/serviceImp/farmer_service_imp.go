package serviceImp

import (
	"context"
	"strings"

	"cropbook/entities"
	"cropbook/pkg/apperror"
	repo "cropbook/pkg/farmer/repository"
	"cropbook/pkg/farmer/service"
)

type farmerSvc struct{ r repo.FarmerRepository }

func NewFarmerService(r repo.FarmerRepository) service.FarmerService { return &farmerSvc{r} }

func (s *farmerSvc) Register(ctx context.Context, in service.RegisterInput) (*entities.Farmer, error) {
	name := strings.TrimSpace(in.Name)
	village := strings.TrimSpace(in.Village)
	if name == "" || village == "" {
		return nil, apperror.Validation("name", "Please enter both farmer name and village.")
	}
	f := &entities.Farmer{Name: name, Village: village}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, apperror.Storage("add farmer", err)
	}
	return f, nil
}

func (s *farmerSvc) List(ctx context.Context) ([]entities.Farmer, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, apperror.Storage("load farmers", err)
	}
	return out, nil
}
