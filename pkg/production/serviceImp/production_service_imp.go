package serviceImp

import (
	"context"
	"fmt"
	"math"

	"cropbook/entities"
	"cropbook/pkg/apperror"
	cropRepo "cropbook/pkg/crop/repository"
	farmerRepo "cropbook/pkg/farmer/repository"
	repo "cropbook/pkg/production/repository"
	"cropbook/pkg/production/service"
)

var missingPrerequisites = []string{
	"Please add at least one farmer and one crop before recording production.",
	"Use the 'Add Farmer' and 'Add Crop' pages in the sidebar.",
}

type productionSvc struct {
	r       repo.ProductionRepository
	farmers farmerRepo.FarmerRepository
	crops   cropRepo.CropRepository
}

func NewProductionService(r repo.ProductionRepository, f farmerRepo.FarmerRepository, c cropRepo.CropRepository) service.ProductionService {
	return &productionSvc{r: r, farmers: f, crops: c}
}

func (s *productionSvc) Options(ctx context.Context) (*service.FormOptions, error) {
	farmers, err := s.farmers.List(ctx)
	if err != nil {
		return nil, apperror.Storage("load farmers", err)
	}
	crops, err := s.crops.List(ctx)
	if err != nil {
		return nil, apperror.Storage("load crops", err)
	}
	if len(farmers) == 0 || len(crops) == 0 {
		return nil, &apperror.PrerequisiteError{Messages: missingPrerequisites}
	}
	return &service.FormOptions{Farmers: farmers, Crops: crops}, nil
}

func (s *productionSvc) Record(ctx context.Context, in service.RecordInput) (*entities.Production, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if in.FarmerID == 0 {
		return nil, apperror.Validation("farmer_id", "Please select a farmer.")
	}
	if in.CropID == 0 {
		return nil, apperror.Validation("crop_id", "Please select a crop.")
	}
	if in.Year < service.MinYear || in.Year > service.MaxYear {
		return nil, apperror.Validation("year", fmt.Sprintf("Year must be between %d and %d.", service.MinYear, service.MaxYear))
	}
	if math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) || in.Quantity < 0 {
		return nil, apperror.Validation("quantity", "Quantity must be zero or more tons.")
	}

	p := &entities.Production{FarmerID: in.FarmerID, CropID: in.CropID, Year: in.Year, Quantity: in.Quantity}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, apperror.Storage("record production data", err)
	}
	return p, nil
}

// ready blocks recording until at least one farmer and one crop exist.
func (s *productionSvc) ready(ctx context.Context) error {
	nf, err := s.farmers.Count(ctx)
	if err != nil {
		return apperror.Storage("load farmers", err)
	}
	nc, err := s.crops.Count(ctx)
	if err != nil {
		return apperror.Storage("load crops", err)
	}
	if nf == 0 || nc == 0 {
		return &apperror.PrerequisiteError{Messages: missingPrerequisites}
	}
	return nil
}
