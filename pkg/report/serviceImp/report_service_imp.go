package serviceImp

import (
	"context"
	"errors"
	"io"

	"cropbook/entities"
	"cropbook/pkg/apperror"
	farmerRepo "cropbook/pkg/farmer/repository"
	prodRepo "cropbook/pkg/production/repository"
	"cropbook/pkg/report/render"
	"cropbook/pkg/report/service"
)

type reportSvc struct {
	farmers farmerRepo.FarmerRepository
	prod    prodRepo.ProductionRepository
}

func NewReportService(f farmerRepo.FarmerRepository, p prodRepo.ProductionRepository) service.ReportService {
	return &reportSvc{farmers: f, prod: p}
}

func (s *reportSvc) Farmers(ctx context.Context) ([]entities.Farmer, error) {
	out, err := s.farmers.List(ctx)
	if err != nil {
		return nil, apperror.Storage("load farmers", err)
	}
	if len(out) == 0 {
		return nil, &apperror.PrerequisiteError{Messages: []string{
			"No farmers found. Please add farmers using the 'Add Farmer' page.",
		}}
	}
	return out, nil
}

func (s *reportSvc) ForFarmer(ctx context.Context, farmerID uint) (*entities.Report, error) {
	if farmerID == 0 {
		return nil, apperror.Validation("farmer_id", "Please select a farmer.")
	}
	f, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, farmerRepo.ErrNotFound) {
			return nil, apperror.Validation("farmer_id", "Please select a farmer.")
		}
		return nil, apperror.Storage("load farmer", err)
	}
	rows, err := s.prod.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, apperror.Storage("load production data", err)
	}
	for i := range rows {
		rows[i].Serial = i + 1
	}
	return &entities.Report{Farmer: *f, Rows: rows}, nil
}

func (s *reportSvc) WriteXLSX(ctx context.Context, farmerID uint, w io.Writer) error {
	rep, err := s.ForFarmer(ctx, farmerID)
	if err != nil {
		return err
	}
	if err := render.XLSX(w, rep); err != nil {
		return apperror.Storage("build report workbook", err)
	}
	return nil
}
