package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropbook/entities"
	"cropbook/pkg/production/repository"
)

type productionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductionRepository { return &productionRepo{db} }

func (r *productionRepo) Create(ctx context.Context, p *entities.Production) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productionRepo) ListByFarmer(ctx context.Context, farmerID uint) ([]entities.ReportRow, error) {
	out := []entities.ReportRow{}
	err := r.db.WithContext(ctx).
		Table("production").
		Select("crops.name AS crop_name, production.year AS year, production.quantity AS quantity").
		Joins("JOIN crops ON production.crop_id = crops.id").
		Where("production.farmer_id = ?", farmerID).
		Order("production.year DESC, crops.name ASC, production.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
