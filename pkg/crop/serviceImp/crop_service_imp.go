package serviceImp

import (
	"context"
	"errors"
	"strings"

	"cropbook/entities"
	"cropbook/pkg/apperror"
	repo "cropbook/pkg/crop/repository"
	"cropbook/pkg/crop/service"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) Register(ctx context.Context, in service.RegisterInput) (*entities.Crop, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.Validation("name", "Please enter crop name.")
	}
	c := &entities.Crop{Name: name}
	if err := s.r.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, &apperror.DuplicateError{Entity: "Crop", Value: name}
		}
		return nil, apperror.Storage("add crop", err)
	}
	return c, nil
}

func (s *cropSvc) List(ctx context.Context) ([]entities.Crop, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, apperror.Storage("load crops", err)
	}
	return out, nil
}
