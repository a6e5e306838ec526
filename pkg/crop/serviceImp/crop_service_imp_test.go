package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropbook/database/dbtest"
	"cropbook/entities"
	"cropbook/pkg/apperror"
	"cropbook/pkg/crop/repositoryImp"
	"cropbook/pkg/crop/service"
)

func TestRegisterTwice(t *testing.T) {
	ctx := context.Background()
	svc := NewCropService(repositoryImp.New(dbtest.New(t)))

	first, err := svc.Register(ctx, service.RegisterInput{Name: "Wheat"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.Register(ctx, service.RegisterInput{Name: "Wheat"})
	var de *apperror.DuplicateError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Wheat", de.Value)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.Crop{*first}, list)
}

func TestRegisterBlank(t *testing.T) {
	r := &stubRepo{}
	_, err := NewCropService(r).Register(context.Background(), service.RegisterInput{Name: "  "})

	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please enter crop name.", ve.Message)
	assert.Zero(t, r.creates)
}

func TestRegisterStorageFailure(t *testing.T) {
	_, err := NewCropService(&stubRepo{err: errors.New("readonly database")}).Register(context.Background(), service.RegisterInput{Name: "Rice"})

	var se *apperror.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "add crop", se.Op)

	var de *apperror.DuplicateError
	assert.False(t, errors.As(err, &de))
}

type stubRepo struct {
	creates int
	err     error
}

func (s *stubRepo) Create(context.Context, *entities.Crop) error {
	s.creates++
	return s.err
}

func (s *stubRepo) List(context.Context) ([]entities.Crop, error) { return nil, s.err }

func (s *stubRepo) Count(context.Context) (int64, error) { return 0, s.err }
