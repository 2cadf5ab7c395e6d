package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/store"
	"github.com/voxai-app/voxai/models"
)

type mockSchemeRepository struct {
	createSchemeFn func(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	getSchemeFn    func(ctx context.Context, schemeID int64) (models.Scheme, error)
	listSchemesFn  func(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error)
	updateSchemeFn func(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	deleteSchemeFn func(ctx context.Context, schemeID int64) error
}

func (m *mockSchemeRepository) CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	if m.createSchemeFn != nil {
		return m.createSchemeFn(ctx, scheme)
	}
	return scheme, nil
}

func (m *mockSchemeRepository) GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error) {
	if m.getSchemeFn != nil {
		return m.getSchemeFn(ctx, schemeID)
	}
	return models.Scheme{}, nil
}

func (m *mockSchemeRepository) ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
	if m.listSchemesFn != nil {
		return m.listSchemesFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockSchemeRepository) UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	if m.updateSchemeFn != nil {
		return m.updateSchemeFn(ctx, scheme)
	}
	return scheme, nil
}

func (m *mockSchemeRepository) DeleteScheme(ctx context.Context, schemeID int64) error {
	if m.deleteSchemeFn != nil {
		return m.deleteSchemeFn(ctx, schemeID)
	}
	return nil
}

var errRepository = errors.New("repository error")

func newTestSchemeService(repo *mockSchemeRepository) SchemeService {
	return NewSchemeService(repo, logger.Nop())
}

func TestSchemeService_CreateScheme_Success(t *testing.T) {
	repo := &mockSchemeRepository{
		createSchemeFn: func(_ context.Context, scheme models.Scheme) (models.Scheme, error) {
			scheme.SchemeID = 42
			return scheme, nil
		},
	}
	svc := newTestSchemeService(repo)

	created, err := svc.CreateScheme(context.Background(), models.Scheme{
		Title:       "Student Scholarship",
		Description: "Merit-based scholarship for undergraduates",
		Category:    "education",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.SchemeID)
}

func TestSchemeService_CreateScheme_InvalidData(t *testing.T) {
	svc := newTestSchemeService(&mockSchemeRepository{})

	tests := []struct {
		name   string
		scheme models.Scheme
	}{
		{"empty title", models.Scheme{Description: "desc"}},
		{"empty description", models.Scheme{Title: "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateScheme(context.Background(), tt.scheme)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSchemeService_GetScheme_NotFound(t *testing.T) {
	repo := &mockSchemeRepository{
		getSchemeFn: func(_ context.Context, _ int64) (models.Scheme, error) {
			return models.Scheme{}, store.ErrSchemeNotFound
		},
	}
	svc := newTestSchemeService(repo)

	_, err := svc.GetScheme(context.Background(), 404)

	assert.ErrorIs(t, err, store.ErrSchemeNotFound)
}

func TestSchemeService_ListSchemes_PassesFilter(t *testing.T) {
	want := models.SchemeFilter{Category: "health", Keyword: "insurance"}
	repo := &mockSchemeRepository{
		listSchemesFn: func(_ context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
			assert.Equal(t, want, filter)
			return []models.Scheme{{SchemeID: 1, Title: "Health Cover"}}, nil
		},
	}
	svc := newTestSchemeService(repo)

	schemes, err := svc.ListSchemes(context.Background(), want)

	require.NoError(t, err)
	require.Len(t, schemes, 1)
	assert.Equal(t, "Health Cover", schemes[0].Title)
}

func TestSchemeService_UpdateScheme_InvalidData(t *testing.T) {
	svc := newTestSchemeService(&mockSchemeRepository{})

	_, err := svc.UpdateScheme(context.Background(), models.Scheme{Title: "t", Description: "d"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSchemeService_DeleteScheme_RepositoryError(t *testing.T) {
	repo := &mockSchemeRepository{
		deleteSchemeFn: func(_ context.Context, _ int64) error {
			return errRepository
		},
	}
	svc := newTestSchemeService(repo)

	err := svc.DeleteScheme(context.Background(), 7)

	assert.ErrorIs(t, err, errRepository)
}

func TestSchemeService_DeleteScheme_ZeroID(t *testing.T) {
	svc := newTestSchemeService(&mockSchemeRepository{})

	err := svc.DeleteScheme(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
