package service

import (
	"context"
	"fmt"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/store"
	"github.com/voxai-app/voxai/models"
)

// schemeService is the concrete implementation of SchemeService. It performs
// basic input validation and delegates persistence to a SchemeRepository.
type schemeService struct {
	schemeRepository store.SchemeRepository
	logger           *logger.Logger
}

func NewSchemeService(schemeRepository store.SchemeRepository, logger *logger.Logger) SchemeService {
	return &schemeService{
		schemeRepository: schemeRepository,
		logger:           logger,
	}
}

// CreateScheme persists a new scheme. Title and Description are mandatory;
// the other fields may be empty.
func (s *schemeService) CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	log := logger.FromContext(ctx)

	if scheme.Title == "" || scheme.Description == "" {
		log.Error().Str("title", scheme.Title).Msg("invalid scheme data provided")
		return models.Scheme{}, ErrInvalidDataProvided
	}

	createdScheme, err := s.schemeRepository.CreateScheme(ctx, scheme)
	if err != nil {
		log.Err(err).Str("title", scheme.Title).Msg("scheme creation ended with error")
		return models.Scheme{}, fmt.Errorf("scheme creation ended with error: %w", err)
	}

	return createdScheme, nil
}

func (s *schemeService) GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error) {
	log := logger.FromContext(ctx)

	scheme, err := s.schemeRepository.GetScheme(ctx, schemeID)
	if err != nil {
		log.Err(err).Int64("schemeID", schemeID).Msg("scheme lookup failed")
		return models.Scheme{}, fmt.Errorf("scheme lookup failed: %w", err)
	}

	return scheme, nil
}

func (s *schemeService) ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
	log := logger.FromContext(ctx)

	schemes, err := s.schemeRepository.ListSchemes(ctx, filter)
	if err != nil {
		log.Err(err).Msg("scheme listing failed")
		return nil, fmt.Errorf("scheme listing failed: %w", err)
	}

	return schemes, nil
}

// UpdateScheme replaces an existing scheme's fields. The scheme must carry a
// valid SchemeID and non-empty Title and Description.
func (s *schemeService) UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	log := logger.FromContext(ctx)

	if scheme.SchemeID == 0 || scheme.Title == "" || scheme.Description == "" {
		log.Error().Int64("schemeID", scheme.SchemeID).Msg("invalid scheme data provided")
		return models.Scheme{}, ErrInvalidDataProvided
	}

	updatedScheme, err := s.schemeRepository.UpdateScheme(ctx, scheme)
	if err != nil {
		log.Err(err).Int64("schemeID", scheme.SchemeID).Msg("scheme update ended with error")
		return models.Scheme{}, fmt.Errorf("scheme update ended with error: %w", err)
	}

	return updatedScheme, nil
}

func (s *schemeService) DeleteScheme(ctx context.Context, schemeID int64) error {
	log := logger.FromContext(ctx)

	if schemeID == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.schemeRepository.DeleteScheme(ctx, schemeID); err != nil {
		log.Err(err).Int64("schemeID", schemeID).Msg("scheme deletion ended with error")
		return fmt.Errorf("scheme deletion ended with error: %w", err)
	}

	return nil
}
