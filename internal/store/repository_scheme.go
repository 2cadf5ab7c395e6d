package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/models"
)

// schemeRepository is the PostgreSQL-backed implementation of
// [SchemeRepository] for the government scheme catalogue.
type schemeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSchemeRepository(db *DB, logger *logger.Logger) SchemeRepository {
	logger.Debug().Msg("creating scheme repository")
	return &schemeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *schemeRepository) CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createScheme,
		scheme.Title, scheme.Description, scheme.Category,
		scheme.Eligibility, scheme.Benefits, scheme.Link, scheme.CreatedBy)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*schemeRepository.CreateScheme").Msg("error: row is nil")
		return models.Scheme{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanScheme(row)
	if err != nil {
		log.Err(err).Str("func", "*schemeRepository.CreateScheme").Msg("error: scanning error")
		return models.Scheme{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

func (r *schemeRepository) GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getScheme, schemeID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*schemeRepository.GetScheme").Msg("error: row is nil")
		return models.Scheme{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	scheme, err := scanScheme(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Scheme{}, ErrSchemeNotFound
		}
		log.Err(err).Str("func", "*schemeRepository.GetScheme").Msg("error: scanning error")
		return models.Scheme{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return scheme, nil
}

// ListSchemes returns the catalogue narrowed by the given filter. The
// query is built with squirrel so that optional predicates compose without
// manual placeholder bookkeeping.
func (r *schemeRepository) ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"scheme_id", "title", "description", "category",
		"eligibility", "benefits", "link", "created_by", "created_at").
		From("schemes").
		OrderBy("scheme_id").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*schemeRepository.ListSchemes").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*schemeRepository.ListSchemes").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var schemes []models.Scheme
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			log.Err(err).Str("func", "*schemeRepository.ListSchemes").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		schemes = append(schemes, scheme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return schemes, nil
}

func (r *schemeRepository) UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateScheme,
		scheme.SchemeID, scheme.Title, scheme.Description, scheme.Category,
		scheme.Eligibility, scheme.Benefits, scheme.Link)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*schemeRepository.UpdateScheme").Msg("error: row is nil")
		return models.Scheme{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanScheme(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Scheme{}, ErrSchemeNotFound
		}
		log.Err(err).Str("func", "*schemeRepository.UpdateScheme").Msg("error: scanning error")
		return models.Scheme{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

func (r *schemeRepository) DeleteScheme(ctx context.Context, schemeID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteScheme, schemeID)
	if err != nil {
		log.Err(err).Str("func", "*schemeRepository.DeleteScheme").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSchemeNotFound
	}

	return nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed by scanScheme.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanScheme(row rowScanner) (models.Scheme, error) {
	var s models.Scheme
	err := row.Scan(&s.SchemeID, &s.Title, &s.Description, &s.Category,
		&s.Eligibility, &s.Benefits, &s.Link, &s.CreatedBy, &s.CreatedAt)
	return s, err
}
