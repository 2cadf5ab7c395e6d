package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT relies on the unique constraint on users.email: two concurrent
// registrations with the same email are serialised by the database, and the
// loser surfaces here as a unique_violation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	interests, err := json.Marshal(user.Interests)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: marshaling interests")
		return models.User{}, fmt.Errorf("marshal interests: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Name, user.Email, user.SecretHash, interests)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	var saved models.User
	var savedInterests []byte
	if err := row.Scan(&saved.UserID, &saved.Name, &saved.Email, &saved.SecretHash, &savedInterests, &saved.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(savedInterests) > 0 {
		if err := json.Unmarshal(savedInterests, &saved.Interests); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: unmarshaling interests")
			return models.User{}, fmt.Errorf("unmarshal interests: %w", err)
		}
	}

	return saved, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly
// (emails are stored and compared case-sensitively).
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var interests []byte
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.SecretHash, &interests, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(interests) > 0 {
		if err := json.Unmarshal(interests, &foundUser.Interests); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: unmarshaling interests")
			return models.User{}, fmt.Errorf("unmarshal interests: %w", err)
		}
	}

	return foundUser, nil
}
