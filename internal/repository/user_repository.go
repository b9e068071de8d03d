// Package repository provides data access to the application's PostgreSQL store.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/lexaidhq/lexaid-backend/internal/database"
	"github.com/lexaidhq/lexaid-backend/internal/models"
	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

// UserRepository defines methods for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetActiveOrSuspendedByID(ctx context.Context, id int64) (*models.User, error)
	GetActiveOrSuspendedByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, passwordHash string) error
	MarkEmailVerified(ctx context.Context, id int64) error
	Suspend(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PostgresUserRepository is a PostgreSQL implementation of UserRepository.
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *database.Pool) UserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// userColumns is the canonical column list scanned into a models.User.
const userColumns = `id, uuid, full_name, email, password_hash, email_verified, status, created_at, updated_at, last_login_at`

// scanUser scans a single user row.
func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.UUID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.EmailVerified,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create adds a new user to the database.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Status == "" {
		user.Status = models.StatusActive
	}

	query := `
        INSERT INTO users (uuid, full_name, email, password_hash, email_verified, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.UUID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.EmailVerified,
		user.Status,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	utils.LogDBQuery(query, 8, time.Since(startTime), err)

	if err != nil {
		// 23505 is the PostgreSQL error code for unique_violation.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if strings.Contains(pqErr.Constraint, "email") || strings.Contains(pqErr.Constraint, "uuid") {
				return utils.NewDuplicateError("User", "email", user.Email)
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Msg("User created")

	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))

	utils.LogDBQuery(query, 1, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email, regardless of lifecycle status.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE LOWER(email) = LOWER($1)
    `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))

	utils.LogDBQuery(query, 1, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", fmt.Sprintf("email=%s", email))
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetActiveOrSuspendedByID retrieves a user by ID, excluding soft-deleted
// accounts. A deleted account is reported as not found, indistinguishable from
// an account that never existed.
func (r *PostgresUserRepository) GetActiveOrSuspendedByID(ctx context.Context, id int64) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1 AND status <> $2
    `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, models.StatusDeleted))

	utils.LogDBQuery(query, 2, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetActiveOrSuspendedByEmail retrieves a user by email, excluding soft-deleted
// accounts. A deleted account is reported as not found, indistinguishable from
// an account that never existed.
func (r *PostgresUserRepository) GetActiveOrSuspendedByEmail(ctx context.Context, email string) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE LOWER(email) = LOWER($1) AND status <> $2
    `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email, models.StatusDeleted))

	utils.LogDBQuery(query, 2, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", fmt.Sprintf("email=%s", email))
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Update updates a user's profile attributes.
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	user.UpdatedAt = time.Now()

	query := `
        UPDATE users
        SET full_name = $1, email = $2, email_verified = $3, updated_at = $4
        WHERE id = $5
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.FullName,
		user.Email,
		user.EmailVerified,
		user.UpdatedAt,
		user.ID,
	)

	utils.LogDBQuery(query, 5, time.Since(startTime), err)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return utils.NewDuplicateError("User", "email", user.Email)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", user.ID)
	}

	return nil
}

// UpdateLastLogin records a successful login timestamp.
func (r *PostgresUserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET last_login_at = $1
        WHERE id = $2
    `

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)

	utils.LogDBQuery(query, 2, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// ChangePassword updates a user's password hash.
func (r *PostgresUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET password_hash = $1, updated_at = $2
        WHERE id = $3
    `

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)

	utils.LogDBQuery(query, 3, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	log.Info().
		Int64("user_id", id).
		Msg("User password changed")

	return nil
}

// MarkEmailVerified flags a user's email address as verified.
func (r *PostgresUserRepository) MarkEmailVerified(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET email_verified = TRUE, updated_at = $1
        WHERE id = $2
    `

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)

	utils.LogDBQuery(query, 2, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// Suspend moves a user into the suspended lifecycle state. Existing tokens keep
// verifying but authentication is refused until the account is reinstated.
func (r *PostgresUserRepository) Suspend(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, models.StatusSuspended)
}

// Delete soft-deletes a user. The row is kept but the account behaves as if it
// never existed for authentication purposes.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, models.StatusDeleted)
}

func (r *PostgresUserRepository) setStatus(ctx context.Context, id int64, status models.UserStatus) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET status = $1, updated_at = $2
        WHERE id = $3
    `

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)

	utils.LogDBQuery(query, 3, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	log.Info().
		Int64("user_id", id).
		Str("status", string(status)).
		Msg("User status changed")

	return nil
}

// ExistsByEmail checks if a user with the given email exists, including
// soft-deleted accounts so a deleted address cannot be re-registered.
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	startTime := time.Now()

	query := `
        SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))
    `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)

	utils.LogDBQuery(query, 1, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}

	return exists, nil
}
