// Package scripts provides utility scripts for database and system management.
//
// This package implements database seeding functionality to populate initial
// data for development and testing environments. The seeding system works
// similarly to migrations, tracking executed seeds to ensure they only run
// once, making the process idempotent and safe to run repeatedly.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
	"github.com/lexaidhq/lexaid-backend/internal/database"
	"github.com/lexaidhq/lexaid-backend/internal/models"
)

// Demo account credentials for local development. Never seeded in production.
const (
	demoUserFullName = "Demo User"
	demoUserEmail    = "demo@lexaid.local"
	demoUserPassword = "demo-password-123"
)

// Seeder handles database seeding.
type Seeder struct {
	db *database.Pool
}

// NewSeeder creates a new seeder.
func NewSeeder(db *database.Pool) *Seeder {
	return &Seeder{
		db: db,
	}
}

// SeedDatabase seeds the database with initial development data. It creates
// the seeds tracking table if it doesn't exist, then runs all seed functions
// that haven't been executed yet.
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) error
	}{
		{"demo_user", s.seedDemoUser},
	}

	for _, seed := range seeds {
		if !executedSeeds[seed.Name] {
			log.Info().Str("seed", seed.Name).Msg("Running seed")
			if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
				return err
			}
		} else {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds tracking table if it doesn't exist.
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns a map of executed seed names.
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

// runSeed runs a seed function within a transaction. If the seed operation
// fails, the transaction is rolled back and the seed is not recorded.
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := seedFunc(ctx, tx); err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}

		query := `INSERT INTO seeds (name) VALUES ($1)`
		_, err := tx.ExecContext(ctx, query, name)
		if err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}

// seedDemoUser inserts a known demo account so a fresh development database
// can be logged into immediately. Skipped if the address is already taken.
func (s *Seeder) seedDemoUser(ctx context.Context, tx *sql.Tx) error {
	var count int
	countQuery := `SELECT COUNT(*) FROM users WHERE email = $1`
	if err := tx.QueryRowContext(ctx, countQuery, demoUserEmail).Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing demo user: %w", err)
	}
	if count > 0 {
		log.Debug().Str("email", demoUserEmail).Msg("Demo user already exists")
		return nil
	}

	hash, err := auth.HashPassword(demoUserPassword, 0)
	if err != nil {
		return fmt.Errorf("failed to hash demo user password: %w", err)
	}

	user := models.NewUser(demoUserFullName, demoUserEmail)
	user.EmailVerified = true

	query := `
		INSERT INTO users (uuid, full_name, email, password_hash, email_verified, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, query,
		user.UUID, user.FullName, user.Email, hash,
		user.EmailVerified, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert demo user: %w", err)
	}

	log.Info().Str("email", demoUserEmail).Msg("Demo user seeded")
	return nil
}
