package migrations

import (
	"context"
	"database/sql"
)

// GetMigrations returns all migrations in execution order.
func GetMigrations() []Migration {
	return []Migration{
		createUsersTable(),
	}
}

// createUsersTable creates the users table
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID NOT NULL,
					full_name VARCHAR(100) NOT NULL,
					email VARCHAR(255) NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					email_verified BOOLEAN DEFAULT FALSE,
					status VARCHAR(20) NOT NULL DEFAULT 'active',
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					last_login_at TIMESTAMP,
					CONSTRAINT idx_users_uuid UNIQUE (uuid)
				);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (LOWER(email));
				CREATE INDEX IF NOT EXISTS idx_users_status ON users(status);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}
