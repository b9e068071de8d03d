package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Database Timeouts
const (
	DBConnectionTimeout  = 30 * time.Second
	DBQueryTimeout       = 15 * time.Second
	DBHealthCheckTimeout = 5 * time.Second
	DBConnMaxLifetime    = 1 * time.Hour
	DBConnMaxIdleTime    = 30 * time.Minute
)

// Authentication Timeouts
const (
	// DefaultJWTExpiry is the access token lifetime (3600s).
	DefaultJWTExpiry = 1 * time.Hour

	// DefaultJWTRefreshExpiry is the refresh token lifetime (2592000s, 30 days).
	DefaultJWTRefreshExpiry = 30 * 24 * time.Hour

	// IdentityLookupTimeout bounds the user store lookup performed during
	// request authentication. A lookup that exceeds it is reported as an
	// internal error, never retried.
	IdentityLookupTimeout = 3 * time.Second
)
