// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration settings
// and establish boundaries for resource usage. Changes to these values may
// significantly impact application behavior and security.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultJWTIssuer is the issuer claim embedded in every signed token.
	DefaultJWTIssuer = "lexaid-api"

	// DefaultJWTAudience is the audience claim embedded in every signed token.
	DefaultJWTAudience = "lexaid-web"

	// DefaultBcryptCost is the cost parameter for bcrypt password hashing.
	DefaultBcryptCost = 12
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with hardened settings.
	EnvProduction = "production"
)

// Request Limits define the maximum allowed sizes for incoming payloads.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB
)

// Logging values.
const (
	// LogRedactedValue replaces sensitive values in configuration logs.
	LogRedactedValue = "[REDACTED]"
)

// Context Keys define the names under which authenticated request state is stored.
const (
	// AuthContextKey stores the full authentication context of the request.
	AuthContextKey = "auth_context"

	// UserIDContextKey stores the authenticated user's numeric ID.
	UserIDContextKey = "user_id"

	// EmailContextKey stores the authenticated user's email.
	EmailContextKey = "email"

	// RequestIDContextKey stores the unique request identifier.
	RequestIDContextKey = "request_id"
)
