package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lexaidhq/lexaid-backend/internal/config"
)

// InitLogger initializes the application logger with the given configuration.
func InitLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()

	log.Info().Msg("Logger initialized")
}

// LogAuth logs an authentication event in a consistent shape.
func LogAuth(event string, userID int64, email string, success bool, reason string) {
	logEvent := log.Info()
	if !success {
		logEvent = log.Warn()
	}

	logEvent.
		Str("event", event).
		Int64("user_id", userID).
		Str("email", email).
		Bool("success", success)

	if reason != "" {
		logEvent.Str("reason", reason)
	}

	logEvent.Msg("Authentication event")
}

// LogDBQuery logs a database query with its duration and outcome.
// Parameter values are not logged; only their count.
func LogDBQuery(query string, argCount int, duration time.Duration, err error) {
	if err != nil {
		log.Error().
			Err(err).
			Str("query", query).
			Int("args", argCount).
			Dur("duration", duration).
			Msg("Database query failed")
		return
	}

	log.Debug().
		Str("query", query).
		Int("args", argCount).
		Dur("duration", duration).
		Msg("Database query executed")
}
