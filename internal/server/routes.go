package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/lexaidhq/lexaid-backend/internal/middleware"
	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

// SetupRoutes configures the routes for the application. Public routes cover
// health, version and the authentication entry points; everything else sits
// behind the token gate.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	r.Use(corsMiddleware(s.Config.CORS.AllowedOrigins))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())

	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}

	// Health check and version routes (unprotected)
	r.Group(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			if err := s.Db.HealthCheck(r.Context()); err != nil {
				log.Error().Err(err).Msg("Health check failed")
				utils.Error(w, http.StatusServiceUnavailable, "service_unavailable", "Service is not healthy", nil)
				return
			}

			utils.JSON(w, http.StatusOK, map[string]string{
				"status":  "healthy",
				"version": s.Config.App.Version,
			})
		})

		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Authentication routes
		r.Route("/auth", func(r chi.Router) {
			// Token responses must never be cached.
			r.Use(chimiddleware.NoCache)

			// Public auth endpoints
			r.Group(func(r chi.Router) {
				r.Post("/signup", s.Handlers.AuthHandler.Register)
				r.Post("/login", s.Handlers.AuthHandler.Login)
				r.Post("/refresh", s.Handlers.AuthHandler.Refresh)
				r.Post("/logout", s.Handlers.AuthHandler.Logout)
			})

			// Protected auth endpoints
			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuth(s.jwtService, s.userRepo))
				r.Get("/verify", s.Handlers.AuthHandler.Verify)
			})
		})

		// User routes (all protected)
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.jwtService, s.userRepo))

			r.Route("/me", func(r chi.Router) {
				r.Get("/", s.Handlers.UserHandler.GetCurrentUser)
				r.Put("/", s.Handlers.UserHandler.UpdateCurrentUser)
				r.Delete("/", s.Handlers.UserHandler.DeleteCurrentUser)
				r.Post("/change-password", s.Handlers.UserHandler.ChangePassword)
			})
		})
	})

	s.router = r
}

// GetRouter returns the configured router. It is primarily used for testing.
func (s *Server) GetRouter() chi.Router {
	return s.router
}

// corsMiddleware creates a CORS middleware with the specified allowed origins.
// It handles both simple cross-origin requests and OPTIONS preflight requests.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || allowedOrigin == origin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")

					if r.Method != http.MethodOptions {
						next.ServeHTTP(w, r)
						return
					}

					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")
					w.Header().Set("Access-Control-Max-Age", "300")

					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
