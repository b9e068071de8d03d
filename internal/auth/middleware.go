package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lexaidhq/lexaid-backend/internal/constants"
	"github.com/lexaidhq/lexaid-backend/internal/models"
	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

// ContextKey is a custom type for context keys to prevent collisions.
type ContextKey string

// Context keys for storing authenticated request state.
const (
	// AuthContextKey is the context key for the full authentication context.
	AuthContextKey ContextKey = constants.AuthContextKey

	// UserIDContextKey is the context key for the authenticated user ID.
	UserIDContextKey ContextKey = constants.UserIDContextKey

	// EmailContextKey is the context key for the authenticated user's email.
	EmailContextKey ContextKey = constants.EmailContextKey

	// RequestIDContextKey is the context key for the unique request ID.
	RequestIDContextKey ContextKey = constants.RequestIDContextKey
)

// AuthContext is the request-scoped result of a successful authentication
// pass. It is created per request and discarded at request end; it is never
// shared across requests or stored.
type AuthContext struct {
	// User is the authenticated identity as currently recorded in the store.
	User *models.User

	// RawToken is the bearer token the request presented.
	RawToken string
}

// IdentityLookup is the narrow view of the user store the gate needs: lookup
// by email, excluding soft-deleted accounts. Implementations return a
// not-found error for unknown or deleted identities.
type IdentityLookup interface {
	GetActiveOrSuspendedByEmail(ctx context.Context, email string) (*models.User, error)
}

// Gate is the request interception point. It extracts the bearer token,
// validates it against the access key, checks identity liveness, and produces
// either an AuthContext or a typed Rejection. Authentication is a single
// deterministic pass per request; nothing is retried.
type Gate struct {
	tokens     TokenValidator
	identities IdentityLookup
}

// NewGate creates a new Gate with the given token validator and identity store.
func NewGate(tokens TokenValidator, identities IdentityLookup) *Gate {
	return &Gate{
		tokens:     tokens,
		identities: identities,
	}
}

// Authenticate runs the full authentication pass for a request.
//
// The order of checks is deliberate: signature and expiry first, then identity
// existence, then lifecycle state, so a suspended user with a valid token gets
// the specific RejectionIdentityInactive rather than a generic failure.
func (g *Gate) Authenticate(r *http.Request) (*AuthContext, *Rejection) {
	authHeader := r.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, constants.BearerTokenPrefix) {
		return nil, Reject(RejectionMissingToken, nil)
	}

	rawToken := strings.TrimPrefix(authHeader, constants.BearerTokenPrefix)

	// Subject is read from the token, not known in advance.
	claims, rej := g.tokens.ValidateAccessToken(rawToken, "")
	if rej != nil {
		return nil, rej
	}

	// The identity lookup is the only I/O in the pass. It is bounded: a slow
	// store surfaces as an internal error instead of a hung or retried request.
	ctx, cancel := context.WithTimeout(r.Context(), constants.IdentityLookupTimeout)
	defer cancel()

	user, err := g.identities.GetActiveOrSuspendedByEmail(ctx, claims.Subject)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return nil, Reject(RejectionIdentityNotFound, err)
		}
		// Timeouts and store failures alike are the service's problem, not
		// the caller's.
		return nil, Reject(RejectionInternalError, err)
	}

	if !user.IsActive() {
		return nil, Reject(RejectionIdentityInactive, nil)
	}

	return &AuthContext{User: user, RawToken: rawToken}, nil
}

// RequireAuth wraps an HTTP handler with the gate. Requests that fail
// authentication receive the rejection's mapped status and code; successful
// requests proceed with the authenticated identity attached to the context.
func RequireAuth(gate *Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
				r.Header.Set(constants.HeaderXRequestID, requestID)
			}

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)

			authCtx, rej := gate.Authenticate(r.WithContext(ctx))
			if rej != nil {
				logRejection(r, requestID, rej)
				WriteRejection(w, rej)
				return
			}

			ctx = context.WithValue(ctx, AuthContextKey, authCtx)
			ctx = context.WithValue(ctx, UserIDContextKey, authCtx.User.ID)
			ctx = context.WithValue(ctx, EmailContextKey, authCtx.User.Email)

			log.Debug().
				Int64("user_id", authCtx.User.ID).
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("User authenticated")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// logRejection records a failed authentication attempt with full request
// context. Expired and tampered tokens share an external code but are
// distinguished here for auditing.
func logRejection(r *http.Request, requestID string, rej *Rejection) {
	event := log.Warn()
	if rej.Reason == RejectionInternalError {
		event = log.Error()
	}

	event.
		Err(rej.Err).
		Str("reason", rej.Reason.String()).
		Str("request_id", requestID).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("remote_addr", r.RemoteAddr).
		Str("user_agent", r.Header.Get(constants.HeaderUserAgent)).
		Msg("Authentication rejected")
}

// WriteRejection sends the HTTP response for a rejection. Internal causes are
// logged but never exposed beyond the generic code.
func WriteRejection(w http.ResponseWriter, rej *Rejection) {
	utils.Error(w, rej.Reason.HTTPStatus(), rej.Reason.Code(), rej.Reason.Message(), nil)
}

// GetAuthContext extracts the authentication context from the request.
func GetAuthContext(r *http.Request) (*AuthContext, bool) {
	authCtx, ok := r.Context().Value(AuthContextKey).(*AuthContext)
	return authCtx, ok
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(UserIDContextKey).(int64)
	return userID, ok
}

// GetEmail extracts the authenticated user's email from the request context.
func GetEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(EmailContextKey).(string)
	return email, ok
}

// GetRequestID extracts the request ID from the request context.
func GetRequestID(r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(RequestIDContextKey).(string)
	return requestID, ok
}

// IsAuthenticated checks if the request carries an authenticated identity.
func IsAuthenticated(r *http.Request) bool {
	_, ok := GetAuthContext(r)
	return ok
}
