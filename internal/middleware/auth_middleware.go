package middleware

import (
	"net/http"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
)

// JWTAuth is a middleware that requires a valid access token and a live
// account. It builds the authentication gate from the token validator and the
// identity store and rejects requests with the mapped status and error code.
func JWTAuth(tokens auth.TokenValidator, identities auth.IdentityLookup) func(http.Handler) http.Handler {
	gate := auth.NewGate(tokens, identities)
	return auth.RequireAuth(gate)
}
