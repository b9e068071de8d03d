package auth

import "github.com/lexaidhq/lexaid-backend/internal/models"

// TokenIssuer defines the interface for issuing signed tokens.
type TokenIssuer interface {
	GenerateAccessToken(user *models.User) (string, error)
	GenerateRefreshToken(user *models.User) (string, error)
}

// TokenValidator defines the interface for validating signed tokens. The
// caller selects the token class by choosing the method; there is no
// self-describing type field in the token itself.
type TokenValidator interface {
	ValidateAccessToken(tokenString, expectedSubject string) (*Claims, *Rejection)
	ValidateRefreshToken(tokenString string) (*Claims, *Rejection)
}

// TokenService combines issuance and validation, as implemented by JWTService.
type TokenService interface {
	TokenIssuer
	TokenValidator
}
