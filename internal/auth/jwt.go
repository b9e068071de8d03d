package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/lexaidhq/lexaid-backend/internal/config"
	"github.com/lexaidhq/lexaid-backend/internal/models"
)

// JWT errors
var (
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	ErrSubjectMismatch      = errors.New("token subject does not match expected identity")
)

// Claims represents the claims carried in a signed token. The subject of every
// token is the identity's email at issuance time. Access tokens additionally
// embed email_verified and full_name so clients can render a profile without a
// round trip; refresh tokens omit them.
type Claims struct {
	UserID        int64  `json:"user_id"`
	UUID          string `json:"uuid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	FullName      string `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and validates the two token classes. Access and refresh
// tokens are signed with distinct keys; a token of one class can never verify
// against the other key. There is no token-type claim: the caller's choice of
// verb selects the key.
type JWTService struct {
	Config *config.JWTSettings
}

// NewJWTService creates a new JWTService instance.
func NewJWTService(cfg *config.JWTSettings) *JWTService {
	return &JWTService{
		Config: cfg,
	}
}

// GenerateAccessToken issues a new access token for the given user. The token
// expires Config.Expiry after issuance.
func (s *JWTService) GenerateAccessToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:        user.ID,
		UUID:          user.UUID,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		FullName:      user.FullName,
	}
	return s.generateToken(claims, user.Email, s.Config.Expiry, s.Config.AccessSecret)
}

// GenerateRefreshToken issues a new refresh token for the given user. The
// token carries only the identity references needed for the refresh exchange
// and expires Config.RefreshExpiry after issuance.
func (s *JWTService) GenerateRefreshToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		UUID:   user.UUID,
		Email:  user.Email,
	}
	return s.generateToken(claims, user.Email, s.Config.RefreshExpiry, s.Config.RefreshSecret)
}

// generateToken signs a token with the provided claims, subject, lifetime and key.
func (s *JWTService) generateToken(claims Claims, subject string, expiry time.Duration, secret string) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.Config.Issuer,
		Audience:  jwt.ClaimStrings{s.Config.Audience},
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken validates a token against the access signing key and
// returns its claims. If expectedSubject is non-empty the token subject must
// match it exactly; a mismatch is a signature-class rejection, not a soft skip.
func (s *JWTService) ValidateAccessToken(tokenString, expectedSubject string) (*Claims, *Rejection) {
	return s.validateToken(tokenString, s.Config.AccessSecret, expectedSubject)
}

// ValidateRefreshToken validates a token against the refresh signing key. No
// expected subject is checked: in the refresh exchange the subject is derived
// from the token, not known in advance.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, *Rejection) {
	return s.validateToken(tokenString, s.Config.RefreshSecret, "")
}

// validateToken parses and verifies a token with the given key. The signature
// is verified before any claim value is trusted, and the four decode failure
// kinds stay distinguishable: malformed structure, signature mismatch,
// unexpected algorithm, and expiry.
func (s *JWTService) validateToken(tokenString, secret, expectedSubject string) (*Claims, *Rejection) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, Reject(RejectionExpiredToken, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, Reject(RejectionMalformedToken, err)
		default:
			// Signature mismatch and unexpected algorithm are both
			// signature-class; the wrapped error keeps them apart in logs.
			return nil, Reject(RejectionBadSignature, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, Reject(RejectionBadSignature, errors.New("invalid token claims"))
	}

	if expectedSubject != "" && claims.Subject != expectedSubject {
		return nil, Reject(RejectionBadSignature, ErrSubjectMismatch)
	}

	return claims, nil
}
