package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
	"github.com/lexaidhq/lexaid-backend/internal/config"
	"github.com/lexaidhq/lexaid-backend/internal/models"
)

func testConfig() *config.JWTSettings {
	return &config.JWTSettings{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 30 * 24 * time.Hour,
		Issuer:        "test-issuer",
		Audience:      "test-audience",
	}
}

func testUser() *models.User {
	return &models.User{
		ID:            123,
		UUID:          "9f2c5a8e-0000-4000-8000-000000000001",
		FullName:      "Test User",
		Email:         "test@example.com",
		EmailVerified: true,
		Status:        models.StatusActive,
	}
}

func TestNewJWTService(t *testing.T) {
	cfg := testConfig()
	service := auth.NewJWTService(cfg)

	if service == nil {
		t.Fatal("Expected service to be created, got nil")
	}

	if service.Config != cfg {
		t.Errorf("Expected Config to be %v, got %v", cfg, service.Config)
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	service := auth.NewJWTService(testConfig())
	user := testUser()

	token, err := service.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("Expected token to be non-empty")
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Errorf("Expected token to have 3 segments, got %q", token)
	}

	claims, rej := service.ValidateAccessToken(token, "")
	if rej != nil {
		t.Fatalf("ValidateAccessToken() rejection = %v", rej)
	}

	if claims.Subject != user.Email {
		t.Errorf("Expected subject %q, got %q", user.Email, claims.Subject)
	}
	if claims.UserID != user.ID {
		t.Errorf("Expected user_id %d, got %d", user.ID, claims.UserID)
	}
	if claims.UUID != user.UUID {
		t.Errorf("Expected uuid %q, got %q", user.UUID, claims.UUID)
	}
	if claims.Email != user.Email {
		t.Errorf("Expected email %q, got %q", user.Email, claims.Email)
	}
	if !claims.EmailVerified {
		t.Error("Expected email_verified to be true")
	}
	if claims.FullName != user.FullName {
		t.Errorf("Expected full_name %q, got %q", user.FullName, claims.FullName)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Expected issuer %q, got %q", "test-issuer", claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "test-audience" {
		t.Errorf("Expected audience [test-audience], got %v", claims.Audience)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatal("Expected iat and exp to be set")
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != time.Hour {
		t.Errorf("Expected 1h lifetime, got %v", lifetime)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	service := auth.NewJWTService(testConfig())
	user := testUser()

	token, err := service.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, rej := service.ValidateRefreshToken(token)
	if rej != nil {
		t.Fatalf("ValidateRefreshToken() rejection = %v", rej)
	}

	if claims.Subject != user.Email {
		t.Errorf("Expected subject %q, got %q", user.Email, claims.Subject)
	}
	if claims.UserID != user.ID {
		t.Errorf("Expected user_id %d, got %d", user.ID, claims.UserID)
	}

	// Refresh tokens carry identity references only.
	if claims.FullName != "" {
		t.Errorf("Expected empty full_name in refresh token, got %q", claims.FullName)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 30*24*time.Hour {
		t.Errorf("Expected 720h lifetime, got %v", lifetime)
	}
}

func TestKeySeparation(t *testing.T) {
	service := auth.NewJWTService(testConfig())
	user := testUser()

	accessToken, err := service.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	refreshToken, err := service.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	// A refresh token must never verify against the access key.
	if _, rej := service.ValidateAccessToken(refreshToken, ""); rej == nil {
		t.Error("Expected rejection validating refresh token as access token")
	} else if rej.Reason != auth.RejectionBadSignature {
		t.Errorf("Expected RejectionBadSignature, got %v", rej.Reason)
	}

	// And an access token must never verify against the refresh key.
	if _, rej := service.ValidateRefreshToken(accessToken); rej == nil {
		t.Error("Expected rejection validating access token as refresh token")
	} else if rej.Reason != auth.RejectionBadSignature {
		t.Errorf("Expected RejectionBadSignature, got %v", rej.Reason)
	}
}

func TestExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Expiry = -time.Minute
	service := auth.NewJWTService(cfg)

	token, err := service.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	_, rej := service.ValidateAccessToken(token, "")
	if rej == nil {
		t.Fatal("Expected rejection for expired token")
	}
	if rej.Reason != auth.RejectionExpiredToken {
		t.Errorf("Expected RejectionExpiredToken, got %v", rej.Reason)
	}
	if !errors.Is(rej.Err, jwt.ErrTokenExpired) {
		t.Errorf("Expected wrapped ErrTokenExpired, got %v", rej.Err)
	}
}

func TestExpiryBoundary(t *testing.T) {
	service := auth.NewJWTService(testConfig())

	token, err := service.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, rej := service.ValidateAccessToken(token, "")
	if rej != nil {
		t.Fatalf("ValidateAccessToken() rejection = %v", rej)
	}
	expiry := claims.ExpiresAt.Time

	defer func() { jwt.TimeFunc = time.Now }()

	// One second before expiry the token still validates.
	jwt.TimeFunc = func() time.Time { return expiry.Add(-time.Second) }
	if _, rej := service.ValidateAccessToken(token, ""); rej != nil {
		t.Errorf("Expected token to validate just before expiry, got %v", rej)
	}

	// One second after expiry it is rejected as expired, not as tampered.
	jwt.TimeFunc = func() time.Time { return expiry.Add(time.Second) }
	_, rej = service.ValidateAccessToken(token, "")
	if rej == nil {
		t.Fatal("Expected rejection just after expiry")
	}
	if rej.Reason != auth.RejectionExpiredToken {
		t.Errorf("Expected RejectionExpiredToken, got %v", rej.Reason)
	}
}

func TestMalformedToken(t *testing.T) {
	service := auth.NewJWTService(testConfig())

	for _, token := range []string{"", "garbage", "one.two", "a.b.c.d"} {
		_, rej := service.ValidateAccessToken(token, "")
		if rej == nil {
			t.Errorf("Expected rejection for token %q", token)
			continue
		}
		if rej.Reason != auth.RejectionMalformedToken {
			t.Errorf("Token %q: expected RejectionMalformedToken, got %v", token, rej.Reason)
		}
	}
}

func TestTamperedSignature(t *testing.T) {
	service := auth.NewJWTService(testConfig())

	token, err := service.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	// Flip the first character of the signature segment.
	parts := strings.Split(token, ".")
	flipped := byte('A')
	if parts[2][0] == flipped {
		flipped = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(flipped) + parts[2][1:]

	_, rej := service.ValidateAccessToken(tampered, "")
	if rej == nil {
		t.Fatal("Expected rejection for tampered token")
	}
	if rej.Reason != auth.RejectionBadSignature {
		t.Errorf("Expected RejectionBadSignature, got %v", rej.Reason)
	}
}

func TestTamperedPayload(t *testing.T) {
	service := auth.NewJWTService(testConfig())

	token, err := service.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	// Replace the payload segment while keeping the original signature.
	other, err := service.GenerateAccessToken(&models.User{
		ID:     999,
		UUID:   "9f2c5a8e-0000-4000-8000-000000000002",
		Email:  "other@example.com",
		Status: models.StatusActive,
	})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	spliced := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, rej := service.ValidateAccessToken(spliced, "")
	if rej == nil {
		t.Fatal("Expected rejection for spliced token")
	}
	if rej.Reason != auth.RejectionBadSignature {
		t.Errorf("Expected RejectionBadSignature, got %v", rej.Reason)
	}
}

func TestUnexpectedSigningMethod(t *testing.T) {
	cfg := testConfig()
	service := auth.NewJWTService(cfg)

	// A token signed with alg "none" must be refused even with a valid shape.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	_, rej := service.ValidateAccessToken(signed, "")
	if rej == nil {
		t.Fatal("Expected rejection for alg=none token")
	}
	if rej.Reason != auth.RejectionBadSignature {
		t.Errorf("Expected RejectionBadSignature, got %v", rej.Reason)
	}
	if !errors.Is(rej.Err, auth.ErrInvalidSigningMethod) {
		t.Errorf("Expected wrapped ErrInvalidSigningMethod, got %v", rej.Err)
	}
}

func TestExpectedSubjectMatch(t *testing.T) {
	service := auth.NewJWTService(testConfig())
	user := testUser()

	token, err := service.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, rej := service.ValidateAccessToken(token, user.Email)
	if rej != nil {
		t.Fatalf("Expected matching subject to pass, got %v", rej)
	}
	if claims.Subject != user.Email {
		t.Errorf("Expected subject %q, got %q", user.Email, claims.Subject)
	}
}

func TestExpectedSubjectMismatch(t *testing.T) {
	service := auth.NewJWTService(testConfig())

	token, err := service.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	_, rej := service.ValidateAccessToken(token, "someone-else@example.com")
	if rej == nil {
		t.Fatal("Expected rejection for subject mismatch")
	}
	if rej.Reason != auth.RejectionBadSignature {
		t.Errorf("Expected RejectionBadSignature, got %v", rej.Reason)
	}
	if !errors.Is(rej.Err, auth.ErrSubjectMismatch) {
		t.Errorf("Expected wrapped ErrSubjectMismatch, got %v", rej.Err)
	}
}
