// Package service implements the application's business logic on top of the
// repository and auth layers.
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
	"github.com/lexaidhq/lexaid-backend/internal/constants"
	"github.com/lexaidhq/lexaid-backend/internal/models"
	"github.com/lexaidhq/lexaid-backend/internal/repository"
	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

// AuthService handles registration, login and the token refresh exchange.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// RegisterUser creates a new user account.
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	// Deleted accounts keep their row, so a deleted address cannot be re-registered.
	exists, err := s.userRepo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, utils.NewDuplicateError("User", "email", reg.Email)
	}

	passwordHash, err := auth.HashPassword(reg.Password, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(reg.FullName, reg.Email)
	user.PasswordHash = passwordHash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuth("register_success", user.ID, user.Email, true, "")

	return user.Sanitize(), nil
}

// AuthenticateUser verifies user credentials and returns the login payload with
// a fresh access and refresh token pair.
func (s *AuthService) AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetActiveOrSuspendedByEmail(ctx, creds.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			// Unknown and deleted accounts are indistinguishable to the caller.
			utils.LogAuth("login_failed", 0, creds.Email, false, "user not found")
			return nil, utils.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	match, err := auth.VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		utils.LogAuth("login_failed", user.ID, user.Email, false, "invalid password")
		return nil, utils.NewInvalidCredentialsError()
	}

	// Credentials are checked before status so password probing cannot reveal
	// whether a suspended account exists.
	if !user.IsActive() {
		utils.LogAuth("login_failed", user.ID, user.Email, false, "account inactive")
		return nil, utils.NewForbiddenError(constants.MsgAccountInactive)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is advisory.
		log.Warn().
			Err(err).
			Int64("user_id", user.ID).
			Msg("Failed to update last login timestamp")
	}

	utils.LogAuth("login_success", user.ID, user.Email, true, "")

	return &models.LoginResponse{
		User:                      user.Sanitize(),
		AccessToken:               accessToken,
		RefreshToken:              refreshToken,
		ExpiresIn:                 int(s.jwtService.Config.Expiry.Seconds()),
		TokenType:                 constants.TokenTypeBearer,
		EmailVerificationRequired: !user.EmailVerified,
	}, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access token.
//
// The new token is built from the identity's current store state, so a profile
// or verification change since login is reflected immediately. The presented
// refresh token is not rotated and no new refresh token is issued; the caller
// keeps using the same one until it expires.
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	claims, rej := s.jwtService.ValidateRefreshToken(refreshToken)
	if rej != nil {
		return nil, rej
	}

	// Resolve by ID, not by the email subject: the subject is frozen at
	// issuance and a profile email change must not invalidate the token.
	user, err := s.userRepo.GetActiveOrSuspendedByID(ctx, claims.UserID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("refresh_failed", claims.UserID, claims.Subject, false, "user not found")
			return nil, auth.Reject(auth.RejectionIdentityNotFound, err)
		}
		return nil, auth.Reject(auth.RejectionInternalError, err)
	}

	if !user.IsActive() {
		utils.LogAuth("refresh_failed", user.ID, user.Email, false, "account inactive")
		return nil, auth.Reject(auth.RejectionIdentityInactive, nil)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, auth.Reject(auth.RejectionInternalError, fmt.Errorf("failed to generate access token: %w", err))
	}

	log.Info().
		Int64("user_id", user.ID).
		Msg("Access token refreshed")

	return &models.RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(s.jwtService.Config.Expiry.Seconds()),
		TokenType:   constants.TokenTypeBearer,
	}, nil
}
