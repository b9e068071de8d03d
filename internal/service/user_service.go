package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
	"github.com/lexaidhq/lexaid-backend/internal/models"
	"github.com/lexaidhq/lexaid-backend/internal/repository"
	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

// UserService handles operations on the current user's account.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetCurrentUser returns the profile of the given user.
func (s *UserService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

// UpdateProfile updates the current user's profile attributes. Changing the
// email address resets verification; tokens issued before the change keep the
// old address as subject and stop resolving to this account.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, fullName, email string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		user.FullName = fullName
	}
	// Emails are stored lowercased, same as at registration.
	email = strings.ToLower(email)
	if email != "" && email != user.Email {
		user.Email = email
		user.EmailVerified = false
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

// ChangePassword verifies the current password and replaces it with a new one.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, change *models.PasswordChange) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	match, err := auth.VerifyPassword(change.CurrentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return utils.NewInvalidCredentialsError()
	}

	passwordHash, err := auth.HashPassword(change.NewPassword, 0)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	utils.LogAuth("password_changed", userID, user.Email, true, "")

	return nil
}

// DeleteAccount soft-deletes the current user's account. Outstanding tokens
// keep verifying cryptographically but authentication reports the identity as
// not found from this point on.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	utils.LogAuth("account_deleted", userID, "", true, "")

	return nil
}
