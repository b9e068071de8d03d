package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
	"github.com/lexaidhq/lexaid-backend/internal/models"
	"github.com/lexaidhq/lexaid-backend/internal/service"
	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

func TestUserService_GetCurrentUser(t *testing.T) {
	user := activeUser(t, "password123")
	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	svc := service.NewUserService(repo)

	got, err := svc.GetCurrentUser(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Empty(t, got.PasswordHash)
}

func TestUserService_UpdateProfile_EmailChangeResetsVerification(t *testing.T) {
	user := activeUser(t, "password123")
	user.EmailVerified = true

	var updated *models.User
	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return user, nil
		},
		updateFunc: func(ctx context.Context, u *models.User) error {
			updated = u
			return nil
		},
	}
	svc := service.NewUserService(repo)

	got, err := svc.UpdateProfile(context.Background(), user.ID, "", "new@example.com")

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.False(t, updated.EmailVerified)
	assert.False(t, got.EmailVerified)
}

func TestUserService_UpdateProfile_EmailLowercased(t *testing.T) {
	user := activeUser(t, "password123")

	var updated *models.User
	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return user, nil
		},
		updateFunc: func(ctx context.Context, u *models.User) error {
			updated = u
			return nil
		},
	}
	svc := service.NewUserService(repo)

	got, err := svc.UpdateProfile(context.Background(), user.ID, "", "Mixed@Example.COM")

	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", updated.Email)
	assert.Equal(t, "mixed@example.com", got.Email)
}

func TestUserService_UpdateProfile_SameEmailDifferentCase(t *testing.T) {
	user := activeUser(t, "password123")
	user.EmailVerified = true

	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return user, nil
		},
		updateFunc: func(ctx context.Context, u *models.User) error {
			return nil
		},
	}
	svc := service.NewUserService(repo)

	// Re-submitting the current address in a different case is not a change
	// and must not reset verification.
	got, err := svc.UpdateProfile(context.Background(), user.ID, "", "Test@Example.COM")

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", got.Email)
	assert.True(t, got.EmailVerified)
}

func TestUserService_ChangePassword(t *testing.T) {
	user := activeUser(t, "old-password")

	var newHash string
	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return user, nil
		},
		changePasswordFunc: func(ctx context.Context, id int64, passwordHash string) error {
			newHash = passwordHash
			return nil
		},
	}
	svc := service.NewUserService(repo)

	err := svc.ChangePassword(context.Background(), user.ID, &models.PasswordChange{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	require.NoError(t, err)
	match, err := auth.VerifyPassword("new-password", newHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	user := activeUser(t, "old-password")
	repo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return user, nil
		},
	}
	svc := service.NewUserService(repo)

	err := svc.ChangePassword(context.Background(), user.ID, &models.PasswordChange{
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password",
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrInvalidCredentials, appErr.Err)
}

func TestUserService_DeleteAccount(t *testing.T) {
	deleted := false
	repo := &mockUserRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(1), id)
			deleted = true
			return nil
		},
	}
	svc := service.NewUserService(repo)

	err := svc.DeleteAccount(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, deleted)
}
