package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lexaidhq/lexaid-backend/internal/models"
)

func TestNewUser(t *testing.T) {
	user := models.NewUser("Test User", "Test@Example.COM")

	if user.Email != "test@example.com" {
		t.Errorf("Expected lowercased email, got %q", user.Email)
	}
	if _, err := uuid.Parse(user.UUID); err != nil {
		t.Errorf("Expected a valid UUID, got %q: %v", user.UUID, err)
	}
	if user.Status != models.StatusActive {
		t.Errorf("Expected new users to start active, got %q", user.Status)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
	if user.LastLoginAt != nil {
		t.Error("Expected no last login for a new user")
	}
}

func TestNewUserUniqueUUIDs(t *testing.T) {
	a := models.NewUser("A", "a@example.com")
	b := models.NewUser("B", "b@example.com")

	if a.UUID == b.UUID {
		t.Error("Expected distinct UUIDs for distinct users")
	}
}

func TestUserStatusChecks(t *testing.T) {
	tests := []struct {
		status      models.UserStatus
		wantActive  bool
		wantDeleted bool
	}{
		{models.StatusActive, true, false},
		{models.StatusSuspended, false, false},
		{models.StatusDeleted, false, true},
	}

	for _, tt := range tests {
		u := &models.User{Status: tt.status}
		if u.IsActive() != tt.wantActive {
			t.Errorf("IsActive() for %q = %v, want %v", tt.status, u.IsActive(), tt.wantActive)
		}
		if u.IsDeleted() != tt.wantDeleted {
			t.Errorf("IsDeleted() for %q = %v, want %v", tt.status, u.IsDeleted(), tt.wantDeleted)
		}
	}
}

func TestSanitize(t *testing.T) {
	user := models.NewUser("Test User", "test@example.com")
	user.PasswordHash = "$2a$12$somehash"

	sanitized := user.Sanitize()

	if sanitized.PasswordHash != "" {
		t.Error("Expected password hash to be cleared")
	}
	if user.PasswordHash == "" {
		t.Error("Expected the original user to be untouched")
	}
	if sanitized.Email != user.Email {
		t.Error("Expected profile fields to be preserved")
	}
}

func TestPasswordHashNeverMarshalled(t *testing.T) {
	user := models.NewUser("Test User", "test@example.com")
	user.PasswordHash = "$2a$12$somehash"

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "somehash") {
		t.Error("Expected password hash to be excluded from JSON")
	}
}
