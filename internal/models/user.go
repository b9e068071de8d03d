package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of a user account. The status gates
// access independently of token validity: a valid token for a suspended or
// deleted account is still refused.
type UserStatus string

// Recognized lifecycle states.
const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusDeleted   UserStatus = "deleted"
)

// User represents a registered user of the LexAid application.
// It contains authentication information and core profile attributes.
type User struct {
	ID            int64      `json:"id" db:"id"`
	UUID          string     `json:"uuid" db:"uuid"`
	FullName      string     `json:"full_name" db:"full_name" validate:"required,min=2,max=100"`
	Email         string     `json:"email" db:"email" validate:"required,email"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	EmailVerified bool       `json:"email_verified" db:"email_verified"`
	Status        UserStatus `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
}

// NewUser creates a new User with a fresh UUID and a lowercased email.
// The password hash is populated later during registration.
func NewUser(fullName, email string) *User {
	now := time.Now()
	return &User{
		UUID:      uuid.New().String(),
		FullName:  fullName,
		Email:     strings.ToLower(email),
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.Status == StatusDeleted
}

// Sanitize removes sensitive information from the User object when sending to clients.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	return &sanitized
}

// UserRegistration represents the data required for user registration.
type UserRegistration struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserCredentials represents the login credentials provided by a user.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the payload of a token refresh call.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// PasswordChange represents a password change request for the current user.
type PasswordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// LoginResponse is the payload returned on successful login or registration.
// The refresh token is returned once here and never by the refresh endpoint.
type LoginResponse struct {
	User                      *User  `json:"user"`
	AccessToken               string `json:"access_token"`
	RefreshToken              string `json:"refresh_token"`
	ExpiresIn                 int    `json:"expires_in"`
	TokenType                 string `json:"token_type"`
	EmailVerificationRequired bool   `json:"email_verification_required"`
}

// RefreshResponse is the payload returned by the refresh endpoint. It carries a
// brand-new access token only; the presented refresh token stays valid until
// its natural expiry.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
