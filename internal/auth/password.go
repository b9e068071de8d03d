package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/lexaidhq/lexaid-backend/internal/constants"
)

// HashPassword generates a bcrypt hash of the provided password. A cost of 0
// selects the application default.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = constants.DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored hash. It returns
// false with no error on a simple mismatch; an error indicates the stored hash
// itself is unusable.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
