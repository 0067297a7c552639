package service

import (
	"account-service/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword returns nil when the plaintext matches the hash.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// CheckPassword reports whether the plaintext matches the user's stored
// hash. A user without a stored hash never matches.
func CheckPassword(u model.User, password string) bool {
	if u.PasswordHash == nil {
		return false
	}
	return ComparePassword(*u.PasswordHash, password) == nil
}
