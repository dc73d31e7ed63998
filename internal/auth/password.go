package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength matches the registration contract.
const MinPasswordLength = 6

// HashPassword returns the bcrypt hash of a raw password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a raw password against a stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}
