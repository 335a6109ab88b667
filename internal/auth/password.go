package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"strings"

	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"golang.org/x/crypto/argon2"
)

// MinPasswordLength is the shortest password accepted on sign up or change.
const MinPasswordLength = 8

const (
	saltLength    = 16
	argonTime     = 1
	argonMemoryKB = 64 * 1024
	argonThreads  = 4
	argonKeyLen   = 32
)

// HashPassword derives an argon2id hash of password with a fresh random salt.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("auth: generate salt: %w", err)
	}
	return derive(password, salt), salt, nil
}

// VerifyPassword reports whether password matches hash under salt.
func VerifyPassword(password string, hash, salt []byte) bool {
	return subtle.ConstantTimeCompare(derive(password, salt), hash) == 1
}

func derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemoryKB, argonThreads, argonKeyLen)
}

// ValidateNewPassword checks the length and confirmation of a new password.
func ValidateNewPassword(op, password, confirm string) error {
	if password == "" {
		return apperrors.Validation(op, "new_password", "New password is required")
	}
	if len(password) < MinPasswordLength {
		return apperrors.Validation(op, "new_password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	if password != confirm {
		return apperrors.Validation(op, "confirm_password", "Passwords do not match")
	}
	return nil
}

// ValidatePasswordChange checks a change-password form before any call is made.
func ValidatePasswordChange(current, next, confirm string) error {
	if current == "" {
		return apperrors.Validation("change_password", "current_password", "Current password is required")
	}
	return ValidateNewPassword("change_password", next, confirm)
}

// ValidateEmail performs a minimal shape check on an email address.
func ValidateEmail(op, email string) error {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if email == "" || at <= 0 || at == len(email)-1 {
		return apperrors.Validation(op, "email", "A valid email is required")
	}
	return nil
}
