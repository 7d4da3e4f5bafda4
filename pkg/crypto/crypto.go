package crypto

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// commonPasswords are rejected as substrings, case-insensitively.
var commonPasswords = []string{
	"password123",
	"qwerty123",
	"admin123",
	"letmein",
	"welcome123",
}

// WeakPasswordError reports every strength rule a password violates.
type WeakPasswordError struct {
	Violations []string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("password validation failed: %s", strings.Join(e.Violations, ", "))
}

// ValidatePasswordStrength returns all violated strength rules, or nil if the
// password is acceptable.
func ValidatePasswordStrength(password string) []string {
	var violations []string

	if utf8.RuneCountInString(password) < 12 {
		violations = append(violations, "Password must be at least 12 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		case strings.ContainsRune("!@#$%^&*()_+-=[]{};':\"\\|,.<>/?", char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain at least one number")
	}
	if !hasSpecial {
		violations = append(violations, "Password must contain at least one special character")
	}

	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lowered, common) {
			violations = append(violations, "Password is too common. Please choose a stronger password")
			break
		}
	}

	return violations
}

// HashPassword validates password strength and hashes the password with bcrypt.
// A weak password yields a *WeakPasswordError listing every violated rule.
func HashPassword(password string, cost int) (string, error) {
	if violations := ValidatePasswordStrength(password); len(violations) > 0 {
		return "", &WeakPasswordError{Violations: violations}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
// It never returns an error; a mismatch is simply false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
