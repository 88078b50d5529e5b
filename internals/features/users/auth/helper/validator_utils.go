package helpers

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	reLetter = regexp.MustCompile(`[A-Za-z]`)
	reDigit  = regexp.MustCompile(`[0-9]`)
)

var ErrWeakPassword = errors.New("Password must be at least 8 characters and contain letters and digits.")

func isAlphaNumeric(s string) bool {
	return reLetter.MatchString(s) && reDigit.MatchString(s)
}

// ValidatePassword enforces the sign-up password policy.
func ValidatePassword(pw string) error {
	if len(pw) < 8 || len(pw) > 128 || !isAlphaNumeric(pw) {
		return ErrWeakPassword
	}
	return nil
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
