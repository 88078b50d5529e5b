package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// ClockSkew tolerated when checking exp.
const ClockSkew = 30 * time.Second

// TokenSubject is the user data embedded in an access token.
type TokenSubject struct {
	ID        uuid.UUID
	Email     string
	Role      string
	FirstName string
	LastName  string
}

func IssueAccessToken(sub TokenSubject, secret string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("missing JWT secret")
	}
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"id":         sub.ID.String(),
		"email":      sub.Email,
		"role":       sub.Role,
		"first_name": sub.FirstName,
		"last_name":  sub.LastName,
		"typ":        "access",
		"iat":        now.Unix(),
		"exp":        exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return signed, exp, err
}

// IssueRefreshToken carries only sub; jti keeps two tokens issued in the same second distinct.
func IssueRefreshToken(userID uuid.UUID, secret string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("missing JWT refresh secret")
	}
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return signed, exp, err
}

func parseHS256(raw, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if err := validateExpiry(claims, ClockSkew, time.Now()); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseAccessToken verifies signature and exp and returns the user id plus claims.
func ParseAccessToken(raw, secret string) (uuid.UUID, jwt.MapClaims, error) {
	claims, err := parseHS256(raw, secret)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if typ, _ := claims["typ"].(string); typ == "refresh" {
		return uuid.Nil, nil, ErrTokenInvalid
	}
	idRaw, _ := claims["id"].(string)
	id, err := uuid.Parse(strings.TrimSpace(idRaw))
	if err != nil {
		return uuid.Nil, nil, ErrTokenInvalid
	}
	return id, claims, nil
}

func ParseRefreshToken(raw, secret string) (uuid.UUID, error) {
	claims, err := parseHS256(raw, secret)
	if err != nil {
		return uuid.Nil, err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, ErrTokenInvalid
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}

// ExpiryOf returns the exp claim, or the zero time.
func ExpiryOf(claims jwt.MapClaims) time.Time {
	if v, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(v), 0).UTC()
	}
	return time.Time{}
}

func validateExpiry(claims jwt.MapClaims, skew time.Duration, now time.Time) error {
	exp := ExpiryOf(claims)
	if exp.IsZero() {
		return fmt.Errorf("%w: no exp", ErrTokenInvalid)
	}
	if now.UTC().After(exp.Add(skew)) {
		return ErrTokenExpired
	}
	return nil
}

// RefreshHash is what refresh_tokens.token_hash stores.
func RefreshHash(raw, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(raw))
	return m.Sum(nil)
}
