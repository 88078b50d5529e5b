package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
)

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

// AddToBlacklist stores HMAC(access_token); the raw token never hits the table.
func AddToBlacklist(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string, expiresAt time.Time) error {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(jwtSecret) == "" {
		return nil
	}
	return db.WithContext(ctx).Exec(`
		INSERT INTO token_blacklist (token, expired_at)
		VALUES (?, ?)
		ON CONFLICT (token) DO UPDATE
		SET expired_at = EXCLUDED.expired_at,
		    deleted_at = NULL
	`, hmacHex(rawAccessToken, jwtSecret), expiresAt).Error
}

func IsBlacklisted(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string) (bool, error) {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(jwtSecret) == "" {
		return false, nil
	}
	var exists bool
	err := db.WithContext(ctx).Raw(`
		SELECT EXISTS (
		  SELECT 1
		  FROM token_blacklist
		  WHERE token = ?
		    AND deleted_at IS NULL
		    AND expired_at > NOW()
		)
	`, hmacHex(rawAccessToken, jwtSecret)).Scan(&exists).Error
	return exists, err
}
