package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	AppEnv           string
	Port             string
	JWTSecret        string
	JWTRefreshSecret string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	RedisURL         string
	ReportCacheTTL   time.Duration
	SentryDSN        string
	LogLevel         string
	CorsOrigins      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" && !IsProduction() {
		if err := godotenv.Load(); err != nil {
			zap.L().Info("⚠️ .env not found, using system environment")
		} else {
			zap.L().Info("✅ .env loaded")
		}
	}

	AppEnv = GetEnv("APP_ENV", "development")
	Port = GetEnv("PORT", "3000")
	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AccessTTL = GetDuration("JWT_ACCESS_TTL", 24*time.Hour)
	RefreshTTL = GetDuration("JWT_REFRESH_TTL", 7*24*time.Hour)
	RedisURL = GetEnv("REDIS_URL")
	ReportCacheTTL = GetDuration("REPORT_CACHE_TTL", 2*time.Minute)
	SentryDSN = GetEnv("SENTRY_DSN")
	LogLevel = GetEnv("LOG_LEVEL", "info")
	CorsOrigins = GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")

	if JWTSecret == "" {
		zap.L().Warn("❌ JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		zap.L().Warn("❌ JWT_REFRESH_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetDuration accepts Go durations ("15m") or a bare number of seconds.
func GetDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func GetInt(key string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(GetEnv(key))); err == nil {
		return n
	}
	return def
}

func GetBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(GetEnv(key))); err == nil {
		return b
	}
	return def
}

func IsProduction() bool {
	env := strings.ToLower(GetEnv("APP_ENV"))
	return env == "prod" || env == "production"
}

// DatabaseDSN prefers DATABASE_URL and falls back to the DB_* variables.
func DatabaseDSN() string {
	if url := GetEnv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=dancebook",
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "dancebook"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}
