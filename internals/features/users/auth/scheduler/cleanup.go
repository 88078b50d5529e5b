package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/configs"
	"dancebook_backend/internals/features/users/auth/model"
	authRepo "dancebook_backend/internals/features/users/auth/repository"
)

// RunCleanup hard-deletes blacklist entries and refresh tokens that expired before cutoff.
func RunCleanup(ctx context.Context, db *gorm.DB, cutoff time.Time) (blacklisted, refresh int64, err error) {
	res := db.WithContext(ctx).Unscoped().
		Where("expired_at < ?", cutoff).
		Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		return 0, 0, res.Error
	}
	blacklisted = res.RowsAffected

	refresh, err = authRepo.PurgeRefreshTokens(ctx, db, cutoff)
	return blacklisted, refresh, err
}

// StartCleanupScheduler runs RunCleanup every interval until ctx is done.
// Rows are kept TOKEN_BLACKLIST_TTL_DAYS (default 7) past their expiry.
func StartCleanupScheduler(ctx context.Context, db *gorm.DB, interval time.Duration) {
	ttlDays := configs.GetInt("TOKEN_BLACKLIST_TTL_DAYS", 7)
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			cutoff := time.Now().UTC().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			runCtx, cancel := context.WithTimeout(ctx, time.Minute)
			bl, rt, err := RunCleanup(runCtx, db, cutoff)
			cancel()
			if err != nil {
				zap.L().Error("❌ [CLEANUP] token cleanup failed", zap.Error(err))
			} else if bl+rt > 0 {
				zap.L().Info("[CLEANUP] expired tokens removed",
					zap.Int64("blacklist", bl),
					zap.Int64("refresh_tokens", rt))
			}

			select {
			case <-ctx.Done():
				zap.L().Info("[CLEANUP] scheduler stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}
