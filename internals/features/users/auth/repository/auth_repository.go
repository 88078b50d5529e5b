package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "dancebook_backend/internals/features/users/auth/model"
	userModel "dancebook_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("LOWER(email) = ?", userModel.NormalizeEmail(email)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{"password": hash, "updated_at": time.Now().UTC()}).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(ctx context.Context, db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.WithContext(ctx).Create(token).Error
}

// FindActiveRefreshToken: not revoked, not expired
func FindActiveRefreshToken(ctx context.Context, db *gorm.DB, hash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.WithContext(ctx).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		Take(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// RevokeRefreshToken returns gorm.ErrRecordNotFound when the token was already revoked.
func RevokeRefreshToken(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now().UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func RevokeRefreshTokenByHash(ctx context.Context, db *gorm.DB, hash []byte) error {
	return db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", time.Now().UTC()).Error
}

func RevokeAllForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	return db.WithContext(ctx).Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now().UTC()).Error
}

// PurgeRefreshTokens hard-deletes rows expired or revoked before cutoff.
func PurgeRefreshTokens(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at < ?", cutoff, cutoff).
		Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}
