package user

import (
	"errors"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/constants"
	authHelper "dancebook_backend/internals/features/users/auth/helper"
	"dancebook_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// SeedUser inserts one account unless the email already exists. It reports whether a row was created.
func SeedUser(db *gorm.DB, data UserSeed) (bool, error) {
	email := model.NormalizeEmail(data.Email)
	if email == "" || data.Password == "" {
		return false, errors.New("seed user needs email and password")
	}

	var n int64
	if err := db.Model(&model.UserModel{}).Where("LOWER(email) = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		zap.L().Info("ℹ️ seed user exists, skipped", zap.String("email", email))
		return false, nil
	}

	hashed, err := authHelper.HashPassword(data.Password)
	if err != nil {
		return false, err
	}
	role := strings.ToLower(strings.TrimSpace(data.Role))
	if role == "" {
		role = constants.RoleStudent
	}
	u := model.UserModel{
		Email:     email,
		Password:  hashed,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      role,
		IsActive:  true,
		IsStaff:   role == constants.RoleAdmin,
	}
	if err := db.Create(&u).Error; err != nil {
		return false, err
	}
	zap.L().Info("✅ seed user created", zap.String("email", email), zap.String("role", role))
	return true, nil
}

// SeedAdmin makes sure an admin account exists for a fresh install.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		zap.L().Info("ℹ️ SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, admin seed skipped")
		return nil
	}
	_, err := SeedUser(db, UserSeed{Email: email, Password: password, FirstName: "Admin", Role: constants.RoleAdmin})
	return err
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	zap.L().Info("📥 reading seed users", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}
	for _, data := range inputs {
		if _, err := SeedUser(db, data); err != nil {
			zap.L().Error("❌ seed user failed", zap.String("email", data.Email), zap.Error(err))
		}
	}
	return nil
}
