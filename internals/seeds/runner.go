package seeds

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/configs"
	users "dancebook_backend/internals/seeds/users/auth"
)

const demoUsersFile = "internals/seeds/users/auth/data_users.json"

func RunAllSeeds(db *gorm.DB) {
	//* Admin
	if err := users.SeedAdmin(db, configs.GetEnv("SEED_ADMIN_EMAIL", ""), configs.GetEnv("SEED_ADMIN_PASSWORD", "")); err != nil {
		zap.L().Error("❌ admin seed failed", zap.Error(err))
	}

	//* Demo accounts (development only)
	if configs.IsProduction() {
		return
	}
	if _, err := os.Stat(demoUsersFile); err != nil {
		return
	}
	if err := users.SeedUsersFromJSON(db, demoUsersFile); err != nil {
		zap.L().Error("❌ demo user seed failed", zap.Error(err))
	}
}
