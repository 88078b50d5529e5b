package database

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dancebook_backend/internals/configs"
)

var DB *gorm.DB

// ConnectDB opens the pool and stores it in DB.
func ConnectDB(dsn string) (*gorm.DB, error) {
	zap.L().Info("🔌 Connecting to PostgreSQL...")

	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	DB = db
	zap.L().Info("✅ DB connected")
	return db, nil
}

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:  configs.NewGormLogger(zap.L()),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Warn("pool tune failed", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries fills the pool in the background once the server is starting.
func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			zap.L().Warn("warm-up ping failed", zap.Error(err))
			return
		}
		db.WithContext(ctx).Exec("SELECT 1 FROM classes LIMIT 1")
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
