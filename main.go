package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/configs"
	database "dancebook_backend/internals/databases"
	scheduler "dancebook_backend/internals/features/users/auth/scheduler"
	"dancebook_backend/internals/logging"
	middlewares "dancebook_backend/internals/middlewares"
	"dancebook_backend/internals/observability"
	routes "dancebook_backend/internals/route"
	"dancebook_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	logs, err := logging.Init(configs.LogLevel, configs.AppEnv)
	if err != nil {
		panic(err)
	}
	defer logs.Closer()

	flush, err := observability.InitSentry(configs.SentryDSN, configs.AppEnv, configs.GetEnv("RELEASE", "dev"))
	if err != nil {
		zap.L().Warn("sentry init failed", zap.Error(err))
	}
	defer flush()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	app := fiber.New(fiber.Config{
		// 🚀 JSON codec
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            middlewares.ErrorHandler,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(configs.DatabaseDSN())
	if err != nil {
		zap.L().Fatal("❌ database connection failed", zap.Error(err))
	}
	database.TunePool(db)

	if configs.GetBool("RUN_MIGRATIONS", true) {
		sqlDB, err := db.DB()
		if err != nil {
			zap.L().Fatal("❌ sql handle", zap.Error(err))
		}
		if err := database.Migrate(rootCtx, sqlDB); err != nil {
			zap.L().Fatal("❌ migrations failed", zap.Error(err))
		}
	}
	if configs.GetBool("RUN_SEEDS", false) {
		seeds.RunAllSeeds(db)
	}
	database.WarmUpQueries(db)

	// 🧠 report cache (optional)
	var rc *cache.RedisCache
	if configs.RedisURL != "" {
		rc, err = cache.NewRedisCache(rootCtx, configs.RedisURL)
		if err != nil {
			zap.L().Warn("⚠️ Redis unavailable, report cache disabled", zap.Error(err))
			rc = nil
		}
	}

	// ⏱ scheduler after the DB is ready
	scheduler.StartCleanupScheduler(rootCtx, db, configs.GetDuration("TOKEN_CLEANUP_INTERVAL", 24*time.Hour))

	routes.SetupRoutes(app, db, rc)

	// 🔒 Keep-Alive & connection timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		zap.L().Info("✅ Listening", zap.String("port", configs.Port))
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			zap.L().Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + close pools
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	_ = rc.Close()
	database.Close(db)
	zap.L().Info("👋 server stopped")
}
