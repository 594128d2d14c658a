package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-inventory-backend/config"
	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/notify"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/routes"
	"hr-inventory-backend/internal/security"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1. Load konfigurasi
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Koneksi ke Database
	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	var notifier notify.Notifier = notify.Nop{Log: log}
	if cfg.SMTPHost != "" {
		notifier = notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, log)
	}
	ledger := usecase.NewLedgerUsecase(db, notifier, log)

	// 3. Menyiapkan routes
	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler(log)})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: cfg.CORSOrigins != "*",
	}))
	app.Use(logger.New())

	routes.Setup(app, routes.Deps{
		DB:           db,
		Authz:        rbac.NewAuthorizer(rbac.DefaultTable),
		Tokens:       security.NewTokenManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Ledger:       ledger,
		CookieSecure: cfg.CookieSecure,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	// 4. Server siap
	log.Info("server listening", "port", cfg.HTTPPort, "env", cfg.Env)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Error("server error", "error", err)
	}

	// tunggu email low-stock yang masih dikirim
	ledger.Wait()
}
