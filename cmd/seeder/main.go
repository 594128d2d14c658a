package main

import (
	"log/slog"
	"os"

	"hr-inventory-backend/config"
	"hr-inventory-backend/internal/database"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	log.Info("starting database seeding")

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Error("connect database", "error", err)
		os.Exit(1)
	}

	if err := database.SeedAll(db, cfg.SeedAdminEmail, cfg.SeedAdminPassword, log); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("seeding finished")
}
