// Script to migrate the schema and load the demo account without starting the API.
// Usage: go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/blaisecz/sleep-journal/internal/auth"
	"github.com/blaisecz/sleep-journal/internal/config"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/logger"
	"github.com/blaisecz/sleep-journal/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, "console", "sleep-journal-seed")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.SleepRecord{}); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	hasher := auth.NewArgon2Hasher(auth.Argon2Params{
		Time:    cfg.KDF.Time,
		Memory:  cfg.KDF.MemKiB,
		Threads: cfg.KDF.Par,
	})
	if err := seed.Run(context.Background(), db, hasher, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	log.Info("demo account ready",
		zap.String("username", seed.DemoUsername),
		zap.String("password", seed.DemoPassword),
	)
}
