// Sleep Journal API
//
// REST API for keeping a personal sleep journal.
//
//	@title			Sleep Journal API
//	@version		1.0
//	@description	Record sleep sessions, review statistics and get AI sleep advice.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@tag.name			auth
//	@tag.description	Registration, login and session endpoints
//
//	@tag.name			sleep-records
//	@tag.description	Sleep session journal endpoints
//
//	@tag.name			sleep-stats
//	@tag.description	Aggregated sleep statistics
//
//	@tag.name			recommendations
//	@tag.description	AI sleep advice endpoints
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/blaisecz/sleep-journal/internal/api"
	"github.com/blaisecz/sleep-journal/internal/api/handler"
	"github.com/blaisecz/sleep-journal/internal/auth"
	"github.com/blaisecz/sleep-journal/internal/config"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/langfuse"
	"github.com/blaisecz/sleep-journal/internal/llm"
	"github.com/blaisecz/sleep-journal/internal/logger"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/blaisecz/sleep-journal/internal/seed"
	"github.com/blaisecz/sleep-journal/internal/service"
	"github.com/blaisecz/sleep-journal/internal/telemetry"
	"go.uber.org/zap"
)

const (
	serviceName     = "sleep-journal-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sleep-journal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Tracing exports to Langfuse when keys are configured
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		log.Warn("tracing disabled", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database migration completed")

	hasher := auth.NewArgon2Hasher(auth.Argon2Params{
		Time:    cfg.KDF.Time,
		Memory:  cfg.KDF.MemKiB,
		Threads: cfg.KDF.Par,
	})
	tokens := auth.NewJWT(cfg.JWT.Secret, cfg.SessionTTL)

	if cfg.Seed {
		log.Info("seeding database with demo data (SEED=true)")
		if err := seed.Run(ctx, db, hasher, log); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewSleepRecordRepository(db)

	// Langfuse client (disabled without keys)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.Langfuse.BaseURL,
		PublicKey:   cfg.Langfuse.PublicKey,
		SecretKey:   cfg.Langfuse.SecretKey,
		Environment: cfg.Langfuse.Env,
		Logger:      log,
	})

	template, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:    cfg.Langfuse.BaseURL,
		PublicKey:  cfg.Langfuse.PublicKey,
		SecretKey:  cfg.Langfuse.SecretKey,
		PromptName: cfg.Langfuse.PromptName,
		SavePath:   cfg.PromptCachePath,
		Fallback:   llm.DefaultPromptTemplate,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("failed to load recommendation prompt: %w", err)
	}

	// OpenAI-compatible client (nil when no API key is configured)
	openaiClient := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.RecommendationModel,
	})
	if openaiClient == nil {
		log.Warn("OPENAI_API_KEY not set, recommendations will report the fallback message")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokens)
	recordService := service.NewSleepRecordService(recordRepo, userRepo)
	statsService := service.NewStatsService(recordRepo, userRepo, loc)
	recommendationService := service.NewRecommendationService(
		recordRepo,
		userRepo,
		llm.NewPromptBuilder(template, loc),
		openaiClient,
		langfuseClient,
		log,
		service.RecommendationConfig{
			Timeout: cfg.RecommendationTimeout,
			Model:   cfg.RecommendationModel,
		},
	)

	// Setup router
	router := api.NewRouter(
		handler.NewAuthHandler(authService, log),
		handler.NewSleepRecordHandler(recordService, log),
		handler.NewStatsHandler(statsService, log),
		handler.NewRecommendationHandler(recommendationService, log),
		tokens,
		log,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := langfuseClient.Flush(shutdownCtx); err != nil {
		log.Warn("langfuse flush", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("tracer shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	return nil
}
