// Script to check Langfuse connectivity by sending a test trace.
// Usage: go run ./scripts/langfuse-check
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/sleep-journal/internal/config"
	"github.com/blaisecz/sleep-journal/internal/langfuse"
	"github.com/blaisecz/sleep-journal/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New("debug", "console", "langfuse-check")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("langfuse settings",
		zap.String("base_url", cfg.Langfuse.BaseURL),
		zap.String("public_key", maskKey(cfg.Langfuse.PublicKey)),
		zap.String("secret_key", maskKey(cfg.Langfuse.SecretKey)),
		zap.String("environment", cfg.Langfuse.Env),
	)

	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.Langfuse.BaseURL,
		PublicKey:   cfg.Langfuse.PublicKey,
		SecretKey:   cfg.Langfuse.SecretKey,
		Environment: cfg.Langfuse.Env,
		Logger:      log,
	})
	if !client.IsEnabled() {
		log.Fatal("langfuse client is disabled, set LANGFUSE_BASE_URL, LANGFUSE_PUBLIC_KEY and LANGFUSE_SECRET_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "langfuse-check",
		Name:   "connectivity-check",
		Input:  map[string]any{"time": time.Now().Format(time.RFC3339)},
		Output: "ok",
		Tags:   []string{"check", "manual"},
	})
	if err != nil {
		log.Fatal("failed to create trace", zap.Error(err))
	}

	// Ingestion is asynchronous; wait for delivery before exiting.
	if err := client.Flush(ctx); err != nil {
		log.Fatal("trace not delivered", zap.Error(err))
	}

	log.Info("test trace sent",
		zap.String("trace_id", traceID),
		zap.String("url", cfg.Langfuse.BaseURL+"/trace/"+traceID),
	)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
