package config

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata" // embed zone data for minimal containers

	"gorm.io/gorm/logger"
)

var configKeys = []string{
	"PORT", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "SEED", "DISPLAY_TIMEZONE",
	"JWT_SECRET", "SESSION_TTL", "KDF_TIME", "KDF_MEM", "KDF_PAR",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "RECOMMENDATION_MODEL", "RECOMMENDATION_TIMEOUT",
	"LANGFUSE_BASE_URL", "LANGFUSE_PUBLIC_KEY", "LANGFUSE_SECRET_KEY", "LANGFUSE_ENV",
	"LANGFUSE_PROMPT_NAME", "PROMPT_CACHE_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.DisplayTimezone != "Asia/Ho_Chi_Minh" {
		t.Fatalf("DisplayTimezone = %q", cfg.DisplayTimezone)
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Fatalf("SessionTTL = %v, want 720h", cfg.SessionTTL)
	}
	if cfg.RecommendationModel != "gpt-4o-mini" || cfg.RecommendationTimeout != 30*time.Second {
		t.Fatalf("recommendation defaults not applied: %+v", cfg)
	}
	if cfg.LangfuseEnabled() {
		t.Fatalf("Langfuse should be disabled without keys")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("DISPLAY_TIMEZONE", "Europe/Warsaw")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("KDF_TIME", "2")
	t.Setenv("KDF_MEM", "32768")
	t.Setenv("KDF_PAR", "4")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/")
	t.Setenv("RECOMMENDATION_MODEL", "gemini-2.0-flash")
	t.Setenv("RECOMMENDATION_TIMEOUT", "10s")
	t.Setenv("LANGFUSE_PUBLIC_KEY", "pk")
	t.Setenv("LANGFUSE_SECRET_KEY", "sk")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.JWT.Secret != "s3cret" || cfg.SessionTTL != time.Hour {
		t.Fatalf("session overrides missing: %+v", cfg)
	}
	if cfg.KDF.Time != 2 || cfg.KDF.MemKiB != 32768 || cfg.KDF.Par != 4 {
		t.Fatalf("kdf overrides missing: %+v", cfg.KDF)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.RecommendationModel != "gemini-2.0-flash" || cfg.RecommendationTimeout != 10*time.Second {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
	if !cfg.LangfuseEnabled() {
		t.Fatalf("Langfuse should be enabled with both keys")
	}

	loc, err := cfg.Location()
	if err != nil || loc.String() != "Europe/Warsaw" {
		t.Fatalf("Location() = %v, %v", loc, err)
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "forever")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed SESSION_TTL")
	}
}

func TestGormLogLevel(t *testing.T) {
	if got := GormLogLevel("debug"); got != logger.Info {
		t.Fatalf("GormLogLevel(debug) = %v", got)
	}
	if got := GormLogLevel("info"); got != logger.Silent {
		t.Fatalf("GormLogLevel(info) = %v", got)
	}
}
