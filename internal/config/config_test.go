package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT", "FLASH_SECRET",
	"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	"TANK_STORE_DRIVER", "TANK_DATA_FILE", "TANK_SQLITE_PATH", "DB_DSN",
	"TANK_BADGER_DIR", "TANK_S3_BUCKET", "TANK_S3_KEY", "TANK_S3_REGION",
	"TANK_S3_ENDPOINT", "TANK_S3_PATH_STYLE", "TANK_STORE_URL", "TANK_STORE_API_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Addr)
	}
	if cfg.AppName != "crud-tank" {
		t.Fatalf("unexpected app name %q", cfg.AppName)
	}
	if cfg.ReadTimeout != 5*time.Second || cfg.WriteTimeout != 10*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %+v", cfg)
	}
	if cfg.Store.Driver != "file" || cfg.Store.DataFile != "data/fish.json" {
		t.Fatalf("unexpected store config %+v", cfg.Store)
	}
	if cfg.Store.S3Key != "fish.json" || cfg.Store.BadgerDir != "data/badger" || cfg.Store.SQLitePath != "data/tank.db" {
		t.Fatalf("unexpected store defaults %+v", cfg.Store)
	}
	if cfg.FlashSecret == "" {
		t.Fatalf("expected a default flash secret")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TANK_STORE_DRIVER", "SQLite")
	t.Setenv("HTTP_READ_TIMEOUT", "2")
	t.Setenv("TANK_S3_PATH_STYLE", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Fatalf("expected driver lowercased, got %q", cfg.Store.Driver)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Fatalf("unexpected read timeout %v", cfg.ReadTimeout)
	}
	if !cfg.Store.S3PathStyle {
		t.Fatalf("expected path style")
	}
}

func TestLoad_DotEnvDoesNotOverride(t *testing.T) {
	clearEnv(t)
	// godotenv solo completa variables ausentes
	_ = os.Unsetenv("TANK_DATA_FILE")
	t.Setenv("APP_NAME", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	body := "TANK_DATA_FILE=/tmp/tank/fish.json\nAPP_NAME=from-file\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.DataFile != "/tmp/tank/fish.json" {
		t.Fatalf("expected data file from .env, got %q", cfg.Store.DataFile)
	}
	if cfg.AppName != "from-env" {
		t.Fatalf("expected env to win over .env, got %q", cfg.AppName)
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	for _, key := range []string{"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, "abc")
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatalf("expected error for %s=abc", key)
			}
		})
	}

	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "-1")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("TANK_S3_PATH_STYLE", "maybe")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for invalid bool")
	}
}
