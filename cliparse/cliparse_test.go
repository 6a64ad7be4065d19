// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected loopback host, got %q", cfg.Host)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.HistoryLimit != 30 {
		t.Errorf("expected history limit 30, got %d", cfg.HistoryLimit)
	}
	if cfg.SpinDuration != 2*time.Second {
		t.Errorf("expected 2s spin duration, got %s", cfg.SpinDuration)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SPIN_DURATION", "3s")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.SpinDuration != 3*time.Second {
		t.Errorf("expected 3s, got %s", cfg.SpinDuration)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-env-file", "", "-p", "8080", "-d", "file:test.db", "-history-limit", "5"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %q", cfg.DatabaseURL)
	}
	if cfg.HistoryLimit != 5 {
		t.Errorf("expected history limit 5, got %d", cfg.HistoryLimit)
	}
}

func TestParseFlags_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from env file, got %q", cfg.LogLevel)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	_, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "absent.env")})
	if err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	_, err := ParseFlags([]string{"-env-file", "", "-t", "mysql"})
	if err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestParseFlags_LegacyBuiltInMaxID(t *testing.T) {
	t.Setenv("LEGACY_BUILTIN_MAX_ID", "4")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LegacyBuiltInMaxID != 4 {
		t.Errorf("expected 4, got %d", cfg.LegacyBuiltInMaxID)
	}

	cfg, err = ParseFlags([]string{"-env-file", "", "-legacy-builtin-max-id", "15"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LegacyBuiltInMaxID != 15 {
		t.Errorf("flag should override env: expected 15, got %d", cfg.LegacyBuiltInMaxID)
	}
}
