package config

import (
	"os"
	"testing"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	// Switch to a temp directory to avoid loading a real .env
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	})
}

func setRequired(t *testing.T) map[string]string {
	t.Helper()
	reqs := map[string]string{
		"MARIADB_DSN":               "user:pass@tcp(localhost:3306)/db",
		"MARIADB_MAX_OPEN_CONN":     "10",
		"MARIADB_MAX_IDLE_CONNS":    "5",
		"MARIADB_CONN_MAX_LIFETIME": "30",
		"SERVER_PORT":               "8080",
		"MINIO_ENDPOINT":            "localhost:9000",
		"MINIO_ACCESS_KEY":          "minio",
		"MINIO_SECRET_KEY":          "minio123",
		"MINIO_BUCKET":              "uploads",
		"MINIO_PUBLIC_BASE_URL":     "https://cdn.example.com",
		"JWT_SECRET":                "s3cret",
	}
	for k, v := range reqs {
		t.Setenv(k, v)
	}
	return reqs
}

func TestLoad_Success(t *testing.T) {
	chdirTemp(t)
	reqs := setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MariaDBDSN != reqs["MARIADB_DSN"] {
		t.Errorf("MariaDBDSN: expected %q, got %q", reqs["MARIADB_DSN"], cfg.MariaDBDSN)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns: expected 10, got %d", cfg.MaxOpenConns)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected 8080, got %d", cfg.ServerPort)
	}
	if cfg.MinioBucket != "uploads" {
		t.Errorf("MinioBucket: expected uploads, got %q", cfg.MinioBucket)
	}
	if cfg.TempDir == "" {
		t.Error("TempDir should default to the OS temp dir")
	}
	if !cfg.IsProduction() {
		t.Error("AppEnv should default to production")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	chdirTemp(t)
	setRequired(t)
	t.Setenv("MARIADB_DSN", "")

	if _, err := Load(); err == nil {
		t.Error("expected an error when MARIADB_DSN is missing")
	}
}

func TestLoad_NeedsSomeVerifier(t *testing.T) {
	chdirTemp(t)
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("expected an error when neither IDENTITY_URL nor JWT_SECRET is set")
	}
}

func TestLoad_DevMode(t *testing.T) {
	chdirTemp(t)
	setRequired(t)
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.IsProduction() {
		t.Error("development env should not read as production")
	}
}
