package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("PROJECT_NAME", "reimbursements")
	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "svc")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "bank")
	t.Setenv("POSTGRES_CONNECTION_POOL_MIN_SIZE", "2")
	t.Setenv("POSTGRES_CONNECTION_POOL_MAX_SIZE", "30")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	if !cfg.IsLocal() {
		t.Error("ENVIRONMENT=local should report IsLocal")
	}
	if cfg.PoolMinSize != 2 || cfg.PoolMaxSize != 30 {
		t.Errorf("pool = %d/%d, want 2/30", cfg.PoolMinSize, cfg.PoolMaxSize)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}

	want := "host=db.internal port=5433 user=svc password=secret dbname=bank sslmode=disable"
	if cfg.DSN() != want {
		t.Errorf("DSN = %q, want %q", cfg.DSN(), want)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("POSTGRES_CONNECTION_POOL_MIN_SIZE", "")
	t.Setenv("POSTGRES_CONNECTION_POOL_MAX_SIZE", "")
	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.IsLocal() {
		t.Error("production should not report IsLocal")
	}
	if cfg.PoolMinSize != 1 || cfg.PoolMaxSize != 20 {
		t.Errorf("pool defaults = %d/%d, want 1/20", cfg.PoolMinSize, cfg.PoolMaxSize)
	}
	if cfg.PostgresPort != "5432" {
		t.Errorf("port default = %q, want 5432", cfg.PostgresPort)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("log level default = %q, want INFO", cfg.LogLevel)
	}
}

func TestLoadBadPoolSize(t *testing.T) {
	t.Setenv("POSTGRES_CONNECTION_POOL_MAX_SIZE", "lots")

	if got := Load().PoolMaxSize; got != 20 {
		t.Errorf("PoolMaxSize = %d, want fallback 20", got)
	}
}
