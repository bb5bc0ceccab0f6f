package config

import (
	"os"
	"testing"
	"time"
)

// clearConfigEnv unsets every variable Load reads so the defaults apply
// regardless of the environment the tests run in.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "ENV",
		"STORAGE_DRIVER", "STORAGE_URL", "STORAGE_MAX_OPEN_CONNS", "STORAGE_MAX_IDLE_CONNS",
		"STORAGE_CONN_MAX_LIFETIME", "REDIS_URL", "REDIS_PASSWORD",
	}
	for _, key := range keys {
		// t.Setenv registers the restore; the unset makes the default apply,
		// since Load treats an empty value as set.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := Load()

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("expected default environment development, got %s", cfg.Server.Environment)
	}
	if cfg.Storage.Driver != StorageDriverDB {
		t.Errorf("expected default storage driver %s, got %s", StorageDriverDB, cfg.Storage.Driver)
	}
	if cfg.Storage.URL != "ledgerly.db" {
		t.Errorf("expected default storage url ledgerly.db, got %s", cfg.Storage.URL)
	}
	if cfg.Storage.MaxOpenConns != 5 {
		t.Errorf("expected default max open conns 5, got %d", cfg.Storage.MaxOpenConns)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Errorf("expected default redis url, got %s", cfg.Redis.URL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("STORAGE_DRIVER", StorageDriverRedis)
	t.Setenv("STORAGE_CONN_MAX_LIFETIME", "30s")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")

	cfg := Load()

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host override, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port override, got %d", cfg.Server.Port)
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("expected environment override, got %s", cfg.Server.Environment)
	}
	if cfg.Storage.Driver != StorageDriverRedis {
		t.Errorf("expected storage driver override, got %s", cfg.Storage.Driver)
	}
	if cfg.Storage.ConnMaxLifetime != 30*time.Second {
		t.Errorf("expected lifetime override, got %s", cfg.Storage.ConnMaxLifetime)
	}
	if cfg.Redis.URL != "redis://cache:6379/2" {
		t.Errorf("expected redis url override, got %s", cfg.Redis.URL)
	}
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_PORT", "not a number")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected the default port for a malformed value, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected the default timeout for a malformed value, got %s", cfg.Server.ReadTimeout)
	}
}
