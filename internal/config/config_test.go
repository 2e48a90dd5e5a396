package config

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := Default()
	if cfg.APIURL != "http://localhost:8000/api" || cfg.Locale != "en" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.NotifyDelay() != 5*time.Second || cfg.HTTPTimeout() != 30*time.Second {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.StateDBPath != ".todocal_state.db" || !cfg.AltScreen {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TODOCAL_API_URL", "https://todo.example.com/api/")
	t.Setenv("TODOCAL_STATE_DB", "state/custom.db")
	t.Setenv("TODOCAL_LOCALE", "TR")
	t.Setenv("TODOCAL_LOG_FILE", "-")
	t.Setenv("TODOCAL_NOTIFY_SECONDS", "8")
	t.Setenv("TODOCAL_HTTP_TIMEOUT_SECONDS", "10")
	t.Setenv("TODOCAL_ALT_SCREEN", "off")

	cfg := FromEnv(Default())
	if cfg.APIURL != "https://todo.example.com/api" {
		t.Fatalf("unexpected api url: %q", cfg.APIURL)
	}
	if cfg.StateDBPath != "state/custom.db" || cfg.Locale != "tr" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if !cfg.LogDiscarded() {
		t.Fatal("expected log discarded for -")
	}
	if cfg.NotifySeconds != 8 || cfg.HTTPTimeoutSec != 10 || cfg.AltScreen {
		t.Fatalf("unexpected numeric overrides: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("TODOCAL_NOTIFY_SECONDS", "soon")
	t.Setenv("TODOCAL_HTTP_TIMEOUT_SECONDS", "-3")
	t.Setenv("TODOCAL_ALT_SCREEN", "maybe")

	cfg := FromEnv(Default())
	if cfg != Default() {
		t.Fatalf("invalid values should be ignored: %+v", cfg)
	}
}
