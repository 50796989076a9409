package config

import (
	"testing"
	"time"
)

func TestLoadGuardsSweepInterval(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, value := range []string{"0", "-5", "garbage-then-zero"} {
		t.Setenv("SWEEP_INTERVAL_MINUTES", value)
		cfg := Load()
		if cfg.SweepInterval != 10*time.Minute {
			t.Errorf("SWEEP_INTERVAL_MINUTES=%q: SweepInterval = %v, want 10m", value, cfg.SweepInterval)
		}
	}
}

func TestLoadParsesSweepInterval(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SWEEP_INTERVAL_MINUTES", "30")

	cfg := Load()
	if cfg.SweepInterval != 30*time.Minute {
		t.Errorf("SweepInterval = %v, want 30m", cfg.SweepInterval)
	}
}
