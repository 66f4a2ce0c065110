package config

import (
	"os"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DAYWEAVE_JWT_SECRET", "test-secret")
	t.Setenv("DAYWEAVE_REDIS_ADDR", "localhost:6379")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.PlanTTL != 72*time.Hour {
		t.Errorf("PlanTTL = %v, want 72h", cfg.PlanTTL)
	}
	if cfg.CheckpointTTL != 30*time.Minute {
		t.Errorf("CheckpointTTL = %v, want 30m", cfg.CheckpointTTL)
	}
	if cfg.SessionIdleTTL != 6*time.Hour {
		t.Errorf("SessionIdleTTL = %v, want 6h", cfg.SessionIdleTTL)
	}
	if cfg.DistanceSeed != 0 {
		t.Errorf("DistanceSeed = %d, want 0", cfg.DistanceSeed)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DAYWEAVE_JWT_SECRET", "test-secret")
	t.Setenv("DAYWEAVE_REDIS_ADDR", "redis:6380")
	t.Setenv("DAYWEAVE_PLAN_TTL", "24h")
	t.Setenv("DAYWEAVE_DISTANCE_SEED", "42")
	t.Setenv("DAYWEAVE_ALLOWED_ORIGINS", "https://app.dayweave.io, https://staging.dayweave.io")

	cfg := Load()

	if cfg.RedisAddr != "redis:6380" {
		t.Errorf("RedisAddr = %q, want redis:6380", cfg.RedisAddr)
	}
	if cfg.PlanTTL != 24*time.Hour {
		t.Errorf("PlanTTL = %v, want 24h", cfg.PlanTTL)
	}
	if cfg.DistanceSeed != 42 {
		t.Errorf("DistanceSeed = %d, want 42", cfg.DistanceSeed)
	}
	want := []string{"https://app.dayweave.io", "https://staging.dayweave.io"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}
