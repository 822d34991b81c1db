package config

import (
	"log/slog"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/mentorship")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.JWT.Algorithm != "HS256" {
		t.Errorf("JWT.Algorithm = %q, want %q", cfg.JWT.Algorithm, "HS256")
	}
	if cfg.JWT.LifetimeHours != 1 {
		t.Errorf("JWT.LifetimeHours = %d, want 1", cfg.JWT.LifetimeHours)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("Kafka.Brokers = %v, want empty", cfg.Kafka.Brokers)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() succeeded without DATABASE_URL")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/mentorship")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() succeeded without JWT_SECRET")
	}
}

func TestLoadConfigRejectsUnsupportedAlgorithm(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ALGORITHM", "RS256")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() accepted an asymmetric JWT_ALGORITHM")
	}
}

func TestLoadConfigTokenLifetime(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ACCESS_TOKEN_EXPIRE_HOURS", "24")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.JWT.LifetimeHours != 24 {
		t.Errorf("JWT.LifetimeHours = %d, want 24", cfg.JWT.LifetimeHours)
	}
}

func TestLoadConfigRejectsInvalidTokenLifetime(t *testing.T) {
	for _, v := range []string{"zero", "0", "-3"} {
		setRequiredEnv(t)
		t.Setenv("ACCESS_TOKEN_EXPIRE_HOURS", v)

		if _, err := LoadConfig(); err == nil {
			t.Errorf("LoadConfig() accepted ACCESS_TOKEN_EXPIRE_HOURS=%q", v)
		}
	}
}

func TestLoadConfigKafkaBrokers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("Kafka.Brokers = %v, want 2 entries", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Brokers[0] != "broker-1:9092" || cfg.Kafka.Brokers[1] != "broker-2:9092" {
		t.Errorf("Kafka.Brokers = %v", cfg.Kafka.Brokers)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
