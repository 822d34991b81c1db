package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. It is built once at startup and
// passed to the components that need it; nothing reads the environment after
// LoadConfig returns.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatabaseURL  string
	DatabaseName string

	JWT   JWTConfig
	Kafka KafkaConfig
}

type JWTConfig struct {
	Secret        string
	Algorithm     string
	LifetimeHours int
}

type KafkaConfig struct {
	Brokers []string
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// LoadConfig reads configuration from the environment (and a .env file when
// present). The signing secret and database URL have no fallback values: a
// process without them refuses to start.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			Algorithm:     getEnv("JWT_ALGORITHM", "HS256"),
			LifetimeHours: 1,
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if !supportedAlgorithms[cfg.JWT.Algorithm] {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q", cfg.JWT.Algorithm)
	}

	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_HOURS %q", v)
		}
		cfg.JWT.LifetimeHours = hours
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
