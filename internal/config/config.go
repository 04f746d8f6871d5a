package config

import (
	"log/slog"
	"os"
	"time"
)

// fallbackJWTSecret keeps the server runnable without configuration. The
// production guard in Load refuses to start with it.
const fallbackJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/mesto?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", fallbackJWTSecret),
		JWTExpiry:   7 * 24 * time.Hour,
	}

	if cfg.Env == "production" && cfg.JWTSecret == fallbackJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
