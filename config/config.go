package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the server needs at construction time. It is
// built once in main and passed down explicitly; no package keeps a global
// copy of the secret.
type Config struct {
	Port      string
	AppSecret string
	TokenTTL  time.Duration

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() (Config, error) {
	cfg := Config{
		Port:      envOr("PORT", "4000"),
		AppSecret: os.Getenv("APP_SECRET"),
		TokenTTL:  time.Hour,

		DBHost:     envOr("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     envOr("DB_PORT", "5432"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.AppSecret == "" {
		return Config{}, fmt.Errorf("APP_SECRET is not set in the environment")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
