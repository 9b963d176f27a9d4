package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	APIKey      string
	DatabaseURL string
	JWTSecret   string

	UsageRetentionDays     int
	RetentionIntervalHours int

	// Per-plan request allowances (requests per minute). Zero means
	// use the plan default.
	RateLimitFree  int
	RateLimitPro   int
	RateLimitUltra int
}

func Load() Config {
	cfg := Config{
		Port:                   8000,
		APIKey:                 os.Getenv("API_KEY"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		UsageRetentionDays:     30,
		RetentionIntervalHours: 24,
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}

	if v := os.Getenv("USAGE_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.UsageRetentionDays = n
		}
	}

	if v := os.Getenv("RETENTION_INTERVAL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetentionIntervalHours = n
		}
	}

	cfg.RateLimitFree = envInt("RATE_LIMIT_FREE")
	cfg.RateLimitPro = envInt("RATE_LIMIT_PRO")
	cfg.RateLimitUltra = envInt("RATE_LIMIT_ULTRA")

	return cfg
}

func envInt(key string) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}
