package config

import (
	"os"
	"time"
)

type Config struct {
	ServerPort       string
	DatabaseDSN      string
	TemporalAddress  string
	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "techtravel:techtravel@tcp(localhost:3306)/techtravel?parseTime=true"),
		TemporalAddress:  getEnv("TEMPORAL_ADDRESS", "localhost:7233"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "dev-refresh-secret"),
		AccessTokenTTL:   parseDuration(getEnv("ACCESS_TOKEN_TTL", "1h"), time.Hour),
		RefreshTokenTTL:  parseDuration(getEnv("REFRESH_TOKEN_TTL", "168h"), 7*24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}
