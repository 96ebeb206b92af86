package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

type Config struct {
	Port               string
	Environment        string
	AllowedOrigins     []string
	JWTSecret          string
	MatchTokenTTL      time.Duration
	BoardRows          int
	BoardColumns       int
	SessionIdleTTL     time.Duration
	SessionFinishedTTL time.Duration
	CleanupInterval    time.Duration
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	environment := GetEnv("APP_ENV", "production")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + CSV values)
	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	tokenTTLHours := GetEnvAsInt("MATCH_TOKEN_TTL_HOURS", 12)

	// Board
	rows := GetEnvAsInt("BOARD_ROWS", domain.Rows)
	columns := GetEnvAsInt("BOARD_COLUMNS", domain.Columns)

	return &Config{
		Port:               port,
		Environment:        environment,
		AllowedOrigins:     allowedOrigins,
		JWTSecret:          jwtSecret,
		MatchTokenTTL:      time.Duration(tokenTTLHours) * time.Hour,
		BoardRows:          rows,
		BoardColumns:       columns,
		SessionIdleTTL:     GetEnvAsDuration("SESSION_IDLE_TTL", 24*time.Hour),
		SessionFinishedTTL: GetEnvAsDuration("SESSION_FINISHED_TTL", 1*time.Hour),
		CleanupInterval:    GetEnvAsDuration("CLEANUP_INTERVAL", 1*time.Hour),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts time.ParseDuration syntax ("90m", "2h").
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
