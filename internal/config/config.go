package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Telegram
	BotToken string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Quiz sheets
	Sheet1URL string
	Sheet2URL string

	// Security
	InviteSecret string
	OwnerTgID    int64

	// Application
	AppEnv              string
	LogLevel            string
	FetchTimeoutSeconds int
	RateLimitPerUser    int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		BotToken:   getEnv("BOT_TOKEN", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "quizbot"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "quizbot_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Sheet1URL: getEnv("SHEET1_URL", ""),
		Sheet2URL: getEnv("SHEET2_URL", ""),

		InviteSecret: getEnv("INVITE_SECRET_KEY", ""),

		AppEnv:              getEnv("APP_ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		FetchTimeoutSeconds: getEnvInt("FETCH_TIMEOUT_SECONDS", 15),
		RateLimitPerUser:    getEnvInt("RATE_LIMIT_PER_USER", 20),
	}

	ownerStr := getEnv("OWNER_TELEGRAM_ID", "")
	if ownerStr != "" {
		id, err := strconv.ParseInt(ownerStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OWNER_TELEGRAM_ID: %w", err)
		}
		cfg.OwnerTgID = id
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Sheet1URL == "" || c.Sheet2URL == "" {
		return fmt.Errorf("SHEET1_URL and SHEET2_URL are required")
	}
	if c.InviteSecret == "" {
		return fmt.Errorf("INVITE_SECRET_KEY is required")
	}
	if len(c.InviteSecret) < 32 {
		return fmt.Errorf("INVITE_SECRET_KEY must be at least 32 characters")
	}
	return nil
}

// SheetURL maps a sheet key from a callback payload to its configured URL.
func (c *Config) SheetURL(key string) (string, bool) {
	switch key {
	case "quiz1":
		return c.Sheet1URL, true
	case "quiz2":
		return c.Sheet2URL, true
	}
	return "", false
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) GetFetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
