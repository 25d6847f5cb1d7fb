package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	// MongoDB configuration
	MongoURI     string
	DatabaseName string

	// Outbound notification (mail delivery API)
	MailAPIURL string
	MailAPIKey string
	AdminEmail string

	// Seed credentials for the dashboard admin account
	AdminPassword string

	// Daily summary report
	ReportHour int // hour of day (0-23) the daily summary is sent

	// Server configuration
	Port         string
	AllowOrigins string
}

func LoadConfig() *Config {
	cfg := &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:  getEnv("MONGO_DB_NAME", "frecha_bot"),
		MailAPIURL:    getEnv("MAIL_API_URL", ""),
		MailAPIKey:    getEnv("MAIL_API_KEY", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", "frechaiotech@gmail.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		ReportHour:    getEnvInt("REPORT_HOUR", 7),
		Port:          getEnv("PORT", "8080"),
		AllowOrigins:  getEnv("ALLOW_ORIGINS", "http://localhost:5173, http://localhost:3000"),
	}

	// Validate required configuration
	if cfg.MongoURI == "" {
		slog.Error("MONGO_URI not set")
	}
	if cfg.ReportHour < 0 || cfg.ReportHour > 23 {
		slog.Warn("REPORT_HOUR out of range, using default", "value", cfg.ReportHour)
		cfg.ReportHour = 7
	}
	if cfg.MailAPIURL == "" {
		slog.Info("MAIL_API_URL not set, admin notifications disabled")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}
