package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"MONGO_URI", "MONGO_DB_NAME", "PORT", "REPORT_HOUR", "MAIL_API_URL"} {
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("Expected default mongo URI, got %q", cfg.MongoURI)
	}
	if cfg.DatabaseName != "frecha_bot" {
		t.Errorf("Expected default database name, got %q", cfg.DatabaseName)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.ReportHour != 7 {
		t.Errorf("Expected default report hour 7, got %d", cfg.ReportHour)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	os.Setenv("MONGO_DB_NAME", "frecha_test")
	os.Setenv("PORT", "9090")
	os.Setenv("REPORT_HOUR", "18")
	defer func() {
		os.Unsetenv("MONGO_DB_NAME")
		os.Unsetenv("PORT")
		os.Unsetenv("REPORT_HOUR")
	}()

	cfg := LoadConfig()

	if cfg.DatabaseName != "frecha_test" {
		t.Errorf("Expected database name from env, got %q", cfg.DatabaseName)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port from env, got %q", cfg.Port)
	}
	if cfg.ReportHour != 18 {
		t.Errorf("Expected report hour from env, got %d", cfg.ReportHour)
	}
}

func TestLoadConfigReportHourOutOfRange(t *testing.T) {
	for _, value := range []string{"24", "-1"} {
		os.Setenv("REPORT_HOUR", value)

		cfg := LoadConfig()
		if cfg.ReportHour != 7 {
			t.Errorf("REPORT_HOUR=%s: expected fallback to 7, got %d", value, cfg.ReportHour)
		}
	}
	os.Unsetenv("REPORT_HOUR")
}

func TestGetEnvIntInvalidValue(t *testing.T) {
	os.Setenv("REPORT_HOUR", "noon")
	defer os.Unsetenv("REPORT_HOUR")

	if got := getEnvInt("REPORT_HOUR", 7); got != 7 {
		t.Errorf("Expected fallback to default for invalid value, got %d", got)
	}
}
