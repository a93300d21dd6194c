package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server      ServerConfig
	MongoDB     MongoDBConfig
	Scheduler   SchedulerConfig
	Sheets      SheetsConfig
	Marketplace MarketplaceConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB. An empty URI makes the service
// run against the in-memory store, which does not survive restarts.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SchedulerConfig holds the cron expressions for the background jobs.
type SchedulerConfig struct {
	SweepSchedule  string
	SyncSchedule   string
	ReportSchedule string
	Timezone       string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
// Both fields empty disables the daily summary report.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// MarketplaceConfig holds the base URLs of the marketplace stock APIs.
type MarketplaceConfig struct {
	ShopeeBaseURL  string
	ShopifyBaseURL string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "3001"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "inventory"),
		},
		Scheduler: SchedulerConfig{
			SweepSchedule:  getenvWithDefault("SWEEP_CRON_SCHEDULE", "0 * * * *"),
			SyncSchedule:   getenvWithDefault("SYNC_CRON_SCHEDULE", "*/15 * * * *"),
			ReportSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:       getenvWithDefault("TIMEZONE", "Asia/Jakarta"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		Marketplace: MarketplaceConfig{
			ShopeeBaseURL:  getenvWithDefault("SHOPEE_BASE_URL", "https://partner.shopeemobile.com/api/v2"),
			ShopifyBaseURL: getenvWithDefault("SHOPIFY_BASE_URL", "https://admin.shopify.com/api"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	switch {
	case c.Scheduler.SweepSchedule == "":
		return errors.New("SWEEP_CRON_SCHEDULE must not be empty")
	case c.Scheduler.SyncSchedule == "":
		return errors.New("SYNC_CRON_SCHEDULE must not be empty")
	case c.Scheduler.ReportSchedule == "":
		return errors.New("REPORT_CRON_SCHEDULE must not be empty")
	case c.Scheduler.Timezone == "":
		return errors.New("TIMEZONE must not be empty")
	}

	// Sheets credentials must come as a pair or not at all.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_DATABASE_ID must be set together")
	}

	return nil
}

// SheetsEnabled reports whether the daily summary report can run.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
