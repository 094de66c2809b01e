package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string
	// Default input files for the loader; overridable per run.
	InvoicesCSVPath  string
	LineItemsCSVPath string
	// Requests per minute per client IP for the API.
	RateLimitPerMinute int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("INVOICES_CSV_PATH", "data/invoices.csv")
	viper.SetDefault("LINE_ITEMS_CSV_PATH", "data/invoice_line_items.csv")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 100)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.InvoicesCSVPath = viper.GetString("INVOICES_CSV_PATH")
	cfg.LineItemsCSVPath = viper.GetString("LINE_ITEMS_CSV_PATH")
	cfg.RateLimitPerMinute = viper.GetInt64("RATE_LIMIT_PER_MINUTE")

	return cfg, nil
}
