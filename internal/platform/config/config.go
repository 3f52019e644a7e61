package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StoreDriver selects the transaction store backend.
type StoreDriver string

const (
	StorePostgres StoreDriver = "postgres"
	StoreMySQL    StoreDriver = "mysql"
	StoreMongoDB  StoreDriver = "mongodb"
	StoreMemory   StoreDriver = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      slog.Level
	StoreDriver   StoreDriver
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool
	MySQLDSN      string
	MongoURI      string
	MongoDatabase string

	// Quote provider
	QuoteAPIBaseURL string
	QuoteAPITimeout time.Duration

	CORSAllowedOrigins []string

	// Product analytics; disabled when PosthogAPIKey is empty.
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_DRIVER", string(StorePostgres))
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MYSQL_DSN", "")
	viper.SetDefault("MONGODB_URI", "")
	viper.SetDefault("MONGODB_DATABASE", "fxq")
	viper.SetDefault("QUOTE_API_BASE_URL", "https://economia.awesomeapi.com.br/")
	viper.SetDefault("QUOTE_API_TIMEOUT", "5s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		StoreDriver:     StoreDriver(strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER")))),
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:   viper.GetBool("RUN_MIGRATIONS"),
		MySQLDSN:        viper.GetString("MYSQL_DSN"),
		MongoURI:        viper.GetString("MONGODB_URI"),
		MongoDatabase:   viper.GetString("MONGODB_DATABASE"),
		QuoteAPIBaseURL: viper.GetString("QUOTE_API_BASE_URL"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: viper.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", viper.GetString("LOG_LEVEL"), err)
	}

	timeoutStr := viper.GetString("QUOTE_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid QUOTE_API_TIMEOUT %q: must be a positive duration", timeoutStr)
	}
	cfg.QuoteAPITimeout = timeout

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.validateStore(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateStore checks that the selected driver has its connection settings.
func (c *Config) validateStore() error {
	switch c.StoreDriver {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when STORE_DRIVER=%s", c.StoreDriver)
		}
	case StoreMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN is required when STORE_DRIVER=%s", c.StoreDriver)
		}
	case StoreMongoDB:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=%s", c.StoreDriver)
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGODB_DATABASE must not be empty")
		}
	case StoreMemory:
		log.Println("Warning: STORE_DRIVER=memory, transactions are lost on restart.")
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want postgres, mysql, mongodb or memory)", c.StoreDriver)
	}
	return nil
}

// AllowAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORSAllowedOrigins) == 0
}
