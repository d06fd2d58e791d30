package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// DefaultLedgerLockKey is the advisory lock id that serializes allocation runs on PostgreSQL.
const DefaultLedgerLockKey int64 = 7_310_420_511

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// Storage
	StoreDriver   string
	DatabaseURL   string
	EnableDBCheck bool
	SQLitePath    string
	LedgerLockKey int64

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string
	MaxPageSize        int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("SQLITE_PATH", "./data/ledger.db")
	v.SetDefault("LEDGER_LOCK_KEY", DefaultLedgerLockKey)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAX_PAGE_SIZE", 100)

	// Values from .env were exported by godotenv; real environment variables win.
	v.AutomaticEnv()

	cfg := &Config{
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		StoreDriver:   strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:   v.GetString("PGSQL_URL"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		SQLitePath:    v.GetString("SQLITE_PATH"),
		LedgerLockKey: v.GetInt64("LEDGER_LOCK_KEY"),
		RateLimit:     v.GetString("RATE_LIMIT"),
		MaxPageSize:   v.GetInt("MAX_PAGE_SIZE"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
		log.Println("Warning: CORS_ALLOWED_ORIGINS is empty. Defaulting to http://localhost:3000.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.MaxPageSize <= 0 {
		log.Printf("Warning: Invalid value for MAX_PAGE_SIZE (%d). Defaulting to 100.\n", cfg.MaxPageSize)
		cfg.MaxPageSize = 100
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %q", StoreDriverPostgres)
		}
	case StoreDriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER is %q", StoreDriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q: expected %q or %q", cfg.StoreDriver, StoreDriverPostgres, StoreDriverSQLite)
	}

	return cfg, nil
}
