package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Supported dataset store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	STORE_DRIVER=memory
//	SALES_FILE=./data/penjualan.xlsx
//	PURCHASE_FILE=./data/pembelian.xlsx
//	MAX_UPLOAD_MB=10
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=stockscore
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Datasets DatasetsConfig
	Postgres PostgresConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string // TCP port the HTTP server listens on (e.g., "8080")
	MaxUploadMB int64  // upper bound for a single uploaded workbook
}

// StoreConfig selects where imported datasets are kept.
type StoreConfig struct {
	Driver string // "memory" (default) or "postgres"
}

// DatasetsConfig lists workbooks preloaded when the API starts. Both are optional.
type DatasetsConfig struct {
	SalesFile    string
	PurchaseFile string
}

// PostgresConfig defines connection details for PostgreSQL. Only used when
// Store.Driver is "postgres".
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// UsesPostgres reports whether datasets are persisted in PostgreSQL.
func (c Config) UsesPostgres() bool {
	return c.Store.Driver == StorePostgres
}

// AppConfig is the globally accessible configuration instance, populated by LoadConfig.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Missing required variables terminate the process (see validateConfig).
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MAX_UPLOAD_MB", 10)
	viper.SetDefault("STORE_DRIVER", StoreMemory)
	viper.SetDefault("SALES_FILE", "")
	viper.SetDefault("PURCHASE_FILE", "")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "stockscore")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			MaxUploadMB: viper.GetInt64("MAX_UPLOAD_MB"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER"))),
		},
		Datasets: DatasetsConfig{
			SalesFile:    viper.GetString("SALES_FILE"),
			PurchaseFile: viper.GetString("PURCHASE_FILE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = PostgresDSN(AppConfig.Postgres)

	validateConfig()
}

// PostgresDSN builds the connection string used by database/sql.
func PostgresDSN(pg PostgresConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pg.User,
		pg.Password,
		pg.Host,
		pg.Port,
		pg.DBName,
		pg.SSLMode,
	)
}

// missingFields lists required settings that are empty. Postgres settings are
// only required when the postgres store is selected.
func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.MaxUploadMB <= 0 {
		missing = append(missing, "MAX_UPLOAD_MB")
	}
	switch cfg.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if cfg.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	default:
		missing = append(missing, "STORE_DRIVER (memory|postgres)")
	}

	return missing
}

// validateConfig terminates the application when required variables are missing.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
