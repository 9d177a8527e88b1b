package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// CatalogSource selects where the nutrition reference tables are loaded from
// at startup.
type CatalogSource string

const (
	CatalogMemory   CatalogSource = "memory"
	CatalogFile     CatalogSource = "file"
	CatalogRemote   CatalogSource = "remote"
	CatalogPostgres CatalogSource = "postgres"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds PostgreSQL settings.
type DatabaseConfig struct {
	URL string
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret string
}

// CatalogConfig selects the nutrition reference data source.
type CatalogConfig struct {
	Source    CatalogSource
	FilePath  string
	RemoteURL string
}

// Load reads environment variables (optionally from a .env file) and
// materializes a Config instance.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8000"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Catalog: CatalogConfig{
			Source:    CatalogSource(getenvWithDefault("CATALOG_SOURCE", string(CatalogMemory))),
			FilePath:  os.Getenv("CATALOG_FILE"),
			RemoteURL: os.Getenv("CATALOG_URL"),
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
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL must be provided")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be provided")
	}

	switch c.Catalog.Source {
	case CatalogMemory, CatalogPostgres:
	case CatalogFile:
		if c.Catalog.FilePath == "" {
			return errors.New("CATALOG_FILE must be provided when CATALOG_SOURCE=file")
		}
	case CatalogRemote:
		if c.Catalog.RemoteURL == "" {
			return errors.New("CATALOG_URL must be provided when CATALOG_SOURCE=remote")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
