// config/config.go - Environment configuration
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        string
	CORSOrigins string
	StaticDir   string
}

type DatabaseConfig struct {
	Driver   string // postgres or sqlite
	URL      string // full DSN, overrides the individual fields when set
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite file, ":memory:" for tests
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
}

// IsProduction reports whether the app runs with production settings.
// Seed bootstrapping is skipped in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN assembles the postgres connection string.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads configuration from the environment, with defaults suitable for
// local development. godotenv has already populated the environment by the
// time this runs.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	viper.SetDefault("STATIC_DIR", "./static")

	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "cantaliga")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_PATH", "cantaliga.db")

	viper.SetDefault("SESSION_COOKIE", "canta_liga_session")
	viper.SetDefault("SESSION_TTL_HOURS", 720) // 30 days

	cfg := &Config{
		Env: viper.GetString("APP_ENV"),
		Server: ServerConfig{
			Port:        viper.GetString("PORT"),
			CORSOrigins: viper.GetString("CORS_ORIGINS"),
			StaticDir:   viper.GetString("STATIC_DIR"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			Path:     viper.GetString("DB_PATH"),
		},
		Session: SessionConfig{
			CookieName: viper.GetString("SESSION_COOKIE"),
			TTL:        time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
	}

	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}
