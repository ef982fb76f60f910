package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Catalog       string `env:"TSCAT_CATALOG"`
	CatalogDir    string `env:"TSCAT_CATALOG_DIR"`
	CatalogPrefix string `env:"TSCAT_CATALOG_PREFIX" envDefault:"mrscan2"`
	Language      string `env:"TSCAT_LANGUAGE"       envDefault:"System"`
	UILocale      string `env:"TSCAT_UI_LOCALE"      envDefault:"en"`
	DatabaseURL   string `env:"DATABASE_URL"`
	Token         string `env:"TOKEN"`
	GuildID       string `env:"GUILD_ID"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(cfg.CatalogDir) == "" {
		cfg.CatalogDir = DefaultCatalogDir()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultCatalogDir is where catalogs are looked up when TSCAT_CATALOG_DIR is unset.
func DefaultCatalogDir() string {
	return filepath.Join(xdg.DataHome, "tscat", "translations")
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.CatalogPrefix) == "" {
		return fmt.Errorf("config: TSCAT_CATALOG_PREFIX cannot be empty")
	}
	if strings.ContainsAny(c.CatalogPrefix, `/\`) {
		return fmt.Errorf("config: TSCAT_CATALOG_PREFIX must be a file name prefix, got %q", c.CatalogPrefix)
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		switch parsed.Scheme {
		case "postgres", "postgresql":
			if parsed.Host == "" {
				return fmt.Errorf("config: invalid DATABASE_URL (%q): missing host", c.DatabaseURL)
			}
		case "sqlite":
			if strings.TrimPrefix(c.DatabaseURL, "sqlite://") == "" {
				return fmt.Errorf("config: invalid DATABASE_URL (%q): missing path", c.DatabaseURL)
			}
		default:
			return fmt.Errorf("config: invalid DATABASE_URL (%q): scheme must be postgres or sqlite", c.DatabaseURL)
		}
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord server ID (digits only)")
		}
	}
	return nil
}

// ValidateBot checks the settings only the Discord bot needs.
func (c *Config) ValidateBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}
	return nil
}
