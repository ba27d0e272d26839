// Package config loads CLI defaults from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/dshills/premiocnj/internal/catalog"
)

// Environment variables read by Load.
const (
	EnvCatalogFile   = "PREMIOCNJ_CATALOG"
	EnvBuiltin       = "PREMIOCNJ_BUILTIN"
	EnvFormat        = "PREMIOCNJ_FORMAT"
	EnvLocale        = "PREMIOCNJ_LOCALE"
	EnvReferenceDate = "PREMIOCNJ_REFERENCE_DATE"
)

// Formats accepted for report output.
var Formats = []string{"md", "text", "csv", "json"}

// Config holds CLI defaults. Flags override these values.
type Config struct {
	CatalogFile   string // external catalog YAML; empty means builtin
	Builtin       string
	Format        string
	Locale        string
	ReferenceDate string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Builtin:       catalog.DefaultBuiltin,
		Format:        "md",
		Locale:        "pt-BR",
		ReferenceDate: "31/07/2025",
	}
}

// Load reads a .env file if present, then overlays environment variables on
// the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.CatalogFile = os.Getenv(EnvCatalogFile)
	cfg.Builtin = getEnvOrDefault(EnvBuiltin, cfg.Builtin)
	cfg.Format = getEnvOrDefault(EnvFormat, cfg.Format)
	cfg.Locale = getEnvOrDefault(EnvLocale, cfg.Locale)
	cfg.ReferenceDate = getEnvOrDefault(EnvReferenceDate, cfg.ReferenceDate)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values. Format is not
// checked here: only the report command reads it, after applying --format.
func (c *Config) Validate() error {
	if c.CatalogFile == "" && c.Builtin == "" {
		return fmt.Errorf("config error: %s or %s is required", EnvCatalogFile, EnvBuiltin)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config error: invalid locale %q: %w", c.Locale, err)
	}
	return nil
}

// LoadCatalog returns the configured catalog, preferring CatalogFile.
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.CatalogFile != "" {
		return catalog.LoadFile(c.CatalogFile)
	}
	return catalog.LoadBuiltin(c.Builtin)
}

// ValidFormat reports whether f is a known output format.
func ValidFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
