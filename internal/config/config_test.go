package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvCatalogFile, EnvBuiltin, EnvFormat, EnvLocale, EnvReferenceDate} {
		t.Setenv(k, "")
	}
	// Keep a stray .env in the package directory from leaking in.
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFormat, "csv")
	t.Setenv(EnvLocale, "en")
	t.Setenv(EnvReferenceDate, "30/06/2025")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "30/06/2025", cfg.ReferenceDate)
	assert.Equal(t, "premio-cnj-2025", cfg.Builtin)
}

func TestLoadFromDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("PREMIOCNJ_FORMAT=text\n"), 0644))
	// godotenv never overrides variables that are already set, even to "".
	require.NoError(t, os.Unsetenv(EnvFormat))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	require.NoError(t, os.Unsetenv(EnvFormat))
}

func TestLoadDefersFormatCheck(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFormat, "pdf")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Format)
	assert.False(t, ValidFormat(cfg.Format))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"catalog file only", func(c *Config) { c.Builtin = ""; c.CatalogFile = "x.yaml" }, false},
		{"no catalog", func(c *Config) { c.Builtin = "" }, true},
		{"format left to the caller", func(c *Config) { c.Format = "xlsx" }, false},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	c := Default()
	cat, err := c.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, "premio-cnj-2025", cat.Name)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: custom\nindicators: []\n"), 0644))
	c.CatalogFile = path
	cat, err = c.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, "custom", cat.Name)
}
