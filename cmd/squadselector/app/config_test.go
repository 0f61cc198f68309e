package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// isolate points HOME at an empty directory so no user config is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

// TestLoadConfig verifies the defaults.
func TestLoadConfig(t *testing.T) {
	home := isolate(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Catalog != "files" {
		t.Errorf("Catalog = %q, want files", config.Catalog)
	}
	if config.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", config.DataDir)
	}
	if config.StoreBackend != "bolt" {
		t.Errorf("StoreBackend = %q, want bolt", config.StoreBackend)
	}
	if want := filepath.Join(home, ".squadselector", "squads.db"); config.StorePath != want {
		t.Errorf("StorePath = %q, want %q", config.StorePath, want)
	}
	if config.CacheTTL != constants.CatalogCacheTTL {
		t.Errorf("CacheTTL = %v, want %v", config.CacheTTL, constants.CatalogCacheTTL)
	}
	if config.PositionFallback != "MID" {
		t.Errorf("PositionFallback = %q, want MID", config.PositionFallback)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.ConfigFile != "" {
		t.Errorf("ConfigFile = %q, want none", config.ConfigFile)
	}
}

// TestConfig_EnvironmentVariables verifies prefixed environment variables.
func TestConfig_EnvironmentVariables(t *testing.T) {
	home := isolate(t)
	t.Setenv("SQUADSELECTOR_STORE_BACKEND", "sqlite")
	t.Setenv("SQUADSELECTOR_CACHE_TTL", "90m")
	t.Setenv("SQUADSELECTOR_REDIS_DB", "3")
	t.Setenv("SQUADSELECTOR_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.StoreBackend != "sqlite" {
		t.Errorf("StoreBackend = %q, want sqlite", config.StoreBackend)
	}
	if want := filepath.Join(home, ".squadselector", "squads.sqlite"); config.StorePath != want {
		t.Errorf("StorePath = %q, want %q", config.StorePath, want)
	}
	if config.CacheTTL != 90*time.Minute {
		t.Errorf("CacheTTL = %v, want 90m", config.CacheTTL)
	}
	if config.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", config.RedisDB)
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
}

// TestConfig_DotEnv verifies that .env.local wins over .env.
func TestConfig_DotEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SQUADSELECTOR_SHARE_BASE_URL", "")
	os.Unsetenv("SQUADSELECTOR_SHARE_BASE_URL")

	write(t, ".env", "SQUADSELECTOR_SHARE_BASE_URL=https://env.example\n")
	write(t, ".env.local", "SQUADSELECTOR_SHARE_BASE_URL=https://local.example\n")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.ShareBaseURL != "https://local.example" {
		t.Errorf("ShareBaseURL = %q, want the .env.local value", config.ShareBaseURL)
	}
}

// TestLoadConfigFile verifies explicit config files.
func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "squads.yaml")
	write(t, path, strings.Join([]string{
		"catalog: remote",
		"catalog_url: https://example.org/data",
		"catalog_rate: 2",
		"store_backend: memory",
		"position_fallback: none",
		"",
	}, "\n"))

	config, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() failed: %v", err)
	}
	if config.Catalog != "remote" || config.CatalogURL != "https://example.org/data" {
		t.Errorf("catalog = %q %q", config.Catalog, config.CatalogURL)
	}
	if config.CatalogRate != 2 {
		t.Errorf("CatalogRate = %v, want 2", config.CatalogRate)
	}
	if config.StoreBackend != "memory" {
		t.Errorf("StoreBackend = %q, want memory", config.StoreBackend)
	}
	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, path)
	}

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("missing file error = %v, want ConfigError", err)
	}
}

// TestConfig_UpdateFromFlags verifies that set flags win and unset flags keep
// the loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "warn", Quiet: true}

	config.UpdateFromFlags(true, false, true, "", "")
	if !config.Verbose || !config.Quiet || !config.NoColor {
		t.Errorf("bool flags = %v %v %v", config.Verbose, config.Quiet, config.NoColor)
	}
	if config.Format != "yaml" || config.LogLevel != "warn" {
		t.Errorf("empty flags overwrote config: %q %q", config.Format, config.LogLevel)
	}

	config.UpdateFromFlags(false, false, false, "json", "trace")
	if config.Format != "json" || config.LogLevel != "trace" {
		t.Errorf("flags not applied: %q %q", config.Format, config.LogLevel)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		t.Fatal(err)
	}
}
