package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// envPrefix prefixes every configuration environment variable except the
// LOG_* ones, e.g. SQUADSELECTOR_STORE_BACKEND.
const envPrefix = "SQUADSELECTOR"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	Catalog          string
	DataDir          string
	CatalogURL       string
	CatalogRate      float64
	CacheTTL         time.Duration
	PositionFallback string

	// Storage configuration
	StoreBackend   string
	StorePath      string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisNamespace string

	// Sharing
	ShareBaseURL string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.squadselector.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the home and working directories; an explicit file must exist.
func LoadConfigFile(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &errors.ConfigError{Component: "config", Message: "cannot read " + path, Err: err}
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".squadselector")
		// Missing config file is fine
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Catalog:          v.GetString("catalog"),
		DataDir:          v.GetString("data_dir"),
		CatalogURL:       v.GetString("catalog_url"),
		CatalogRate:      v.GetFloat64("catalog_rate"),
		CacheTTL:         v.GetDuration("cache_ttl"),
		PositionFallback: v.GetString("position_fallback"),

		StoreBackend:   v.GetString("store_backend"),
		StorePath:      v.GetString("store_path"),
		RedisAddr:      v.GetString("redis_addr"),
		RedisPassword:  v.GetString("redis_password"),
		RedisDB:        v.GetInt("redis_db"),
		RedisNamespace: v.GetString("redis_namespace"),

		ShareBaseURL: v.GetString("share_base_url"),

		// LOG_LEVEL stays empty unless set so -v and -q can apply
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.StorePath == "" {
		config.StorePath = defaultStorePath(config.StoreBackend)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "files")
	v.SetDefault("data_dir", "data")
	v.SetDefault("catalog_rate", constants.DefaultCatalogRate)
	v.SetDefault("cache_ttl", constants.CatalogCacheTTL)
	v.SetDefault("position_fallback", "MID")
	v.SetDefault("store_backend", "bolt")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_namespace", "squadselector")
}

// defaultStorePath places file backends under ~/.squadselector.
func defaultStorePath(backend string) string {
	name := "squads.db"
	if backend == "sqlite" {
		name = "squads.sqlite"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".squadselector", name)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
