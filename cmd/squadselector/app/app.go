// Package app provides the application context and dependency management
// for the squadselector CLI: configuration, logging, the storage backend,
// the player catalog and the selector built on top of them.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/catalogs"
	"github.com/jpamies/worldcup-squad-selector/internal/catalogs/cache"
	"github.com/jpamies/worldcup-squad-selector/internal/catalogs/files"
	"github.com/jpamies/worldcup-squad-selector/internal/catalogs/remote"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv/bolt"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv/redis"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv/sqlite"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// App represents the squadselector application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	out    io.Writer

	// Lazily built on first use
	mu       sync.Mutex
	selector squadselector.Client
	store    kv.Store
	catalog  players.Catalog
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --output value. Without one, terminals get a
// table and pipes get JSON.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Selector returns the squad selector, opening the store and catalog on
// first use.
func (a *App) Selector() (squadselector.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.selector != nil {
		return a.selector, nil
	}

	if a.store == nil {
		store, err := a.openStore()
		if err != nil {
			return nil, errors.WrapResource("open", "store", a.config.StoreBackend, err)
		}
		a.store = store
	}
	if a.catalog == nil {
		catalog, err := a.buildCatalog()
		if err != nil {
			return nil, errors.WrapResource("create", "catalog", a.config.Catalog, err)
		}
		a.catalog = catalog
	}

	sel, err := squadselector.New(
		squadselector.WithStore(a.store),
		squadselector.WithCatalog(a.catalog),
		squadselector.WithLogger(a.logger),
		squadselector.WithShareBaseURL(a.config.ShareBaseURL),
	)
	if err != nil {
		return nil, errors.WrapResource("create", "selector", "", err)
	}

	a.selector = sel
	return sel, nil
}

// Shutdown releases the storage backend.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	store := a.store
	a.store = nil
	a.selector = nil
	a.mu.Unlock()

	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return errors.WrapResource("close", "store", a.config.StoreBackend, err)
		}
		a.logger.Debug().Str("backend", a.config.StoreBackend).Msg("Store closed")
	}
	return nil
}

// openStore opens the configured storage backend.
func (a *App) openStore() (kv.Store, error) {
	cfg := a.config
	switch strings.ToLower(cfg.StoreBackend) {
	case "memory":
		return kv.NewMemory(), nil
	case "bolt", "":
		if err := ensureDir(cfg.StorePath); err != nil {
			return nil, err
		}
		return bolt.Open(cfg.StorePath)
	case "sqlite":
		if err := ensureDir(cfg.StorePath); err != nil {
			return nil, err
		}
		return sqlite.Open(cfg.StorePath)
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultHTTPTimeout)
		defer cancel()
		return redis.Open(ctx, redis.Config{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: cfg.RedisNamespace,
		})
	default:
		return nil, errors.NewConfigError("store", "unknown backend "+cfg.StoreBackend+": must be bolt, sqlite, redis or memory", nil)
	}
}

// buildCatalog builds the configured catalog adapter behind the cache.
func (a *App) buildCatalog() (players.Catalog, error) {
	cfg := a.config

	normalizerOpts := []players.NormalizerOption{players.WithNormalizerLogger(a.logger)}
	if fb := strings.TrimSpace(cfg.PositionFallback); fb != "" && !strings.EqualFold(fb, "none") {
		pos, err := players.ParsePosition(strings.ToUpper(fb))
		if err != nil {
			return nil, errors.NewConfigError("catalog", "invalid position_fallback "+fb, err)
		}
		normalizerOpts = append(normalizerOpts, players.WithFallback(pos))
	}
	normalizer := players.NewNormalizer(normalizerOpts...)

	kind, err := catalogs.ParseKind(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	var inner players.Catalog
	switch kind {
	case catalogs.Files:
		inner = files.New(cfg.DataDir,
			files.WithNormalizer(normalizer),
			files.WithLogger(a.logger),
		)
	case catalogs.Remote:
		rc, err := remote.New(cfg.CatalogURL,
			remote.WithRateLimit(cfg.CatalogRate, int(cfg.CatalogRate)),
			remote.WithNormalizer(normalizer),
			remote.WithLogger(a.logger),
		)
		if err != nil {
			return nil, err
		}
		inner = rc
	default:
		return nil, errors.NewConfigError("catalog", "the "+kind.String()+" catalog is only available to library callers", nil)
	}

	return cache.New(inner, cache.WithTTL(cfg.CacheTTL), cache.WithLogger(a.logger)), nil
}

// ensureDir creates the parent directory of a store file.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", dir, err)
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets the storage backend instead of opening the configured one.
func WithStore(store kv.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}

// WithCatalog sets the player catalog instead of building the configured one.
func WithCatalog(catalog players.Catalog) Option {
	return func(a *App) error {
		a.catalog = catalog
		return nil
	}
}

// WithOutput sends command output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
