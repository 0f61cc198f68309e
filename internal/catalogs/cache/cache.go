// Package cache keeps fetched team catalogs in memory for a limited time.
package cache

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

var _ players.Catalog = (*Catalog)(nil)

// Catalog wraps another catalog with an expiring LRU. Failed fetches are
// not cached.
type Catalog struct {
	inner  players.Catalog
	lru    *expirable.LRU[string, []players.Player]
	logger *zerolog.Logger
}

// Option configures a Catalog.
type Option func(*config)

type config struct {
	size   int
	ttl    time.Duration
	logger *zerolog.Logger
}

// WithSize sets the number of teams kept.
func WithSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.size = n
		}
	}
}

// WithTTL sets how long a catalog stays fresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New wraps inner.
func New(inner players.Catalog, opts ...Option) *Catalog {
	cfg := &config{
		size:   constants.CatalogCacheSize,
		ttl:    constants.CatalogCacheTTL,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Catalog{
		inner:  inner,
		lru:    expirable.NewLRU[string, []players.Player](cfg.size, nil, cfg.ttl),
		logger: cfg.logger,
	}
}

// Players implements players.Catalog. Callers get their own copy of the
// cached slice.
func (c *Catalog) Players(ctx context.Context, team string) ([]players.Player, error) {
	if ps, ok := c.lru.Get(team); ok {
		c.logger.Debug().Str("team", team).Msg("Catalog cache hit")
		return slices.Clone(ps), nil
	}

	ps, err := c.inner.Players(ctx, team)
	if err != nil {
		return nil, err
	}
	c.lru.Add(team, slices.Clone(ps))
	return ps, nil
}

// Invalidate drops the cached catalog of team.
func (c *Catalog) Invalidate(team string) bool {
	return c.lru.Remove(team)
}

// Purge drops every cached catalog.
func (c *Catalog) Purge() {
	c.lru.Purge()
}

// Len returns the number of cached teams.
func (c *Catalog) Len() int {
	return c.lru.Len()
}
