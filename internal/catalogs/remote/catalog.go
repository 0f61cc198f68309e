// Package remote provides a player catalog fetched over HTTP from the
// <base>/<team>.json files the web app serves.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jpamies/worldcup-squad-selector/internal/catalogs"
	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

var _ players.Catalog = (*Catalog)(nil)

// Catalog fetches team documents over HTTP. Requests are paced by a token
// bucket so bulk imports do not hammer the server.
type Catalog struct {
	base       *url.URL
	client     *http.Client
	limiter    *rate.Limiter
	normalizer *players.Normalizer
	logger     *zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Catalog) {
		if client != nil {
			c.client = client
		}
	}
}

// WithRateLimit allows perSecond requests per second with the given burst.
// A non-positive rate disables pacing.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Catalog) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithNormalizer sets the normalizer applied to raw player records.
func WithNormalizer(n *players.Normalizer) Option {
	return func(c *Catalog) {
		if n != nil {
			c.normalizer = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a catalog rooted at baseURL, e.g. "https://example.org/data".
func New(baseURL string, opts ...Option) (*Catalog, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, &errors.ConfigError{Component: "remote catalog", Message: "base URL is required"}
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &errors.ConfigError{Component: "remote catalog", Message: fmt.Sprintf("invalid base URL %q", baseURL), Err: err}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Catalog{
		base:       u,
		client:     &http.Client{Timeout: constants.DefaultHTTPTimeout},
		limiter:    rate.NewLimiter(rate.Limit(constants.DefaultCatalogRate), constants.DefaultCatalogRate),
		normalizer: players.NewNormalizer(),
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the document URL of a team.
func (c *Catalog) URL(team string) string {
	u := *c.base
	u.Path = u.Path + "/" + url.PathEscape(team) + ".json"
	return u.String()
}

// Players implements players.Catalog.
func (c *Catalog) Players(ctx context.Context, team string) ([]players.Player, error) {
	source := c.base.String()
	if team == "" || strings.ContainsAny(team, "/\\") {
		return nil, errors.NewCatalogError(team, source, errors.NewValidationError("team", team, "invalid team code"))
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.NewCatalogError(team, source, err)
	}

	target := c.URL(team)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.NewCatalogError(team, source, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewCatalogError(team, source, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NewCatalogError(team, source, errors.NewNotFoundError("catalog", team))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewCatalogError(team, source, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxCatalogBytes+1))
	if err != nil {
		return nil, errors.NewCatalogError(team, source, errors.WrapIO("read", target, err))
	}
	if int64(len(data)) > constants.MaxCatalogBytes {
		return nil, errors.NewCatalogError(team, source, fmt.Errorf("document larger than %d bytes", constants.MaxCatalogBytes))
	}

	_, ps, err := catalogs.Decode(data, catalogs.JSON, c.normalizer)
	if err != nil {
		return nil, errors.NewCatalogError(team, source, err)
	}

	c.logger.Debug().
		Str("team", team).
		Str("url", target).
		Dur("took", time.Since(start)).
		Int("players", len(ps)).
		Msg("Catalog fetched")
	return ps, nil
}
