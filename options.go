package squadselector

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// options holds the client configuration.
type options struct {
	store        kv.Store
	catalog      players.Catalog
	logger       *zerolog.Logger
	now          func() time.Time
	newID        func() string
	shareBaseURL string
}

func defaults() *options {
	return &options{
		logger: logging.Default(),
		now:    time.Now,
	}
}

// Option is a function that configures a Client.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithStore sets the persistent key-value store. Without it the client keeps
// everything in memory.
func WithStore(store kv.Store) Option {
	return func(o *options) error {
		if store == nil {
			return &errors.ValidationError{Field: "store", Message: "cannot be nil"}
		}
		o.store = store
		return nil
	}
}

// WithCatalog sets the player catalog. It is required.
func WithCatalog(catalog players.Catalog) Option {
	return func(o *options) error {
		if catalog == nil {
			return &errors.ValidationError{Field: "catalog", Message: "cannot be nil"}
		}
		o.catalog = catalog
		return nil
	}
}

// WithLogger sets the logger used by the client and its profile store.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// WithClock sets the time source for saved timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		if now != nil {
			o.now = now
		}
		return nil
	}
}

// WithIDGenerator sets the profile id generator.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) error {
		o.newID = gen
		return nil
	}
}

// WithShareBaseURL sets the page that share links point at, for example
// "https://example.org/overview.html".
func WithShareBaseURL(base string) Option {
	return func(o *options) error {
		o.shareBaseURL = base
		return nil
	}
}
