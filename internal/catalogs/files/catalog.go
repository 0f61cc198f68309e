// Package files provides a player catalog read from per-team files.
package files

import (
	"context"
	"io/fs"
	"os"
	"path"
	"slices"

	"github.com/rs/zerolog"

	"github.com/jpamies/worldcup-squad-selector/internal/catalogs"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

var _ players.Catalog = (*Catalog)(nil)

// candidates are tried in order for each team.
var candidates = []struct {
	ext    string
	format catalogs.Format
}{
	{".json", catalogs.JSON},
	{".yaml", catalogs.YAML},
	{".yml", catalogs.YAML},
}

// Catalog reads <team>.json, <team>.yaml or <team>.yml from a directory.
// Files are read on every call; wrap it in a cache for repeated use.
type Catalog struct {
	fsys       fs.FS
	source     string
	normalizer *players.Normalizer
	logger     *zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

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

// New creates a catalog over the directory dir.
func New(dir string, opts ...Option) *Catalog {
	return NewFS(os.DirFS(dir), dir, opts...)
}

// NewFS creates a catalog over fsys. source names it in errors and logs.
func NewFS(fsys fs.FS, source string, opts ...Option) *Catalog {
	c := &Catalog{
		fsys:       fsys,
		source:     source,
		normalizer: players.NewNormalizer(),
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Players implements players.Catalog.
func (c *Catalog) Players(ctx context.Context, team string) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(team) || path.Base(team) != team {
		return nil, errors.NewCatalogError(team, c.source, errors.NewValidationError("team", team, "invalid team code"))
	}

	for _, cand := range candidates {
		name := team + cand.ext
		data, err := fs.ReadFile(c.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.NewCatalogError(team, c.source, errors.WrapIO("read", name, err))
		}

		doc, ps, err := catalogs.Decode(data, cand.format, c.normalizer)
		if err != nil {
			return nil, errors.NewCatalogError(team, c.source, err)
		}
		c.logger.Debug().
			Str("team", team).
			Str("file", name).
			Str("updated", doc.LastUpdated).
			Int("players", len(ps)).
			Msg("Catalog file loaded")
		return ps, nil
	}
	return nil, errors.NewCatalogError(team, c.source, errors.NewNotFoundError("catalog file", team))
}

// Teams lists the teams that have a catalog file, sorted.
func (c *Catalog) Teams() ([]string, error) {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return nil, errors.WrapIO("list", c.source, err)
	}
	var teams []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, cand := range candidates {
			if path.Ext(e.Name()) == cand.ext {
				team := e.Name()[:len(e.Name())-len(cand.ext)]
				if !slices.Contains(teams, team) {
					teams = append(teams, team)
				}
				break
			}
		}
	}
	slices.Sort(teams)
	return teams, nil
}
