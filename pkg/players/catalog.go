package players

import (
	"context"
	"slices"
	"sync"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

var _ Catalog = (*MemoryCatalog)(nil)

// MemoryCatalog is a Catalog backed by an in-memory map of team to players.
type MemoryCatalog struct {
	mu    sync.RWMutex
	teams map[string][]Player
}

// NewMemoryCatalog creates a catalog from a team to players map.
func NewMemoryCatalog(teams map[string][]Player) *MemoryCatalog {
	c := &MemoryCatalog{teams: make(map[string][]Player, len(teams))}
	for team, ps := range teams {
		c.teams[team] = slices.Clone(ps)
	}
	return c
}

// Set replaces the players of a team.
func (c *MemoryCatalog) Set(team string, ps []Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teams[team] = slices.Clone(ps)
}

// Players implements Catalog.
func (c *MemoryCatalog) Players(ctx context.Context, team string) ([]Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	ps, ok := c.teams[team]
	if !ok {
		return nil, errors.NewCatalogError(team, "memory", errors.NewNotFoundError("team", team))
	}
	return slices.Clone(ps), nil
}
