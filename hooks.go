package squadselector

import (
	"sync"

	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Hook function types for squad events
type (
	// SquadSavedHook is called after a session saves its roster
	SquadSavedHook func(profileID string, r roster.Roster)

	// SquadImportedHook is called after an imported squad is saved
	SquadImportedHook func(profileID string, r roster.Roster)

	// ImportFailureHook is called when one team of an import fails
	ImportFailureHook func(team string, err error)
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*client)(nil)

// Hooks provides event callback registration.
type Hooks interface {
	// OnSquadSaved registers a callback for saved squads
	OnSquadSaved(SquadSavedHook)

	// OnSquadImported registers a callback for imported squads
	OnSquadImported(SquadImportedHook)

	// OnImportFailure registers a callback for per-team import failures
	OnImportFailure(ImportFailureHook)
}

// hooks manages event callbacks
type hooks struct {
	mu              sync.RWMutex
	onSquadSaved    []SquadSavedHook
	onSquadImported []SquadImportedHook
	onImportFailure []ImportFailureHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnSquadSaved registers a callback for saved squads.
func (c *client) OnSquadSaved(fn SquadSavedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onSquadSaved = append(c.hooks.onSquadSaved, fn)
}

// OnSquadImported registers a callback for imported squads.
func (c *client) OnSquadImported(fn SquadImportedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onSquadImported = append(c.hooks.onSquadImported, fn)
}

// OnImportFailure registers a callback for per-team import failures.
func (c *client) OnImportFailure(fn ImportFailureHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onImportFailure = append(c.hooks.onImportFailure, fn)
}

func (h *hooks) squadSaved(profileID string, r roster.Roster) {
	h.mu.RLock()
	fns := h.onSquadSaved
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(profileID, r)
	}
}

func (h *hooks) squadImported(profileID string, r roster.Roster) {
	h.mu.RLock()
	fns := h.onSquadImported
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(profileID, r)
	}
}

func (h *hooks) importFailure(team string, err error) {
	h.mu.RLock()
	fns := h.onImportFailure
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(team, err)
	}
}
