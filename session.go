package squadselector

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Compile-time interface check to ensure proper implementation.
var _ Sessions = (*client)(nil)

// Sessions opens selection sessions.
type Sessions interface {
	// Open starts a session for team with the current profile's saved squad
	Open(ctx context.Context, team string) (*Session, error)
}

// Session is the selection state of one team: its catalog, the position
// filter and the roster being edited. Changes stay in the session until
// Save. A Session is not safe for concurrent use.
type Session struct {
	client  *client
	team    players.Team
	catalog []players.Player
	index   map[int]players.Player
	filter  players.Filter
	roster  roster.Roster
	logger  zerolog.Logger
}

// Open fetches the team's catalog and loads the saved squad of the current
// profile, or an empty roster when there is none.
func (c *client) Open(ctx context.Context, team string) (*Session, error) {
	t, err := lookupTeam(team)
	if err != nil {
		return nil, err
	}
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	catalog, err := c.fetch(ctx, t.Code)
	if err != nil {
		return nil, err
	}

	r, ok, err := c.profiles.GetSquad(ctx, t.Code)
	if err != nil {
		return nil, err
	}
	if !ok {
		r = roster.New(t.Code)
	}

	logCtx := logging.WithTeam(logging.WithLogger(ctx, c.logger), t.Code)
	s := &Session{
		client:  c,
		team:    t,
		catalog: catalog,
		index:   players.Index(catalog),
		filter:  players.FilterAll,
		roster:  r,
		logger:  *logging.FromContext(logCtx),
	}
	s.logger.Debug().
		Int("catalog", len(catalog)).
		Int("selected", r.Len()).
		Msg("Session opened")
	return s, nil
}

// Team returns the session's team.
func (s *Session) Team() players.Team {
	return s.team
}

// Catalog returns the full player list of the team.
func (s *Session) Catalog() []players.Player {
	return s.catalog
}

// Filter returns the active position filter.
func (s *Session) Filter() players.Filter {
	return s.filter
}

// SetFilter changes the position filter.
func (s *Session) SetFilter(f players.Filter) {
	s.filter = f
}

// Visible returns the catalog players matching the filter, in catalog order.
func (s *Session) Visible() []players.Player {
	return roster.FilterByPosition(s.catalog, s.filter)
}

// IsSelected reports whether a player is in the roster.
func (s *Session) IsSelected(id int) bool {
	return roster.IsSelected(s.roster, id)
}

// Select adds a catalog player to the roster. A rejected selection leaves
// the roster unchanged and returns a *errors.RejectionError.
func (s *Session) Select(id int) error {
	p, ok := s.index[id]
	if !ok {
		return errors.NewNotFoundError("player", strconv.Itoa(id))
	}
	r, err := roster.Select(s.roster, p)
	if err != nil {
		s.logger.Debug().Err(err).Int("player_id", id).Msg("Selection rejected")
		return err
	}
	s.roster = r
	return nil
}

// Deselect removes a player and reports whether it was selected.
func (s *Session) Deselect(id int) bool {
	if !roster.IsSelected(s.roster, id) {
		return false
	}
	s.roster = roster.Deselect(s.roster, id)
	return true
}

// Toggle selects an unselected player or deselects a selected one, and
// reports whether the player is selected afterwards.
func (s *Session) Toggle(id int) (bool, error) {
	if s.Deselect(id) {
		return false, nil
	}
	if err := s.Select(id); err != nil {
		return false, err
	}
	return true, nil
}

// Clear empties the roster.
func (s *Session) Clear() {
	s.roster = roster.New(s.team.Code)
}

// Roster returns the roster being edited.
func (s *Session) Roster() roster.Roster {
	return s.roster
}

// Summary returns the roster's aggregate figures.
func (s *Session) Summary() roster.Summary {
	return roster.Summarize(s.roster)
}

// Save stores the roster in the current profile.
func (s *Session) Save(ctx context.Context) error {
	c := s.client
	if err := c.profiles.SaveSquad(ctx, s.team.Code, s.roster); err != nil {
		return err
	}
	id, err := c.profiles.CurrentID(ctx)
	if err != nil {
		return err
	}
	s.roster.SavedAt = c.options.now()

	s.logger.Info().
		Str("profile_id", id).
		Int("players", s.roster.Len()).
		Msg("Squad saved")
	c.hooks.squadSaved(id, s.roster)
	return nil
}
