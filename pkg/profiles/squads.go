package profiles

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/agentstation/utc"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Squad is the persisted form of a roster.
type Squad struct {
	Country string           `json:"country"`
	Players []players.Player `json:"players"`
	SavedAt utc.Time         `json:"savedAt"`
}

// Roster converts the persisted squad to a roster of team.
func (sq Squad) Roster(team string) roster.Roster {
	return roster.Roster{Team: team, Players: sq.Players, SavedAt: sq.SavedAt.Time}
}

// SquadKey returns the key of a team's roster within a profile.
func SquadKey(profileID, team string) string {
	return squadPrefix(profileID) + team
}

func squadPrefix(profileID string) string {
	return constants.KeyPrefix + profileID + "_"
}

// squadKeys lists the roster keys of a profile. Suffixes containing '_'
// belong to another profile whose id extends this one.
func (s *Store) squadKeys(ctx context.Context, profileID string) ([]string, error) {
	prefix := squadPrefix(profileID)
	keys, err := s.kv.Keys(ctx, prefix)
	if err != nil {
		return nil, errors.WrapResource("load", "squads", profileID, err)
	}
	out := keys[:0]
	for _, k := range keys {
		team := strings.TrimPrefix(k, prefix)
		if team == "" || strings.Contains(team, "_") {
			continue
		}
		out = append(out, k)
	}
	return out, nil
}

// readSquad loads and decodes a roster. Unreadable data counts as absent.
func (s *Store) readSquad(ctx context.Context, key, team string) (roster.Roster, bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return roster.Roster{}, false, errors.WrapResource("load", "squad", team, err)
	}
	if !ok || raw == "" {
		return roster.Roster{}, false, nil
	}
	var sq Squad
	if err := json.Unmarshal([]byte(raw), &sq); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Ignoring unreadable squad")
		return roster.Roster{}, false, nil
	}
	return sq.Roster(team), true, nil
}

// GetSquad returns the current profile's roster for team.
func (s *Store) GetSquad(ctx context.Context, team string) (roster.Roster, bool, error) {
	id, err := s.CurrentID(ctx)
	if err != nil {
		return roster.Roster{}, false, err
	}
	return s.readSquad(ctx, SquadKey(id, team), team)
}

// SaveSquad stores r as the current profile's roster for team and bumps the
// profile's update time. Empty rosters are stored too.
func (s *Store) SaveSquad(ctx context.Context, team string, r roster.Roster) error {
	if strings.TrimSpace(team) == "" || strings.Contains(team, "_") {
		return errors.NewValidationError("team", team, "invalid team code")
	}

	profiles, err := s.load(ctx)
	if err != nil {
		return err
	}
	id, err := s.currentID(ctx, profiles)
	if err != nil {
		return err
	}

	now := s.timestamp()
	ps := r.Players
	if ps == nil {
		ps = []players.Player{}
	}
	data, err := json.Marshal(Squad{Country: team, Players: ps, SavedAt: now})
	if err != nil {
		return errors.WrapResource("save", "squad", team, err)
	}
	if err := s.kv.Set(ctx, SquadKey(id, team), string(data)); err != nil {
		return errors.WrapResource("save", "squad", team, err)
	}

	p := profiles[id]
	p.UpdatedAt = now
	profiles[id] = p
	if err := s.save(ctx, profiles); err != nil {
		return err
	}

	s.logger.Debug().
		Str("profile_id", id).
		Str("team", team).
		Int("players", len(ps)).
		Msg("Squad saved")
	return nil
}

// AllSquads returns every roster of the current profile keyed by team.
func (s *Store) AllSquads(ctx context.Context) (map[string]roster.Roster, error) {
	id, err := s.CurrentID(ctx)
	if err != nil {
		return nil, err
	}
	return s.SquadsOf(ctx, id)
}

// SquadsOf returns every roster of a profile keyed by team.
func (s *Store) SquadsOf(ctx context.Context, profileID string) (map[string]roster.Roster, error) {
	profiles, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := profiles[profileID]; !ok {
		return nil, errors.NewNotFoundError("profile", profileID)
	}

	keys, err := s.squadKeys(ctx, profileID)
	if err != nil {
		return nil, err
	}
	squads := make(map[string]roster.Roster, len(keys))
	prefix := squadPrefix(profileID)
	for _, key := range keys {
		team := strings.TrimPrefix(key, prefix)
		r, ok, err := s.readSquad(ctx, key, team)
		if err != nil {
			return nil, err
		}
		if ok {
			squads[team] = r
		}
	}
	return squads, nil
}
