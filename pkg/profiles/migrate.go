package profiles

import (
	"context"
	"strings"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// migrate moves legacy wc2026_squad_<team> rosters into the default profile.
// A destination that already holds data wins; the legacy key is always removed.
func (s *Store) migrate(ctx context.Context) error {
	keys, err := s.kv.Keys(ctx, constants.LegacySquadPrefix)
	if err != nil {
		return errors.WrapResource("migrate", "squads", "", err)
	}
	if len(keys) == 0 {
		return nil
	}

	copied := 0
	for _, oldKey := range keys {
		team := strings.TrimPrefix(oldKey, constants.LegacySquadPrefix)
		newKey := SquadKey(constants.DefaultProfileID, team)

		data, ok, err := s.kv.Get(ctx, oldKey)
		if err != nil {
			return errors.WrapResource("migrate", "squad", team, err)
		}
		existing, exists, err := s.kv.Get(ctx, newKey)
		if err != nil {
			return errors.WrapResource("migrate", "squad", team, err)
		}

		if ok && data != "" && (!exists || existing == "") {
			if err := s.kv.Set(ctx, newKey, data); err != nil {
				return errors.WrapResource("migrate", "squad", team, err)
			}
			copied++
		}
		if err := s.kv.Delete(ctx, oldKey); err != nil {
			return errors.WrapResource("migrate", "squad", team, err)
		}
	}

	s.logger.Info().
		Int("legacy", len(keys)).
		Int("copied", copied).
		Msg("Migrated legacy squads to default profile")
	return nil
}
