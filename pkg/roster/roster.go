// Package roster implements the squad selection rules: adding and removing
// players under the composition limits, position views and squad summaries.
//
// All operations are pure. A Roster value is never modified in place; Select
// and Deselect return a new Roster and leave the input untouched.
package roster

import (
	"slices"
	"time"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// Roster is the ordered selection of players for one team.
type Roster struct {
	Team    string
	Players []players.Player
	SavedAt time.Time
}

// New returns an empty roster for a team.
func New(team string) Roster {
	return Roster{Team: team}
}

// Len returns the number of selected players.
func (r Roster) Len() int {
	return len(r.Players)
}

// Goalkeepers returns the number of selected goalkeepers.
func (r Roster) Goalkeepers() int {
	n := 0
	for _, p := range r.Players {
		if p.IsGoalkeeper() {
			n++
		}
	}
	return n
}

// Outfield returns the number of selected non-goalkeepers.
func (r Roster) Outfield() int {
	return len(r.Players) - r.Goalkeepers()
}

// Complete reports whether the squad is at full size.
func (r Roster) Complete() bool {
	return len(r.Players) == constants.MaxSquadSize
}

// IDs returns the selected player IDs in selection order.
func (r Roster) IDs() []int {
	ids := make([]int, len(r.Players))
	for i, p := range r.Players {
		ids[i] = p.ID
	}
	return ids
}

// IsSelected reports whether the player with the given ID is in the roster.
func IsSelected(r Roster, id int) bool {
	return slices.ContainsFunc(r.Players, func(p players.Player) bool {
		return p.ID == id
	})
}

// Select adds p to the roster. Selecting a player already present is a no-op.
//
// Limits are checked in order: goalkeepers, outfield, total. The first one
// violated is returned as a *errors.RejectionError and r is returned unchanged.
func Select(r Roster, p players.Player) (Roster, error) {
	if IsSelected(r, p.ID) {
		return r, nil
	}

	if p.IsGoalkeeper() && r.Goalkeepers() >= constants.MaxGoalkeepers {
		return r, errors.NewRejectionError(errors.ReasonGoalkeeperLimit, p.ID, constants.MaxGoalkeepers)
	}
	if !p.IsGoalkeeper() && r.Outfield() >= constants.MaxOutfield {
		return r, errors.NewRejectionError(errors.ReasonOutfieldLimit, p.ID, constants.MaxOutfield)
	}
	if len(r.Players) >= constants.MaxSquadSize {
		return r, errors.NewRejectionError(errors.ReasonSquadFull, p.ID, constants.MaxSquadSize)
	}

	next := r
	next.Players = append(slices.Clone(r.Players), p)
	return next, nil
}

// Deselect removes the player with the given ID. Absent IDs are a no-op.
func Deselect(r Roster, id int) Roster {
	i := slices.IndexFunc(r.Players, func(p players.Player) bool {
		return p.ID == id
	})
	if i < 0 {
		return r
	}
	next := r
	next.Players = slices.Delete(slices.Clone(r.Players), i, i+1)
	return next
}

// Toggle deselects p when selected and selects it otherwise.
func Toggle(r Roster, p players.Player) (Roster, error) {
	if IsSelected(r, p.ID) {
		return Deselect(r, p.ID), nil
	}
	return Select(r, p)
}

// FilterByPosition returns the catalog entries matching f, in catalog order.
func FilterByPosition(catalog []players.Player, f players.Filter) []players.Player {
	out := make([]players.Player, 0, len(catalog))
	for _, p := range catalog {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
