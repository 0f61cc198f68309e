package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

func player(id int, pos players.Position) players.Player {
	return players.Player{ID: id, Name: "Player", Position: pos, MarketValue: int64(id) * 1_000_000}
}

// fill selects gk goalkeepers (ids 1..) and out outfielders (ids 100..).
func fill(t *testing.T, gk, out int) roster.Roster {
	t.Helper()
	r := roster.New("spain")
	var err error
	for i := 0; i < gk; i++ {
		r, err = roster.Select(r, player(1+i, players.Goalkeeper))
		require.NoError(t, err)
	}
	for i := 0; i < out; i++ {
		pos := []players.Position{players.Defender, players.Midfielder, players.Forward}[i%3]
		r, err = roster.Select(r, player(100+i, pos))
		require.NoError(t, err)
	}
	return r
}

// filled returns a builder for a roster reached through Select.
func filled(gk, out int) func(t *testing.T) roster.Roster {
	return func(t *testing.T) roster.Roster {
		return fill(t, gk, out)
	}
}

// imported builds a roster the way a shared squad is resolved: placed
// directly, without the add-time checks.
func imported(gk, out int) func(t *testing.T) roster.Roster {
	return func(t *testing.T) roster.Roster {
		r := roster.New("spain")
		for i := 0; i < gk; i++ {
			r.Players = append(r.Players, player(1+i, players.Goalkeeper))
		}
		for i := 0; i < out; i++ {
			r.Players = append(r.Players, player(100+i, players.Defender))
		}
		return r
	}
}

func TestSelectLimits(t *testing.T) {
	tests := []struct {
		name   string
		build  func(t *testing.T) roster.Roster
		add    players.Player
		reason errors.Reason
	}{
		{"fourth goalkeeper", filled(3, 0), player(50, players.Goalkeeper), errors.ReasonGoalkeeperLimit},
		{"fourth goalkeeper in full squad", filled(3, 23), player(50, players.Goalkeeper), errors.ReasonGoalkeeperLimit},
		{"24th outfielder", filled(0, 23), player(50, players.Forward), errors.ReasonOutfieldLimit},
		{"outfielder into full squad", filled(3, 23), player(50, players.Defender), errors.ReasonOutfieldLimit},
		{"outfielder into imported squad over goalkeeper limit", imported(4, 22), player(50, players.Forward), errors.ReasonSquadFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.build(t)
			after, err := roster.Select(before, tt.add)
			require.Error(t, err)

			reason, ok := errors.RejectionReason(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
			assert.Equal(t, before, after)
			assert.False(t, roster.IsSelected(after, tt.add.ID))
		})
	}
}

func TestSquadFullMessage(t *testing.T) {
	r := imported(4, 22)(t)
	require.Equal(t, 26, r.Len())

	_, err := roster.Select(r, player(50, players.Midfielder))
	require.Error(t, err)
	assert.Equal(t, "Squad complete (26 players)", err.Error())
	assert.Equal(t, 26, r.Len())
}

func TestFourthGoalkeeperMessage(t *testing.T) {
	r := fill(t, 3, 0)
	_, err := roster.Select(r, player(4, players.Goalkeeper))
	require.Error(t, err)
	assert.Equal(t, "Maximum 3 goalkeepers allowed!", err.Error())
	assert.Equal(t, 3, r.Len())
}

func TestSelectFullSquad(t *testing.T) {
	r := fill(t, 3, 23)
	assert.Equal(t, 26, r.Len())
	assert.True(t, r.Complete())
	assert.Equal(t, 3, r.Goalkeepers())
	assert.Equal(t, 23, r.Outfield())
}

func TestSelectIsIdempotent(t *testing.T) {
	r := fill(t, 1, 2)
	again, err := roster.Select(r, r.Players[1])
	require.NoError(t, err)
	assert.Equal(t, r, again)

	// even at the limit, reselecting an existing player is not a rejection
	full := fill(t, 3, 23)
	again, err = roster.Select(full, full.Players[0])
	require.NoError(t, err)
	assert.Equal(t, 26, again.Len())
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	r := fill(t, 1, 1)
	ids := r.IDs()

	next, err := roster.Select(r, player(7, players.Midfielder))
	require.NoError(t, err)
	assert.Equal(t, ids, r.IDs())
	assert.Equal(t, append(ids, 7), next.IDs())

	removed := roster.Deselect(next, ids[0])
	assert.Equal(t, []int{ids[1], 7}, removed.IDs())
	assert.Equal(t, append(ids, 7), next.IDs())
}

func TestDeselectThenSelectRestoresMembership(t *testing.T) {
	r := fill(t, 2, 5)
	p := r.Players[3]

	r2 := roster.Deselect(r, p.ID)
	assert.False(t, roster.IsSelected(r2, p.ID))
	assert.Equal(t, r.Len()-1, r2.Len())

	r3, err := roster.Select(r2, p)
	require.NoError(t, err)
	assert.ElementsMatch(t, r.IDs(), r3.IDs())
}

func TestDeselectAbsentIsNoop(t *testing.T) {
	r := fill(t, 1, 1)
	assert.Equal(t, r, roster.Deselect(r, 9999))
}

func TestToggle(t *testing.T) {
	r := roster.New("france")
	p := player(9, players.Forward)

	r, err := roster.Toggle(r, p)
	require.NoError(t, err)
	assert.True(t, roster.IsSelected(r, 9))

	r, err = roster.Toggle(r, p)
	require.NoError(t, err)
	assert.False(t, roster.IsSelected(r, 9))
}

func TestFilterByPosition(t *testing.T) {
	catalog := []players.Player{
		player(1, players.Goalkeeper),
		player(2, players.Defender),
		player(3, players.Goalkeeper),
		player(4, players.Forward),
	}

	all := roster.FilterByPosition(catalog, players.FilterAll)
	assert.Equal(t, catalog, all)

	gks := roster.FilterByPosition(catalog, players.FilterFor(players.Goalkeeper))
	require.Len(t, gks, 2)
	assert.Equal(t, 1, gks[0].ID)
	assert.Equal(t, 3, gks[1].ID)

	assert.Empty(t, roster.FilterByPosition(catalog, players.FilterFor(players.Midfielder)))
}
