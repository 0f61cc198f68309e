package overview

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdtest"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

func seed(t *testing.T, sel squadselector.Client) {
	t.Helper()
	ctx := context.Background()
	for team, ids := range map[string][]int{"spain": {10, 11}, "japan": {20}} {
		s, err := sel.Open(ctx, team)
		require.NoError(t, err)
		for _, id := range ids {
			require.NoError(t, s.Select(id))
		}
		require.NoError(t, s.Save(ctx))
	}
}

func TestOverviewJSON(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	seed(t, sel)

	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "json")))
	require.NoError(t, err)

	var o squadselector.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &o), out)
	assert.Equal(t, "default", o.ProfileID)
	assert.Len(t, o.Teams, len(players.Teams()))
	assert.Equal(t, 2, o.TeamsWithSquads)
	assert.Equal(t, 0, o.CompleteSquads)
	assert.Equal(t, 3, o.TotalPlayers)
	assert.Equal(t, int64(385_000_000), o.TotalValue)
}

func TestOverviewTable(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	seed(t, sel)

	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "table")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Profile: Mi Mundial (default)\n"), out)
	assert.Contains(t, out, "Spain")
	assert.Contains(t, out, "Japan")
	assert.NotContains(t, out, "Germany")
	assert.Contains(t, out, "Total (0/2 complete)")
	assert.Contains(t, out, "€385.0M")

	out, err = cmdtest.Run(NewCommand(cmdtest.App(sel, "table")), "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Germany")
}

func TestOverviewEmptyProfile(t *testing.T) {
	sel, _ := cmdtest.Selector(t)

	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "table")))
	require.NoError(t, err)
	assert.Contains(t, out, "Total (0/0 complete)")
	assert.Contains(t, out, "€0")
}
