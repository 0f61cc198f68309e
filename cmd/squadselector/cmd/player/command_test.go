package player

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdtest"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

func names(t *testing.T, out string) []string {
	t.Helper()
	var ps []players.Player
	require.NoError(t, json.Unmarshal([]byte(out), &ps), out)
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}
	return names
}

func TestListPlayers(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	app := cmdtest.App(sel, "json")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"goalkeepers", []string{"spain", "-p", "GK", "--limit", "2"}, []string{"Unai Simón", "David Raya"}},
		{"lowercase position", []string{"spain", "--position", "fwd"}, []string{"Lamine Yamal"}},
		{"search ignores accents", []string{"spain", "--search", "alex"}, []string{"Álex Remiro"}},
		{"search clubs", []string{"spain", "--search", "barcelona", "-p", "DEF"}, []string{"Pau Cubarsí"}},
		{"team code case", []string{"JAPAN"}, []string{"Kaoru Mitoma", "Zion Suzuki"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := cmdtest.Run(NewCommand(app), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(t, out))
		})
	}
}

func TestListSelected(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	ctx := context.Background()

	s, err := sel.Open(ctx, "spain")
	require.NoError(t, err)
	require.NoError(t, s.Select(11))
	require.NoError(t, s.Save(ctx))

	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "json")), "spain", "--selected")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lamine Yamal"}, names(t, out))

	out, err = cmdtest.Run(NewCommand(cmdtest.App(sel, "wide")), "spain")
	require.NoError(t, err)
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "FC Barcelona")
	assert.Contains(t, out, "€200,000,000")
}

func TestListErrors(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	app := cmdtest.App(sel, "json")

	_, err := cmdtest.Run(NewCommand(app), "spain", "-p", "LIBERO")
	assert.True(t, errors.IsValidationError(err))

	_, err = cmdtest.Run(NewCommand(app), "atlantis")
	assert.True(t, errors.IsNotFound(err))

	_, err = cmdtest.Run(NewCommand(app), "germany")
	assert.True(t, errors.IsCatalogUnavailable(err))
}

func TestSearch(t *testing.T) {
	ps := []players.Player{
		{ID: 1, Name: "Dani Olmo", Club: "FC Barcelona"},
		{ID: 2, Name: "Mikel Oyarzabal", Club: "Real Sociedad"},
	}
	assert.Len(t, Search(ps, ""), 2)
	assert.Len(t, Search(ps, "  "), 2)
	assert.Equal(t, 2, Search(ps, "SOCIEDAD")[0].ID)
	assert.Empty(t, Search(ps, "madrid"))
}
