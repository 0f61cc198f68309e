package imports

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdtest"
	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// Tokens, decoded:
//
//	spainToken {"c":"spain","p":[1,2]}
//	mixedToken ESP:1,2|GER:5|XXX:1
//	germanyTok {"c":"germany","p":[1]}
//	japanToken JPN:20,99
const (
	spainToken = "eyJjIjoic3BhaW4iLCJwIjpbMSwyXX0"
	mixedToken = "RVNQOjEsMnxHRVI6NXxYWFg6MQ"
	germanyTok = "eyJjIjoiZ2VybWFueSIsInAiOlsxXX0"
	japanToken = "SlBOOjIwLDk5"
	paddedTok  = spainToken + "="
)

func result(t *testing.T, out string) squadselector.ImportResult {
	t.Helper()
	var res squadselector.ImportResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	return res
}

func TestTokenFromArg(t *testing.T) {
	tests := []struct {
		arg, token, param string
	}{
		{spainToken, spainToken, ""},
		{"  " + spainToken + "\n", spainToken, ""},
		{"https://squads.example/?squad=" + spainToken, spainToken, constants.SquadParam},
		{"https://squads.example/?data=" + japanToken + "&lang=es", japanToken, constants.AllSquadsParam},
		{"https://squads.example/?lang=es", "https://squads.example/?lang=es", ""},
	}
	for _, tt := range tests {
		token, param := TokenFromArg(tt.arg)
		assert.Equal(t, tt.token, token, tt.arg)
		assert.Equal(t, tt.param, param, tt.arg)
	}
}

func TestImportSquad(t *testing.T) {
	sel, _ := cmdtest.Selector(t)

	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "json")), paddedTok)
	require.NoError(t, err)

	res := result(t, out)
	assert.Equal(t, constants.DefaultProfileID, res.ProfileID)
	assert.Equal(t, []squadselector.ImportedSquad{{Team: "spain", Players: 2}}, res.Imported)

	r, ok, err := sel.Profiles().GetSquad(context.Background(), "spain")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, r.IDs())
}

func TestImportAllFromLink(t *testing.T) {
	sel, _ := cmdtest.Selector(t)

	// The data parameter implies --all.
	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "json")),
		"https://squads.example/?data="+mixedToken, "--new-profile", "Friends")
	require.NoError(t, err)

	res := result(t, out)
	assert.NotEqual(t, constants.DefaultProfileID, res.ProfileID)
	assert.Equal(t, []squadselector.ImportedSquad{{Team: "spain", Players: 2}}, res.Imported)
	assert.Equal(t, []string{"XXX"}, res.Skipped)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "germany", res.Failures[0].Team)
	assert.NotEmpty(t, res.Failures[0].Message)

	current, err := sel.Profiles().Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Friends", current.Name)
}

func TestImportTable(t *testing.T) {
	sel, _ := cmdtest.Selector(t)

	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "table")), "--all", japanToken)
	require.NoError(t, err)
	assert.Contains(t, out, "1 unknown player(s) dropped")
	assert.Contains(t, out, "Imported 1 squad(s), 1 players, into profile default")

	out, err = cmdtest.Run(NewCommand(cmdtest.App(sel, "table")), "-a", mixedToken)
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "1 team(s) failed")
}

func TestImportErrors(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	app := cmdtest.App(sel, "json")

	_, err := cmdtest.Run(NewCommand(app), "not*a*token")
	var tokenErr *errors.TokenError
	assert.ErrorAs(t, err, &tokenErr)

	// A catalog failure is still reported before the error is returned.
	out, err := cmdtest.Run(NewCommand(app), germanyTok)
	assert.True(t, errors.IsCatalogUnavailable(err))
	res := result(t, out)
	require.Len(t, res.Failures, 1)
	assert.Empty(t, res.Imported)

	_, ok, err := sel.Profiles().GetSquad(context.Background(), "germany")
	require.NoError(t, err)
	assert.False(t, ok)
}
