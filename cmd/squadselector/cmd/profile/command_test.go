package profile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdtest"
	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/profiles"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

func TestListFreshStore(t *testing.T) {
	sel, _ := cmdtest.Selector(t)

	out, err := cmdtest.Run(NewCommand(cmdtest.App(sel, "json")))
	require.NoError(t, err)

	var list []profiles.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, constants.DefaultProfileID, list[0].ID)
	assert.Equal(t, constants.DefaultProfileName, list[0].Name)
}

func TestListMarksCurrent(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	app := cmdtest.App(sel, "table")

	_, err := cmdtest.Run(NewCommand(app), "create", "Plan B", "--switch")
	require.NoError(t, err)

	out, err := cmdtest.Run(NewCommand(app), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Plan B")
	assert.Contains(t, out, constants.DefaultProfileName)
	assert.Contains(t, out, "✓")
}

func TestCreateRenameUseDelete(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	app := cmdtest.App(sel, "table")
	ctx := context.Background()
	store := sel.Profiles()

	out, err := cmdtest.Run(NewCommand(app), "create")
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	var id string
	for pid, p := range all {
		if !p.IsDefault() {
			id = pid
			assert.Equal(t, "Mundial 2", p.Name)
		}
	}

	current, err := store.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultProfileID, current, "create without --switch keeps the current profile")

	_, err = cmdtest.Run(NewCommand(app), "rename", id, "Friends")
	require.NoError(t, err)
	p, _, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Friends", p.Name)

	_, err = cmdtest.Run(NewCommand(app), "use", id)
	require.NoError(t, err)
	require.NoError(t, store.SaveSquad(ctx, "spain", roster.New("spain")))

	_, err = cmdtest.Run(NewCommand(app), "delete", id)
	require.NoError(t, err)

	current, err = store.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultProfileID, current)
	_, found, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDuplicate(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	app := cmdtest.App(sel, "table")
	ctx := context.Background()

	sess, err := sel.Open(ctx, "japan")
	require.NoError(t, err)
	require.NoError(t, sess.Select(20))
	require.NoError(t, sess.Save(ctx))

	_, err = cmdtest.Run(NewCommand(app), "duplicate", constants.DefaultProfileID)
	require.NoError(t, err)

	all, err := sel.Profiles().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for id, p := range all {
		if p.IsDefault() {
			continue
		}
		assert.Equal(t, constants.DefaultProfileName+constants.CopySuffix, p.Name)
		squads, err := sel.Profiles().SquadsOf(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []int{20}, squads["japan"].IDs())
	}
}

func TestErrors(t *testing.T) {
	sel, _ := cmdtest.Selector(t)
	app := cmdtest.App(sel, "table")

	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{"delete default", []string{"delete", constants.DefaultProfileID}, errors.IsValidationError},
		{"delete unknown", []string{"delete", "nope"}, errors.IsNotFound},
		{"rename unknown", []string{"rename", "nope", "X"}, errors.IsNotFound},
		{"rename blank", []string{"rename", constants.DefaultProfileID, "  "}, errors.IsValidationError},
		{"use unknown", []string{"use", "nope"}, errors.IsNotFound},
		{"duplicate unknown", []string{"duplicate", "nope"}, errors.IsNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmdtest.Run(NewCommand(app), tt.args...)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}
