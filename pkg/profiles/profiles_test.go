package profiles_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/profiles"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// clock returns a time source that advances one minute per call.
func clock() func() time.Time {
	t := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

// sequence returns an id generator yielding ids in order, then "p<n>".
func sequence(ids ...string) func() string {
	n := 0
	return func() string {
		n++
		if n <= len(ids) {
			return ids[n-1]
		}
		return fmt.Sprintf("p%d", n)
	}
}

func newStore(t *testing.T, mem *kv.Memory, opts ...profiles.Option) *profiles.Store {
	t.Helper()
	opts = append([]profiles.Option{
		profiles.WithClock(clock()),
		profiles.WithIDGenerator(sequence()),
		profiles.WithLogger(logging.NewNopLogger()),
	}, opts...)
	s := profiles.New(mem, opts...)
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func sampleRoster(team string, ids ...int) roster.Roster {
	r := roster.New(team)
	for _, id := range ids {
		r.Players = append(r.Players, players.Player{ID: id, Name: fmt.Sprintf("P%d", id), Position: players.Midfielder})
	}
	return r
}

func TestFreshStore(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mi Mundial", list["default"].Name)
	assert.True(t, list["default"].IsDefault())

	id, err := s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", id)

	_, ok, err := s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	assert.False(t, ok)

	raw, ok, err := mem.Get(ctx, "wc2026_current_profile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "default", raw)
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)
	before := mem.Snapshot()

	require.NoError(t, s.Initialize(ctx))
	assert.Equal(t, before, mem.Snapshot())
}

func TestReadsExistingMetadata(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryFrom(map[string]string{
		"wc2026_profiles": `{"default":{"id":"default","name":"Mi Mundial","createdAt":"2025-06-01T10:00:00.000Z","updatedAt":"2025-06-02T10:00:00.000Z"},` +
			`"k3x9q1":{"id":"k3x9q1","name":"Sorpresas","createdAt":"2025-06-03T10:00:00.000Z","updatedAt":"2025-06-03T10:00:00.000Z"}}`,
		"wc2026_current_profile": "k3x9q1",
		"wc2026_k3x9q1_spain":    `{"country":"spain","players":[{"id":7,"name":"Morata","position":"FWD","club":"Milan","age":33,"marketValue":9000000}],"savedAt":"2025-06-03T11:00:00.000Z"}`,
	})
	s := newStore(t, mem)

	p, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sorpresas", p.Name)
	assert.Equal(t, 2025, p.CreatedAt.Year())

	r, ok, err := s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{7}, r.IDs())
	assert.Equal(t, "spain", r.Team)
	assert.Equal(t, players.Forward, r.Players[0].Position)
}

func TestCorruptMetadataResets(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryFrom(map[string]string{
		"wc2026_profiles":        "{not json",
		"wc2026_current_profile": "gone",
	})
	tl := logging.NewTestLogger(t)
	s := newStore(t, mem, profiles.WithLogger(tl.Logger))

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Contains(t, list, "default")

	id, err := s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", id)
	tl.AssertContains(t, "unreadable")
}

func TestMissingDefaultIsRestored(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryFrom(map[string]string{
		"wc2026_profiles": `{"abc":{"id":"abc","name":"Other","createdAt":"2025-06-03T10:00:00Z","updatedAt":"2025-06-03T10:00:00Z"}}`,
	})
	s := newStore(t, mem)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Contains(t, list, "default")
	assert.Contains(t, list, "abc")
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory(), profiles.WithIDGenerator(sequence("alpha", "beta")))

	id, err := s.Create(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, "alpha", id)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mundial 2", list[id].Name)
	assert.Equal(t, list[id].CreatedAt, list[id].UpdatedAt)

	current, err := s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", current)

	id, err = s.Create(ctx, "  Underdogs ", true)
	require.NoError(t, err)
	assert.Equal(t, "beta", id)
	current, err = s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "beta", current)

	p, ok, err := s.Get(ctx, "beta")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Underdogs", p.Name)
}

func TestCreateRegeneratesOnCollision(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory(), profiles.WithIDGenerator(sequence("same", "same", "bad_id", "", "fresh")))

	first, err := s.Create(ctx, "one", false)
	require.NoError(t, err)
	second, err := s.Create(ctx, "two", false)
	require.NoError(t, err)

	assert.Equal(t, "same", first)
	assert.Equal(t, "fresh", second)
}

func TestCreateGivesUpAfterBoundedAttempts(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory(), profiles.WithIDGenerator(func() string { return "default" }))

	_, err := s.Create(ctx, "x", false)
	assert.Error(t, err)
}

func TestSetCurrent(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)

	ok, err := s.SetCurrent(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	current, err := s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", current)

	id, err := s.Create(ctx, "B", false)
	require.NoError(t, err)
	ok, err = s.SetCurrent(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	current, err = s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, current)
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory())

	before, _, err := s.Get(ctx, "default")
	require.NoError(t, err)

	ok, err := s.Rename(ctx, "default", "Mi Mundial 2026")
	require.NoError(t, err)
	assert.True(t, ok)

	after, _, err := s.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "Mi Mundial 2026", after.Name)
	assert.True(t, after.UpdatedAt.Time.After(before.UpdatedAt.Time))
	assert.True(t, after.CreatedAt.Time.Equal(before.CreatedAt.Time))

	ok, err = s.Rename(ctx, "unknown", "x")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Rename(ctx, "default", "   ")
	assert.Error(t, err)
}

func TestDefaultProfileIsUndeletable(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)
	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 1)))
	before := mem.Snapshot()

	ok, err := s.Delete(ctx, "default")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, mem.Snapshot())
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem, profiles.WithIDGenerator(sequence("a", "a1")))

	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 1)))

	a, err := s.Create(ctx, "A", true)
	require.NoError(t, err)
	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 2)))
	require.NoError(t, s.SaveSquad(ctx, "france", sampleRoster("france", 3)))

	a1, err := s.Create(ctx, "A1", false)
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, profiles.SquadKey(a1, "spain"), `{"country":"spain","players":[],"savedAt":"2026-06-01T12:00:00Z"}`))
	// keys of a profile named "a_x" share the "wc2026_a_" prefix
	require.NoError(t, mem.Set(ctx, "wc2026_a_x_spain", "{}"))

	ok, err := s.Delete(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok)

	keys, err := mem.Keys(ctx, "wc2026_a")
	require.NoError(t, err)
	assert.Equal(t, []string{"wc2026_a1_spain", "wc2026_a_x_spain"}, keys)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, list, a)

	current, err := s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", current)

	r, ok, err := s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1}, r.IDs())

	ok, err = s.Delete(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteNonCurrentKeepsPointer(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory())

	keep, err := s.Create(ctx, "keep", true)
	require.NoError(t, err)
	drop, err := s.Create(ctx, "drop", false)
	require.NoError(t, err)

	ok, err := s.Delete(ctx, drop)
	require.NoError(t, err)
	assert.True(t, ok)

	current, err := s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, keep, current)
}

func TestProfileIsolation(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory())

	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 1, 2)))

	b, err := s.Create(ctx, "B", true)
	require.NoError(t, err)

	_, ok, err := s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 9)))

	ok, err = s.SetCurrent(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)

	r, ok, err := s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, r.IDs())

	others, err := s.SquadsOf(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, others["spain"].IDs())
}

func TestDuplicate(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)

	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 1, 2)))
	require.NoError(t, s.SaveSquad(ctx, "japan", sampleRoster("japan", 5)))

	id, ok, err := s.Duplicate(ctx, "default", "")
	require.NoError(t, err)
	require.True(t, ok)

	p, _, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Mi Mundial (copia)", p.Name)

	current, err := s.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", current)

	for _, team := range []string{"spain", "japan"} {
		src, _, err := mem.Get(ctx, profiles.SquadKey("default", team))
		require.NoError(t, err)
		dst, ok, err := mem.Get(ctx, profiles.SquadKey(id, team))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, src, dst, "copy of %s must be verbatim", team)
	}

	named, ok, err := s.Duplicate(ctx, "default", "Plan B")
	require.NoError(t, err)
	require.True(t, ok)
	p, _, err = s.Get(ctx, named)
	require.NoError(t, err)
	assert.Equal(t, "Plan B", p.Name)

	_, ok, err = s.Duplicate(ctx, "missing", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveSquad(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)

	before, err := s.Current(ctx)
	require.NoError(t, err)

	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 4, 2)))

	after, err := s.Current(ctx)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.Time.After(before.UpdatedAt.Time))

	raw, ok, err := mem.Get(ctx, "wc2026_default_spain")
	require.NoError(t, err)
	require.True(t, ok)

	var stored map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Contains(t, stored, "country")
	assert.Contains(t, stored, "players")
	assert.Contains(t, stored, "savedAt")
	assert.JSONEq(t, `"spain"`, string(stored["country"]))

	r, ok, err := s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{4, 2}, r.IDs())
	assert.False(t, r.SavedAt.IsZero())

	require.NoError(t, s.SaveSquad(ctx, "spain", roster.New("spain")))
	r, ok, err = s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, r.Len())

	assert.Error(t, s.SaveSquad(ctx, "", roster.New("")))
}

func TestUnreadableSquadIsAbsent(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryFrom(map[string]string{"wc2026_default_spain": "{broken"})
	s := newStore(t, mem)

	_, ok, err := s.GetSquad(ctx, "spain")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllSquads(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory())

	require.NoError(t, s.SaveSquad(ctx, "spain", sampleRoster("spain", 1)))
	require.NoError(t, s.SaveSquad(ctx, "france", sampleRoster("france", 2, 3)))

	squads, err := s.AllSquads(ctx)
	require.NoError(t, err)
	require.Len(t, squads, 2)
	assert.Equal(t, []int{2, 3}, squads["france"].IDs())

	_, err = s.SquadsOf(ctx, "missing")
	assert.Error(t, err)
}

func TestMigration(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryFrom(map[string]string{
		"wc2026_squad_spain":   `{"country":"spain","players":[],"savedAt":"2025-01-01T00:00:00Z"}`,
		"wc2026_squad_france":  `{"country":"france","players":[],"savedAt":"2025-01-01T00:00:00Z"}`,
		"wc2026_default_spain": `{"country":"spain","players":[],"savedAt":"2026-01-01T00:00:00Z"}`,
	})
	s := newStore(t, mem)

	legacy, err := mem.Keys(ctx, "wc2026_squad_")
	require.NoError(t, err)
	assert.Empty(t, legacy)

	spain, _, err := mem.Get(ctx, "wc2026_default_spain")
	require.NoError(t, err)
	assert.Contains(t, spain, "2026-01-01", "existing destination must win")

	france, ok, err := mem.Get(ctx, "wc2026_default_france")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, france, `"country":"france"`)

	snapshot := mem.Snapshot()
	require.NoError(t, s.Initialize(ctx))
	assert.Equal(t, snapshot, mem.Snapshot())
}

func TestSorted(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory(), profiles.WithIDGenerator(sequence("zz", "aa")))

	_, err := s.Create(ctx, "first", false)
	require.NoError(t, err)
	_, err = s.Create(ctx, "second", false)
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	sorted := profiles.Sorted(list)
	require.Len(t, sorted, 3)
	assert.Equal(t, "default", sorted[0].ID)
	assert.Equal(t, "zz", sorted[1].ID)
	assert.Equal(t, "aa", sorted[2].ID)
}
