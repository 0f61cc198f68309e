// Package kvtest provides a conformance suite for kv.Store implementations.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
)

// Run exercises the kv.Store contract against stores created by newStore.
// Each subtest gets a fresh, empty store.
func Run(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		v, ok, err := s.Get(ctx, "wc2026_profiles")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set get overwrite", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "wc2026_current_profile", "default"))
		v, ok, err := s.Get(ctx, "wc2026_current_profile")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "default", v)

		require.NoError(t, s.Set(ctx, "wc2026_current_profile", "b7"))
		v, _, err = s.Get(ctx, "wc2026_current_profile")
		require.NoError(t, err)
		assert.Equal(t, "b7", v)
	})

	t.Run("empty value exists", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", ""))
		v, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "wc2026_default_spain", `{"country":"spain"}`))
		require.NoError(t, s.Delete(ctx, "wc2026_default_spain"))
		_, ok, err := s.Get(ctx, "wc2026_default_spain")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, s.Delete(ctx, "never-set"))
	})

	t.Run("keys by prefix", func(t *testing.T) {
		s := newStore(t)
		for _, k := range []string{"wc2026_p1_spain", "wc2026_p1_france", "wc2026_p2_spain", "other"} {
			require.NoError(t, s.Set(ctx, k, "x"))
		}

		keys, err := s.Keys(ctx, "wc2026_p1_")
		require.NoError(t, err)
		assert.Equal(t, []string{"wc2026_p1_france", "wc2026_p1_spain"}, keys)

		keys, err = s.Keys(ctx, "wc2026_")
		require.NoError(t, err)
		assert.Len(t, keys, 3)

		keys, err = s.Keys(ctx, "nothing_")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("unicode values", func(t *testing.T) {
		s := newStore(t)
		value := `{"name":"Mi Mundial España 日本"}`
		require.NoError(t, s.Set(ctx, "wc2026_profiles", value))
		v, _, err := s.Get(ctx, "wc2026_profiles")
		require.NoError(t, err)
		assert.Equal(t, value, v)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := newStore(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err := s.Get(cancelled, "k")
		assert.Error(t, err)
		assert.Error(t, s.Set(cancelled, "k", "v"))
	})
}
