package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv/bolt"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv/kvtest"
)

func openStore(t *testing.T, path string) *bolt.Store {
	t.Helper()
	s, err := bolt.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestContract(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		return openStore(t, filepath.Join(t.TempDir(), "squads.db"))
	})
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "squads.db")

	s, err := bolt.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "wc2026_current_profile", "default"))
	require.NoError(t, s.Close())

	reopened := openStore(t, path)
	v, ok, err := reopened.Get(ctx, "wc2026_current_profile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "default", v)
	assert.Equal(t, path, reopened.Path())
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := bolt.Open("  ")
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestNilStoreClose(t *testing.T) {
	var s *bolt.Store
	assert.NoError(t, s.Close())
}
