package completion

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

func root() *cobra.Command {
	cmd := &cobra.Command{Use: Name}
	cmd.AddCommand(&cobra.Command{Use: "teams", Run: func(*cobra.Command, []string) {}})
	return cmd
}

func TestGenerate(t *testing.T) {
	for _, shell := range constants.Shells {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Generate(root(), &buf, shell))
			assert.Contains(t, buf.String(), Name)
		})
	}

	err := Generate(root(), &bytes.Buffer{}, "tcsh")
	assert.True(t, errors.IsValidationError(err))
}

func TestPath(t *testing.T) {
	t.Setenv("HOMEBREW_PREFIX", "")
	home := "/home/fan"

	tests := map[string]string{
		constants.ShellBash: "/home/fan/.bash_completion.d/squadselector",
		constants.ShellZsh:  "/home/fan/.zsh/completions/_squadselector",
		constants.ShellFish: "/home/fan/.config/fish/completions/squadselector.fish",
	}
	for shell, want := range tests {
		got, err := Path(shell, home)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Path(constants.ShellPowerShell, home)
	assert.True(t, errors.IsValidationError(err))

	t.Setenv("HOMEBREW_PREFIX", "/opt/homebrew")
	got, err := Path(constants.ShellZsh, home)
	require.NoError(t, err)
	assert.Equal(t, "/opt/homebrew/share/zsh/site-functions/_squadselector", got)
}

func TestInstallUninstall(t *testing.T) {
	t.Setenv("HOMEBREW_PREFIX", "")
	home := t.TempDir()

	path, err := Install(root(), constants.ShellFish, home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "fish", "completions", "squadselector.fish"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "squadselector")

	_, removed, err := Uninstall(constants.ShellFish, home)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoFileExists(t, path)

	_, removed, err = Uninstall(constants.ShellFish, home)
	require.NoError(t, err)
	assert.False(t, removed)
}
