// Package completion generates shell completion scripts and installs them
// in per-user locations.
package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	pkgconstants "github.com/jpamies/worldcup-squad-selector/pkg/constants"
)

// Name is the program name completions are registered for.
const Name = "squadselector"

// Generate writes the completion script of root for shell to w.
func Generate(root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case constants.ShellBash:
		return root.GenBashCompletionV2(w, true)
	case constants.ShellZsh:
		return root.GenZshCompletion(w)
	case constants.ShellFish:
		return root.GenFishCompletion(w, true)
	case constants.ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return unsupported(shell)
	}
}

// Path returns where the completion file of shell lives under home.
// Homebrew prefixes are used for bash and zsh when HOMEBREW_PREFIX is set.
func Path(shell, home string) (string, error) {
	brew := os.Getenv("HOMEBREW_PREFIX")
	switch shell {
	case constants.ShellBash:
		if brew != "" {
			return filepath.Join(brew, "etc", "bash_completion.d", Name), nil
		}
		return filepath.Join(home, ".bash_completion.d", Name), nil
	case constants.ShellZsh:
		if brew != "" {
			return filepath.Join(brew, "share", "zsh", "site-functions", "_"+Name), nil
		}
		return filepath.Join(home, ".zsh", "completions", "_"+Name), nil
	case constants.ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", Name+".fish"), nil
	default:
		return "", unsupported(shell)
	}
}

// Install writes the completion script of shell to its Path and returns
// that path.
func Install(root *cobra.Command, shell, home string) (string, error) {
	target, err := Path(shell, home)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), pkgconstants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", filepath.Dir(target), err)
	}

	f, err := os.Create(target) // #nosec G304 - target comes from Path
	if err != nil {
		return "", errors.WrapIO("create", target, err)
	}
	if err := Generate(root, f, shell); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.WrapIO("write", target, err)
	}
	return target, nil
}

// Uninstall removes the completion file of shell. It reports false when
// there was nothing to remove.
func Uninstall(shell, home string) (string, bool, error) {
	target, err := Path(shell, home)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return target, false, nil
	}
	if err := os.Remove(target); err != nil {
		return target, false, errors.WrapIO("remove", target, err)
	}
	return target, true, nil
}

func unsupported(shell string) error {
	return errors.NewValidationError("shell", shell, fmt.Sprintf("unsupported shell %q", shell))
}
