// Package completion implements the completion command.
package completion

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/alerts"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/completion"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
)

// NewCommand creates the completion command.
func NewCommand(app application.Application) *cobra.Command {
	var install, uninstall bool
	cmd := &cobra.Command{
		Use:   "completion SHELL",
		Short: "Generate or install shell completions",
		Long: `Print the completion script of a shell, or install it for the
current user with --install.

  source <(squadselector completion bash)
  squadselector completion zsh --install
  squadselector completion fish --uninstall`,
		DisableFlagsInUseLine: true,
		ValidArgs:             constants.Shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			if !install && !uninstall {
				return completion.Generate(cmd.Root(), cmd.OutOrStdout(), shell)
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			w := cmdutil.Alerts(cmd, app)

			if uninstall {
				path, removed, err := completion.Uninstall(shell, home)
				if err != nil {
					return err
				}
				if !removed {
					return w.Write(alerts.NewInfo(fmt.Sprintf("No %s completions found at %s", shell, path)))
				}
				return w.Write(alerts.NewSuccess(fmt.Sprintf("Removed %s completions from %s", shell, path)))
			}

			path, err := completion.Install(cmd.Root(), shell, home)
			if err != nil {
				return err
			}
			return w.Write(alerts.NewSuccess(fmt.Sprintf("Installed %s completions to %s", shell, path)).
				WithDetails("Start a new shell session to enable them."))
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "Install the script for the current user")
	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "Remove an installed script")
	cmd.MarkFlagsMutuallyExclusive("install", "uninstall")
	return cmd
}
