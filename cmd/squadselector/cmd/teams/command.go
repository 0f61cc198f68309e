// Package teams implements the teams command.
package teams

import (
	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// NewCommand creates the teams command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "teams",
		GroupID: "core",
		Short:   "List the supported national teams",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.FormatTeams(cmd.OutOrStdout(), players.Teams(), cmdutil.Flags(app))
		},
	}
}
