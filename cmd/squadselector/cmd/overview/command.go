// Package overview implements the overview command.
package overview

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/table"
)

// NewCommand creates the overview command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "overview",
		GroupID: "core",
		Aliases: []string{"summary"},
		Short:   "Summarize every squad of the current profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			o, err := sel.Overview(cmd.Context())
			if err != nil {
				return err
			}

			flags := cmdutil.Flags(app)
			w := cmd.OutOrStdout()
			switch flags.Output {
			case constants.FormatTable, constants.FormatWide, constants.FormatMarkdown, "":
				if _, err := fmt.Fprintf(w, "Profile: %s (%s)\n", o.ProfileName, o.ProfileID); err != nil {
					return err
				}
				return output.FormatAny(w, table.OverviewToTableData(o, all || flags.Output == constants.FormatWide), flags)
			default:
				return output.FormatAny(w, o, flags)
			}
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include teams without a squad")
	return cmd
}
