// Package share implements the share command.
package share

import (
	"fmt"

	"github.com/spf13/cobra"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	pkgconstants "github.com/jpamies/worldcup-squad-selector/pkg/constants"
)

// Link is what share prints: the token and the link carrying it.
type Link struct {
	Kind  string `json:"kind" yaml:"kind"`
	Token string `json:"token" yaml:"token"`
	URL   string `json:"url" yaml:"url"`
}

// NewCommand creates the share command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "share",
		GroupID: "core",
		Aliases: []string{"export"},
		Short:   "Export squads as share tokens and links",
		Long: `Export squads of the current profile as tokens. A token can be loaded
with "squadselector import" or opened as a link in the web app; set
share_base_url to get absolute links.`,
		Example: `  squadselector share squad spain
  squadselector share all -o json`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "squad TEAM",
		Short: "Share one team's squad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return share(cmd, app, pkgconstants.SquadParam, func(sel squadselector.Client) (string, error) {
				return sel.ExportSquad(cmd.Context(), args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Share every non-empty squad of the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return share(cmd, app, pkgconstants.AllSquadsParam, func(sel squadselector.Client) (string, error) {
				return sel.ExportAll(cmd.Context())
			})
		},
	})

	return cmd
}

func share(cmd *cobra.Command, app application.Application, param string, export func(squadselector.Client) (string, error)) error {
	sel, err := cmdutil.Selector(cmd, app)
	if err != nil {
		return err
	}
	token, err := export(sel)
	if err != nil {
		return err
	}
	link, err := sel.ShareURL(param, token)
	if err != nil {
		return err
	}

	flags := cmdutil.Flags(app)
	switch flags.Output {
	case constants.FormatJSON, constants.FormatYAML:
		return output.FormatAny(cmd.OutOrStdout(), Link{Kind: param, Token: token, URL: link}, flags)
	default:
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", token, link)
		return err
	}
}
