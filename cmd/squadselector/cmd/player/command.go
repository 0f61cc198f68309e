// Package player implements the players command.
package player

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/globals"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// NewCommand creates the players command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "players TEAM",
		GroupID: "core",
		Aliases: []string{"catalog"},
		Short:   "List the players available to a team",
		Long: `List the player catalog of a team. Players in the current profile's
saved squad are marked.`,
		Example: `  squadselector players spain                 # Whole catalog
  squadselector players spain -p GK           # Goalkeepers only
  squadselector players brazil --search vini  # Name or club search
  squadselector players france --selected -o wide`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPlayers(cmd, app, args[0], globals.ParsePlayers(cmd))
		},
	}

	globals.AddPlayerFlags(cmd)

	return cmd
}

func listPlayers(cmd *cobra.Command, app application.Application, team string, flags *globals.PlayerFlags) error {
	filter, err := players.ParseFilter(flags.Position)
	if err != nil {
		return err
	}

	sel, err := cmdutil.Selector(cmd, app)
	if err != nil {
		return err
	}
	session, err := sel.Open(cmd.Context(), team)
	if err != nil {
		return err
	}
	session.SetFilter(filter)

	app.Logger().Debug().
		Str("team", session.Team().Code).
		Str("filter", filter.String()).
		Int("catalog", len(session.Catalog())).
		Msg("Listing players")

	visible := Search(session.Visible(), flags.Search)
	if flags.Selected {
		kept := visible[:0:0]
		for _, p := range visible {
			if session.IsSelected(p.ID) {
				kept = append(kept, p)
			}
		}
		visible = kept
	}
	if flags.Limit > 0 && len(visible) > flags.Limit {
		visible = visible[:flags.Limit]
	}

	return output.FormatPlayers(cmd.OutOrStdout(), visible, session.IsSelected, cmdutil.Flags(app))
}

// Search keeps players whose name or club contains term, ignoring case and
// accents. An empty term keeps everyone.
func Search(ps []players.Player, term string) []players.Player {
	term = players.Fold(term)
	if term == "" {
		return ps
	}
	out := make([]players.Player, 0, len(ps))
	for _, p := range ps {
		if strings.Contains(players.Fold(p.Name), term) || strings.Contains(players.Fold(p.Club), term) {
			out = append(out, p)
		}
	}
	return out
}
