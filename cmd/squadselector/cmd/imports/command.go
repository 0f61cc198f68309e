// Package imports implements the import command.
package imports

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/alerts"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/table"
	pkgconstants "github.com/jpamies/worldcup-squad-selector/pkg/constants"
)

// NewCommand creates the import command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var (
		all        bool
		newProfile string
	)
	cmd := &cobra.Command{
		Use:     "import TOKEN|URL",
		GroupID: "core",
		Short:   "Load shared squads into a profile",
		Long: `Load a share token, or a link carrying one, into the current profile.

Players no longer in a team's catalog are dropped. A team whose catalog
cannot be loaded is reported and the others are still imported. A token
that cannot be read changes nothing.`,
		Example: `  squadselector import eyJjIjoic3BhaW4iLCJwIjpbMSwyXX0
  squadselector import --all RVNQOjEsMnxNRVg6OQ
  squadselector import "https://example.org/?data=RVNQOjEsMnxNRVg6OQ" --new-profile Friends`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, fromLink := TokenFromArg(args[0])
			if fromLink != "" {
				all = fromLink == pkgconstants.AllSquadsParam
			}

			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			opts := squadselector.ImportOptions{NewProfile: newProfile}

			var res *squadselector.ImportResult
			if all {
				res, err = sel.ImportAll(cmd.Context(), token, opts)
			} else {
				res, err = sel.ImportSquad(cmd.Context(), token, opts)
			}
			if res == nil {
				return err
			}
			if printErr := report(cmd, app, res); printErr != nil {
				return printErr
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "The token holds all squads of a profile")
	cmd.Flags().StringVar(&newProfile, "new-profile", "", "Import into a new profile with this name")
	return cmd
}

// TokenFromArg accepts a bare token or a link. For a link it returns the
// token and the query parameter that carried it.
func TokenFromArg(arg string) (token, param string) {
	arg = strings.TrimSpace(arg)
	if !strings.Contains(arg, "?") {
		return arg, ""
	}
	u, err := url.Parse(arg)
	if err != nil {
		return arg, ""
	}
	q := u.Query()
	for _, p := range []string{pkgconstants.AllSquadsParam, pkgconstants.SquadParam} {
		if v := q.Get(p); v != "" {
			return v, p
		}
	}
	return arg, ""
}

func report(cmd *cobra.Command, app application.Application, res *squadselector.ImportResult) error {
	flags := cmdutil.Flags(app)
	w := cmd.OutOrStdout()

	switch flags.Output {
	case constants.FormatJSON, constants.FormatYAML:
		return output.FormatAny(w, res, flags)
	}

	if len(res.Imported)+len(res.Failures)+len(res.Skipped) > 0 {
		if err := output.FormatAny(w, table.ImportResultToTableData(res), flags); err != nil {
			return err
		}
	}

	players := 0
	for _, sq := range res.Imported {
		players += sq.Players
	}
	msg := fmt.Sprintf("Imported %d squad(s), %d players, into profile %s", len(res.Imported), players, res.ProfileID)
	alert := alerts.NewSuccess(msg)
	if len(res.Failures) > 0 {
		alert = alerts.NewWarning(msg).WithDetails(fmt.Sprintf("%d team(s) failed", len(res.Failures)))
	}
	return cmdutil.Alerts(cmd, app).Write(alert)
}
