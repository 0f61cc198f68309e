// Package squad implements the squad command.
package squad

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/alerts"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/table"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// NewCommand creates the squad command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "squad",
		GroupID: "core",
		Short:   "Show and edit a team's squad",
		Long: `Show and edit the squad of a team in the current profile.

A squad holds at most 26 players: up to 3 goalkeepers and 23 outfield
players. Every change is saved immediately; a change that breaks a limit
is rejected and leaves the saved squad as it was.`,
		Example: `  squadselector squad show spain
  squadselector squad add spain 1001 1002 1003
  squadselector squad remove spain 1002
  squadselector squad clear spain`,
	}

	cmd.AddCommand(newShowCommand(app))
	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newRemoveCommand(app))
	cmd.AddCommand(newToggleCommand(app))
	cmd.AddCommand(newClearCommand(app))

	return cmd
}

func newShowCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "show TEAM",
		Short: "Show the saved squad and its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, ok := players.LookupTeam(args[0])
			if !ok {
				return errors.NewNotFoundError("team", args[0])
			}
			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			r, saved, err := sel.Profiles().GetSquad(cmd.Context(), team.Code)
			if err != nil {
				return err
			}
			return output.FormatRoster(cmd.OutOrStdout(), team, r, saved, cmdutil.Flags(app))
		},
	}
}

func newAddCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "add TEAM ID...",
		Aliases: []string{"select"},
		Short:   "Add players to the squad",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, app, args[0], args[1:], func(s *squadselector.Session, id int) error {
				if s.IsSelected(id) {
					return nil
				}
				return s.Select(id)
			})
		},
	}
}

func newRemoveCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove TEAM ID...",
		Aliases: []string{"rm", "deselect"},
		Short:   "Remove players from the squad",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, app, args[0], args[1:], func(s *squadselector.Session, id int) error {
				if !s.Deselect(id) {
					return errors.NewNotFoundError("selected player", strconv.Itoa(id))
				}
				return nil
			})
		},
	}
}

func newToggleCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle TEAM ID...",
		Short: "Add unselected players and remove selected ones",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, app, args[0], args[1:], func(s *squadselector.Session, id int) error {
				_, err := s.Toggle(id)
				return err
			})
		},
	}
}

func newClearCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "clear TEAM",
		Short: "Remove every player from the squad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, app, args[0], nil, nil)
		},
	}
}

// edit opens a session, applies change to every id and saves. The first
// failing id aborts the command before anything is saved. A nil change
// clears the squad.
func edit(cmd *cobra.Command, app application.Application, team string, rawIDs []string, change func(*squadselector.Session, int) error) error {
	ids, err := cmdutil.ParseIDs(rawIDs)
	if err != nil {
		return err
	}
	sel, err := cmdutil.Selector(cmd, app)
	if err != nil {
		return err
	}
	s, err := sel.Open(cmd.Context(), team)
	if err != nil {
		return err
	}

	if change == nil {
		s.Clear()
	}
	for _, id := range ids {
		if err := change(s, id); err != nil {
			app.Logger().Debug().Err(err).Int("player_id", id).Msg("Squad change aborted, nothing saved")
			return err
		}
	}

	if err := s.Save(cmd.Context()); err != nil {
		return err
	}

	summary := s.Summary()
	msg := fmt.Sprintf("%s squad saved: %d players", s.Team().Name, summary.Count)
	return cmdutil.Alerts(cmd, app).Write(alerts.NewSuccess(msg).
		WithDetails(table.FormatCounts(summary.CountsByPosition)))
}
