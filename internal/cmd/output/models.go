// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"io"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/globals"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/table"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/profiles"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

func isTable(globalFlags *globals.Flags) bool {
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, constants.FormatMarkdown, "":
		return true
	}
	return false
}

func isWide(globalFlags *globals.Flags) bool {
	return globalFlags.Output == constants.FormatWide
}

// FormatPlayers handles the common pattern of formatting a team catalog for
// output. selected marks players in the current squad and may be nil.
func FormatPlayers(w io.Writer, ps []players.Player, selected func(int) bool, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	if isTable(globalFlags) {
		outputData = table.PlayersToTableData(ps, selected, isWide(globalFlags))
	} else {
		outputData = ps
	}

	return formatter.Format(w, outputData)
}

// SquadView is a roster with its summary, as structured output shows it.
type SquadView struct {
	Team    players.Team     `json:"team" yaml:"team"`
	Players []players.Player `json:"players" yaml:"players"`
	Summary roster.Summary   `json:"summary" yaml:"summary"`
	Saved   bool             `json:"saved" yaml:"saved"`
}

// FormatRoster prints the selected players followed by the summary table.
func FormatRoster(w io.Writer, team players.Team, r roster.Roster, saved bool, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	summary := roster.Summarize(r)

	if !isTable(globalFlags) {
		ps := r.Players
		if ps == nil {
			ps = []players.Player{}
		}
		return formatter.Format(w, SquadView{Team: team, Players: ps, Summary: summary, Saved: saved})
	}

	if r.Len() > 0 {
		if err := formatter.Format(w, table.RosterToTableData(r, isWide(globalFlags))); err != nil {
			return err
		}
	}
	return formatter.Format(w, table.SummaryToTableData(summary))
}

// FormatProfiles handles the common pattern of formatting profiles for output.
func FormatProfiles(w io.Writer, list []profiles.Profile, currentID string, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	if isTable(globalFlags) {
		outputData = table.ProfilesToTableData(list, currentID)
	} else {
		outputData = list
	}

	return formatter.Format(w, outputData)
}

// FormatTeams handles the common pattern of formatting teams for output.
func FormatTeams(w io.Writer, teams []players.Team, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	if isTable(globalFlags) {
		outputData = table.TeamsToTableData(teams)
	} else {
		outputData = teams
	}

	return formatter.Format(w, outputData)
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(w io.Writer, data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	return formatter.Format(w, data)
}
