// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/emoji"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/profiles"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// PlayersToTableData converts a team catalog to table format. selected may
// be nil; wide adds the detailed position and club columns and shows exact
// market values.
func PlayersToTableData(ps []players.Player, selected func(id int) bool, wide bool) Data {
	headers := []string{"", "ID", "Name", "Pos", "Age", "Value"}
	align := []Align{AlignCenter, AlignRight, AlignLeft, AlignCenter, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Detailed Position", "Club")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		mark := ""
		if selected != nil && selected(p.ID) {
			mark = emoji.Success
		}
		row := []string{
			mark,
			strconv.Itoa(p.ID),
			p.Name,
			p.Position.String(),
			FormatAge(p.Age),
			roster.FormatPlayerValue(p.MarketValue),
		}
		if wide {
			row[5] = roster.FormatExactValue(p.MarketValue)
			row = append(row, dash(p.DetailedPosition), dash(p.Club))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// RosterToTableData lists the selected players grouped by position.
func RosterToTableData(r roster.Roster, wide bool) Data {
	grouped := make([]players.Player, 0, r.Len())
	for _, pos := range players.Positions {
		grouped = append(grouped, roster.FilterByPosition(r.Players, players.FilterFor(pos))...)
	}
	return PlayersToTableData(grouped, nil, wide)
}

// SummaryToTableData renders a roster summary as a key-value table.
func SummaryToTableData(s roster.Summary) Data {
	rows := [][]string{
		{"Players", strconv.Itoa(s.Count)},
		{"Total Value", roster.FormatMarketValue(s.TotalMarketValue)},
		{"Average Age", s.AverageAgeLabel()},
	}
	for _, pos := range players.Positions {
		rows = append(rows, []string{string(pos), strconv.Itoa(s.CountsByPosition[pos])})
	}
	return Data{
		Headers:         []string{"Summary", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// ProfilesToTableData converts profiles to table format, marking the
// current one.
func ProfilesToTableData(list []profiles.Profile, currentID string) Data {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		mark := ""
		if p.ID == currentID {
			mark = emoji.Success
		}
		rows = append(rows, []string{
			mark,
			p.ID,
			p.Name,
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return Data{
		Headers:         []string{"", "ID", "Name", "Created", "Updated"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
}

// TeamsToTableData lists the supported teams.
func TeamsToTableData(teams []players.Team) Data {
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, []string{t.Code, t.Federation, t.Name, t.NameLocal, t.Confederation})
	}
	return Data{
		Headers: []string{"Code", "FIFA", "Name", "Local Name", "Confederation"},
		Rows:    rows,
	}
}

// FormatAge formats a possibly unknown age.
func FormatAge(age *int) string {
	if age == nil {
		return "-"
	}
	return strconv.Itoa(*age)
}

// FormatCounts renders per-position counts as "GK 3 · DEF 8 · MID 8 · FWD 7".
func FormatCounts(counts map[players.Position]int) string {
	parts := make([]string, 0, len(players.Positions))
	for _, pos := range players.Positions {
		parts = append(parts, string(pos)+" "+strconv.Itoa(counts[pos]))
	}
	return strings.Join(parts, " · ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
