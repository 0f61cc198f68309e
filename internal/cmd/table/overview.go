package table

import (
	"strconv"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/emoji"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// OverviewToTableData converts a profile overview to table format. Teams
// without a squad are listed only when all is set. A totals row closes the
// table.
func OverviewToTableData(o *squadselector.Overview, all bool) Data {
	rows := make([][]string, 0, len(o.Teams)+1)
	for _, t := range o.Teams {
		if !t.HasSquad && !all {
			continue
		}
		status := emoji.Optional
		switch {
		case t.Complete:
			status = emoji.Success
		case t.HasSquad:
			status = emoji.Spinner
		}
		saved := "-"
		if t.SavedAt != nil {
			saved = t.SavedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			status,
			t.Team.Name,
			strconv.Itoa(t.Summary.Count),
			FormatCounts(t.Summary.CountsByPosition),
			roster.FormatMarketValue(t.Summary.TotalMarketValue),
			t.Summary.AverageAgeLabel(),
			saved,
		})
	}
	rows = append(rows, []string{
		"",
		"Total (" + strconv.Itoa(o.CompleteSquads) + "/" + strconv.Itoa(o.TeamsWithSquads) + " complete)",
		strconv.Itoa(o.TotalPlayers),
		"",
		roster.FormatMarketValue(o.TotalValue),
		"",
		"",
	})

	return Data{
		Headers: []string{"", "Team", "Players", "Positions", "Value", "Avg Age", "Saved"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignCenter, AlignLeft, AlignRight, AlignLeft, AlignRight, AlignRight, AlignLeft,
		},
	}
}

// ImportResultToTableData lists what an import did per team.
func ImportResultToTableData(res *squadselector.ImportResult) Data {
	rows := make([][]string, 0, len(res.Imported)+len(res.Failures)+len(res.Skipped))
	for _, sq := range res.Imported {
		note := ""
		if sq.Dropped > 0 {
			note = strconv.Itoa(sq.Dropped) + " unknown player(s) dropped"
		}
		rows = append(rows, []string{emoji.Success, sq.Team, strconv.Itoa(sq.Players), note})
	}
	for _, f := range res.Failures {
		rows = append(rows, []string{emoji.Error, f.Team, "0", f.Message})
	}
	for _, code := range res.Skipped {
		rows = append(rows, []string{emoji.Optional, code, "0", "skipped"})
	}
	return Data{
		Headers:         []string{"", "Team", "Players", "Note"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignLeft, AlignRight, AlignLeft},
	}
}
