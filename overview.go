package squadselector

import (
	"context"
	"time"

	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Compile-time interface check to ensure proper implementation.
var _ Overviewer = (*client)(nil)

// Overviewer summarizes the current profile.
type Overviewer interface {
	// Overview returns the per-team summary of the current profile
	Overview(ctx context.Context) (*Overview, error)
}

// TeamOverview is one team's line in the overview.
type TeamOverview struct {
	Team     players.Team   `json:"team" yaml:"team"`
	HasSquad bool           `json:"hasSquad" yaml:"hasSquad"`
	Complete bool           `json:"complete" yaml:"complete"`
	Summary  roster.Summary `json:"summary" yaml:"summary"`
	SavedAt  *time.Time     `json:"savedAt,omitempty" yaml:"savedAt,omitempty"`
}

// Overview summarizes every supported team in the current profile.
type Overview struct {
	ProfileID   string         `json:"profileId" yaml:"profileId"`
	ProfileName string         `json:"profileName" yaml:"profileName"`
	Teams       []TeamOverview `json:"teams" yaml:"teams"`

	// Totals over teams with at least one selected player.
	TeamsWithSquads int   `json:"teamsWithSquads" yaml:"teamsWithSquads"`
	CompleteSquads  int   `json:"completeSquads" yaml:"completeSquads"`
	TotalPlayers    int   `json:"totalPlayers" yaml:"totalPlayers"`
	TotalValue      int64 `json:"totalValue" yaml:"totalValue"`
}

// Overview lists every supported team in table order with its squad
// summary, plus totals for the profile.
func (c *client) Overview(ctx context.Context) (*Overview, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}
	profile, err := c.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}
	squads, err := c.profiles.AllSquads(ctx)
	if err != nil {
		return nil, err
	}

	o := &Overview{ProfileID: profile.ID, ProfileName: profile.Name}
	for _, t := range players.Teams() {
		r, ok := squads[t.Code]
		if !ok {
			r = roster.New(t.Code)
		}
		line := TeamOverview{
			Team:     t,
			HasSquad: r.Len() > 0,
			Complete: r.Complete(),
			Summary:  roster.Summarize(r),
		}
		if ok && !r.SavedAt.IsZero() {
			saved := r.SavedAt
			line.SavedAt = &saved
		}
		o.Teams = append(o.Teams, line)

		if !line.HasSquad {
			continue
		}
		o.TeamsWithSquads++
		if line.Complete {
			o.CompleteSquads++
		}
		o.TotalPlayers += line.Summary.Count
		o.TotalValue += line.Summary.TotalMarketValue
	}
	return o, nil
}
