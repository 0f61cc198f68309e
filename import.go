package squadselector

import (
	"context"

	"github.com/jpamies/worldcup-squad-selector/pkg/codec"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Compile-time interface check to ensure proper implementation.
var _ Importer = (*client)(nil)

// Importer loads shared tokens.
type Importer interface {
	// ImportSquad imports a single-squad token
	ImportSquad(ctx context.Context, token string, opts ImportOptions) (*ImportResult, error)

	// ImportAll imports an all-squads token
	ImportAll(ctx context.Context, token string, opts ImportOptions) (*ImportResult, error)
}

// ImportOptions configures an import.
type ImportOptions struct {
	// NewProfile, when set, creates a profile with this name and switches
	// to it before any squad is saved.
	NewProfile string
}

// ImportedSquad is a squad saved by an import.
type ImportedSquad struct {
	Team    string `json:"team" yaml:"team"`
	Players int    `json:"players" yaml:"players"`
	Dropped int    `json:"dropped" yaml:"dropped"`
}

// ImportFailure is a team whose import step failed.
type ImportFailure struct {
	Team    string `json:"team" yaml:"team"`
	Message string `json:"error" yaml:"error"`
	Err     error  `json:"-" yaml:"-"`
}

// ImportResult reports what an import did. A token decodes completely or
// not at all; after that each team is an independent step, so Imported and
// Failures may both be non-empty.
type ImportResult struct {
	ProfileID string          `json:"profileId" yaml:"profileId"`
	Imported  []ImportedSquad `json:"imported" yaml:"imported"`
	Skipped   []string        `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Failures  []ImportFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// importStep is one team to resolve and save.
type importStep struct {
	team string
	ids  []int
}

// ImportSquad decodes a single-squad token, resolves it against the team's
// catalog and saves it. A malformed token changes nothing.
func (c *client) ImportSquad(ctx context.Context, token string, opts ImportOptions) (*ImportResult, error) {
	team, ids, err := codec.DecodeSquad(token)
	if err != nil {
		return nil, err
	}
	t, err := lookupTeam(team)
	if err != nil {
		return nil, err
	}

	result, err := c.runImport(ctx, []importStep{{team: t.Code, ids: ids}}, opts)
	if err != nil {
		return result, err
	}
	if len(result.Failures) > 0 {
		return result, result.Failures[0].Err
	}
	return result, nil
}

// ImportAll decodes an all-squads token and imports every team in it.
// Unknown federation codes and teams resolving to no players are skipped.
// A team whose catalog cannot be fetched is recorded in Failures and the
// remaining teams are still imported.
func (c *client) ImportAll(ctx context.Context, token string, opts ImportOptions) (*ImportResult, error) {
	segments, err := codec.DecodeAllSquads(token)
	if err != nil {
		return nil, err
	}

	steps := make([]importStep, 0, len(segments))
	var skipped []string
	for _, seg := range segments {
		team, ok := seg.Team()
		if !ok {
			c.logger.Warn().Str("federation", seg.Federation).Msg("Skipping unknown federation code")
			skipped = append(skipped, seg.Federation)
			continue
		}
		steps = append(steps, importStep{team: team, ids: seg.IDs})
	}

	result, err := c.runImport(ctx, steps, opts)
	if result != nil {
		result.Skipped = append(skipped, result.Skipped...)
	}
	return result, err
}

func (c *client) runImport(ctx context.Context, steps []importStep, opts ImportOptions) (*ImportResult, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}
	if opts.NewProfile != "" {
		if _, err := c.profiles.Create(ctx, opts.NewProfile, true); err != nil {
			return nil, err
		}
	}
	profileID, err := c.profiles.CurrentID(ctx)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithLogger(ctx, c.logger)
	ctx = logging.WithProfile(logging.WithOperation(ctx, "import"), profileID)
	result := &ImportResult{ProfileID: profileID}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		r, err := c.importTeam(ctx, step)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("team", step.team).Msg("Import step failed")
			result.Failures = append(result.Failures, ImportFailure{Team: step.team, Message: err.Error(), Err: err})
			c.hooks.importFailure(step.team, err)
			continue
		}
		if r.Len() == 0 {
			result.Skipped = append(result.Skipped, step.team)
			continue
		}

		result.Imported = append(result.Imported, ImportedSquad{
			Team:    step.team,
			Players: r.Len(),
			Dropped: len(step.ids) - r.Len(),
		})
		c.hooks.squadImported(profileID, r)
	}

	logging.Ctx(ctx).Info().
		Int("imported", len(result.Imported)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failures)).
		Msg("Import finished")
	return result, nil
}

// importTeam fetches the catalog, resolves the ids and saves the squad when
// it has at least one player.
func (c *client) importTeam(ctx context.Context, step importStep) (roster.Roster, error) {
	catalog, err := c.fetch(ctx, step.team)
	if err != nil {
		return roster.Roster{}, err
	}
	r := codec.ResolveSquad(step.team, step.ids, catalog)
	if r.Len() == 0 {
		return r, nil
	}
	if err := c.profiles.SaveSquad(ctx, step.team, r); err != nil {
		return roster.Roster{}, err
	}
	return r, nil
}
