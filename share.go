package squadselector

import (
	"context"
	"net/url"

	"github.com/jpamies/worldcup-squad-selector/pkg/codec"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Compile-time interface check to ensure proper implementation.
var _ Sharing = (*client)(nil)

// Sharing exports squads of the current profile as share tokens.
type Sharing interface {
	// ExportSquad returns the single-squad token of a team
	ExportSquad(ctx context.Context, team string) (string, error)

	// ExportAll returns the all-squads token of the current profile
	ExportAll(ctx context.Context) (string, error)

	// ShareURL builds a link carrying token in the given query parameter
	ShareURL(param, token string) (string, error)
}

// ExportSquad returns the token of the current profile's squad for team.
// A missing or empty squad returns errors.ErrNothingToShare.
func (c *client) ExportSquad(ctx context.Context, team string) (string, error) {
	t, err := lookupTeam(team)
	if err != nil {
		return "", err
	}
	if err := c.init(ctx); err != nil {
		return "", err
	}

	r, ok, err := c.profiles.GetSquad(ctx, t.Code)
	if err != nil {
		return "", err
	}
	if !ok || r.Len() == 0 {
		return "", errors.ErrNothingToShare
	}
	return codec.EncodeSquad(t.Code, r)
}

// ExportAll returns the token of every non-empty squad of the current
// profile. Squads stored under unknown team codes are left out.
func (c *client) ExportAll(ctx context.Context) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", err
	}
	squads, err := c.profiles.AllSquads(ctx)
	if err != nil {
		return "", err
	}

	known := make(map[string]roster.Roster, len(squads))
	for team, r := range squads {
		if _, ok := players.LookupTeam(team); !ok {
			c.logger.Debug().Str("team", team).Msg("Skipping squad of unknown team")
			continue
		}
		known[team] = r
	}
	return codec.EncodeAllSquads(known)
}

// ShareURL returns the share base URL with token set as the param query
// parameter. Without a base URL the link is relative.
func (c *client) ShareURL(param, token string) (string, error) {
	if param == "" {
		return "", errors.NewValidationError("param", param, "query parameter is required")
	}
	u, err := url.Parse(c.options.shareBaseURL)
	if err != nil {
		return "", errors.WrapValidation("share_base_url", err)
	}
	q := u.Query()
	q.Set(param, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
