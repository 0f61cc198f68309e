// Package players defines the player model shared by the roster engine, the
// profile store and the catalog adapters: players, positions, position
// filters, the table of supported teams and the Catalog collaborator.
package players

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// Position is the closed set of player positions.
type Position string

// Positions, serialized by their wire codes.
const (
	Goalkeeper Position = "GK"
	Defender   Position = "DEF"
	Midfielder Position = "MID"
	Forward    Position = "FWD"
)

// Positions lists every position in display order.
var Positions = []Position{Goalkeeper, Defender, Midfielder, Forward}

// String returns the wire code of the position.
func (p Position) String() string {
	return string(p)
}

// Valid reports whether p is one of the four known positions.
func (p Position) Valid() bool {
	switch p {
	case Goalkeeper, Defender, Midfielder, Forward:
		return true
	}
	return false
}

// ParsePosition parses a wire code (GK, DEF, MID, FWD), case-insensitively.
func ParsePosition(code string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(code)))
	if !p.Valid() {
		return "", errors.NewValidationError("position", code, fmt.Sprintf("unknown position code %q", code))
	}
	return p, nil
}

// UnmarshalJSON rejects anything but the four wire codes.
func (p *Position) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParsePosition(code)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Player is an immutable catalog entry. Age is nil when unknown.
type Player struct {
	ID               int      `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Position         Position `json:"position" yaml:"position"`
	DetailedPosition string   `json:"detailedPosition,omitempty" yaml:"detailedPosition,omitempty"`
	Club             string   `json:"club" yaml:"club"`
	ClubLogo         string   `json:"clubLogo,omitempty" yaml:"clubLogo,omitempty"`
	Age              *int     `json:"age" yaml:"age"`
	MarketValue      int64    `json:"marketValue" yaml:"marketValue"`
	Photo            string   `json:"photo,omitempty" yaml:"photo,omitempty"`
}

// IsGoalkeeper reports whether the player counts against the goalkeeper limit.
func (p Player) IsGoalkeeper() bool {
	return p.Position == Goalkeeper
}

// Filter selects players by position. FilterAll matches everyone.
type Filter string

// FilterAll is the identity filter.
const FilterAll Filter = "all"

// FilterFor returns the filter matching a single position.
func FilterFor(p Position) Filter {
	return Filter(p)
}

// ParseFilter parses "all" or a position code.
func ParseFilter(s string) (Filter, error) {
	if s == "" || strings.EqualFold(s, string(FilterAll)) {
		return FilterAll, nil
	}
	p, err := ParsePosition(s)
	if err != nil {
		return "", err
	}
	return FilterFor(p), nil
}

// Matches reports whether the player passes the filter.
func (f Filter) Matches(p Player) bool {
	return f == FilterAll || f == "" || Position(f) == p.Position
}

// String returns the filter name.
func (f Filter) String() string {
	if f == "" {
		return string(FilterAll)
	}
	return string(f)
}

// Catalog supplies the available players of a team.
type Catalog interface {
	Players(ctx context.Context, team string) ([]Player, error)
}

// Index maps player IDs to players for lookup against a full catalog.
func Index(catalog []Player) map[int]Player {
	idx := make(map[int]Player, len(catalog))
	for _, p := range catalog {
		idx[p.ID] = p
	}
	return idx
}

// Find returns the player with the given ID.
func Find(catalog []Player, id int) (Player, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
