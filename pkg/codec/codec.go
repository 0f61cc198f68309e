// Package codec encodes squads into compact URL-safe share tokens and back.
//
// Two formats exist. A single-squad token is base64 over the JSON object
// {"c": team, "p": [ids]}. An all-squads token is base64 over the plain text
// "FED:id,id|FED:id", where FED is the 3-letter federation code of a team.
//
// Only player ids travel in a token. Importing one requires resolving the ids
// against a live catalog with ResolveSquad, so a token exported against an
// older catalog may resolve to fewer players.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/roster"
)

// Token formats as reported by TokenError.Format.
const (
	FormatSquad = "squad"
	FormatAll   = "all"
)

const (
	segmentSep = "|"
	teamSep    = ":"
	idSep      = ","
)

// Segment is one team's entry in an all-squads token.
type Segment struct {
	Federation string
	IDs        []int
}

// Team returns the internal team code of the segment's federation.
func (s Segment) Team() (string, bool) {
	return players.TeamFor(s.Federation)
}

type squadPayload struct {
	Team    string `json:"c"`
	Players []int  `json:"p"`
}

// decodedPayload distinguishes missing fields from empty ones.
type decodedPayload struct {
	Team    *string `json:"c"`
	Players *[]int  `json:"p"`
}

// EncodeSquad returns the share token of a single roster.
func EncodeSquad(team string, r roster.Roster) (string, error) {
	if strings.TrimSpace(team) == "" {
		return "", errors.NewValidationError("team", team, "team code is required")
	}
	ids := r.IDs()
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(squadPayload{Team: team, Players: ids})
	if err != nil {
		return "", errors.WrapParse("json", "", err)
	}
	return encode(data), nil
}

// DecodeSquad parses a single-squad token.
func DecodeSquad(token string) (string, []int, error) {
	data, err := decode(token)
	if err != nil {
		return "", nil, errors.NewTokenError(FormatSquad, "invalid base64", err)
	}

	var p decodedPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return "", nil, errors.NewTokenError(FormatSquad, "invalid payload", err)
	}
	if p.Team == nil || strings.TrimSpace(*p.Team) == "" {
		return "", nil, errors.NewTokenError(FormatSquad, "missing team", nil)
	}
	if p.Players == nil {
		return "", nil, errors.NewTokenError(FormatSquad, "missing player ids", nil)
	}
	return *p.Team, *p.Players, nil
}

// EncodeAllSquads returns the share token of every non-empty roster in
// squads, in team table order.
func EncodeAllSquads(squads map[string]roster.Roster) (string, error) {
	teams := make([]string, 0, len(squads))
	for team, r := range squads {
		if r.Len() == 0 {
			continue
		}
		if _, ok := players.Federation(team); !ok {
			return "", errors.NewValidationError("team", team, "no federation code for team")
		}
		teams = append(teams, team)
	}
	if len(teams) == 0 {
		return "", errors.ErrNothingToShare
	}
	slices.SortFunc(teams, func(a, b string) int {
		return players.TeamIndex(a) - players.TeamIndex(b)
	})

	segments := make([]string, 0, len(teams))
	for _, team := range teams {
		fed, _ := players.Federation(team)
		ids := squads[team].IDs()
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		segments = append(segments, fed+teamSep+strings.Join(parts, idSep))
	}
	return encode([]byte(strings.Join(segments, segmentSep))), nil
}

// DecodeAllSquads parses an all-squads token. Federation codes are returned
// as written; callers map them with Segment.Team and skip unknown ones.
func DecodeAllSquads(token string) ([]Segment, error) {
	data, err := decode(token)
	if err != nil {
		return nil, errors.NewTokenError(FormatAll, "invalid base64", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, errors.NewTokenError(FormatAll, "empty payload", nil)
	}

	raw := strings.Split(text, segmentSep)
	segments := make([]Segment, 0, len(raw))
	for _, part := range raw {
		fed, list, ok := strings.Cut(part, teamSep)
		fed = strings.TrimSpace(fed)
		if !ok || fed == "" {
			return nil, errors.NewTokenError(FormatAll, "segment without team: "+part, nil)
		}
		ids, err := parseIDs(list)
		if err != nil {
			return nil, errors.NewTokenError(FormatAll, "invalid ids for "+fed, err)
		}
		segments = append(segments, Segment{Federation: fed, IDs: ids})
	}
	return segments, nil
}

// ResolveSquad builds the roster of team from ids, in ids order, using the
// players in catalog. Unknown and repeated ids are dropped. The composition limits are not
// checked: a shared squad is taken as it was built.
func ResolveSquad(team string, ids []int, catalog []players.Player) roster.Roster {
	index := players.Index(catalog)
	r := roster.New(team)
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		p, ok := index[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		r.Players = append(r.Players, p)
	}
	return r
}

func parseIDs(list string) ([]int, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return []int{}, nil
	}
	parts := strings.Split(list, idSep)
	ids := make([]int, 0, len(parts))
	for _, s := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// decode accepts both base64 alphabets with or without padding, so tokens
// produced by browsers (btoa) stay readable.
func decode(token string) ([]byte, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("empty token")
	}
	token = strings.TrimRight(token, "=")
	if strings.ContainsAny(token, "+/") {
		return base64.RawStdEncoding.DecodeString(token)
	}
	return base64.RawURLEncoding.DecodeString(token)
}
