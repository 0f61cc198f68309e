package players

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
)

// positionLabels maps folded labels to positions. Keys are lower case without accents.
var positionLabels = map[string]Position{
	// wire codes and provider letters
	"gk": Goalkeeper, "def": Defender, "mid": Midfielder, "fwd": Forward,
	"g": Goalkeeper, "d": Defender, "m": Midfielder, "f": Forward,

	// english
	"goalkeeper": Goalkeeper, "keeper": Goalkeeper,
	"defender": Defender, "defence": Defender, "defense": Defender,
	"centre-back": Defender, "left-back": Defender, "right-back": Defender,
	"full-back": Defender, "sweeper": Defender,
	"left wing-back": Defender, "right wing-back": Defender,
	"midfielder": Midfielder, "midfield": Midfielder,
	"defensive midfield": Midfielder, "central midfield": Midfielder,
	"attacking midfield": Midfielder, "left midfield": Midfielder, "right midfield": Midfielder,
	"forward": Forward, "attacker": Forward, "attack": Forward, "striker": Forward,
	"left winger": Forward, "right winger": Forward, "winger": Forward,
	"second striker": Forward, "centre-forward": Forward,

	// transfermarkt (es)
	"portero":              Goalkeeper,
	"defensa central":      Defender,
	"lateral izquierdo":    Defender,
	"lateral derecho":      Defender,
	"lateral":              Defender,
	"libero":               Defender,
	"pivote":               Midfielder,
	"mediocentro":          Midfielder,
	"interior derecho":     Midfielder,
	"interior izquierdo":   Midfielder,
	"mediocentro ofensivo": Midfielder,
	"extremo izquierdo":    Forward,
	"extremo derecho":      Forward,
	"extremo":              Forward,
	"mediapunta":           Forward,
	"delantero centro":     Forward,
}

// detailedLabels translates provider detail labels to English.
var detailedLabels = map[string]string{
	"portero":              "Goalkeeper",
	"defensa central":      "Centre-Back",
	"lateral izquierdo":    "Left-Back",
	"lateral derecho":      "Right-Back",
	"lateral":              "Full-Back",
	"libero":               "Sweeper",
	"pivote":               "Defensive Midfield",
	"mediocentro":          "Central Midfield",
	"interior derecho":     "Right Midfield",
	"interior izquierdo":   "Left Midfield",
	"mediocentro ofensivo": "Attacking Midfield",
	"extremo izquierdo":    "Left Winger",
	"extremo derecho":      "Right Winger",
	"extremo":              "Winger",
	"mediapunta":           "Second Striker",
	"delantero centro":     "Centre-Forward",

	"gk": "Goalkeeper", "cb": "Centre-Back", "lb": "Left-Back", "rb": "Right-Back",
	"lwb": "Left Wing-Back", "rwb": "Right Wing-Back",
	"dm": "Defensive Midfield", "cdm": "Defensive Midfield", "cm": "Central Midfield",
	"cam": "Attacking Midfield", "am": "Attacking Midfield",
	"lm": "Left Midfield", "rm": "Right Midfield",
	"lw": "Left Winger", "rw": "Right Winger",
	"cf": "Centre-Forward", "st": "Centre-Forward", "ss": "Second Striker",
}

// Fold lower-cases a label and strips accents and surrounding space.
func Fold(label string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, label)
	if err != nil {
		folded = label
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithFallback maps unknown position labels to p instead of failing.
func WithFallback(p Position) NormalizerOption {
	return func(n *Normalizer) {
		n.fallback = &p
	}
}

// WithNormalizerLogger sets the logger used to report fallbacks.
func WithNormalizerLogger(logger *zerolog.Logger) NormalizerOption {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// Normalizer turns provider records into Players.
// Without a fallback it is strict: unknown position labels are an error.
type Normalizer struct {
	fallback *Position
	logger   *zerolog.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{logger: logging.Default()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Fallback returns the fallback position, if one is configured.
func (n *Normalizer) Fallback() (Position, bool) {
	if n.fallback == nil {
		return "", false
	}
	return *n.fallback, true
}

// Position maps a provider position label to a Position.
func (n *Normalizer) Position(label string) (Position, error) {
	if p, ok := positionLabels[Fold(label)]; ok {
		return p, nil
	}
	if n.fallback == nil {
		return "", errors.NewValidationError("position", label, fmt.Sprintf("unknown position label %q", label))
	}
	n.logger.Debug().
		Str("label", label).
		Str("fallback", n.fallback.String()).
		Msg("Unknown position label, using fallback")
	return *n.fallback, nil
}

// DetailedPosition translates a provider detail label to English.
// Unknown labels are returned unchanged.
func DetailedPosition(label string) string {
	if english, ok := detailedLabels[Fold(label)]; ok {
		return english
	}
	return strings.TrimSpace(label)
}

var (
	million  = decimal.New(1, 6)
	thousand = decimal.New(1, 3)
)

// ParseMarketValue parses provider market values such as "200,00 mill. €"
// (200000000) or "500 mil €" (500000). Unparseable input is 0.
func ParseMarketValue(s string) int64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, "€", ""))
	if cleaned == "" {
		return 0
	}

	multiplier := decimal.New(1, 0)
	switch {
	case strings.Contains(cleaned, "mill."):
		multiplier = million
		cleaned = strings.ReplaceAll(cleaned, "mill.", "")
	case strings.Contains(cleaned, "mil"):
		multiplier = thousand
		cleaned = strings.ReplaceAll(cleaned, "mil", "")
	}
	cleaned = strings.Replace(strings.TrimSpace(cleaned), ",", ".", 1)

	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return 0
	}
	return d.Mul(multiplier).Round(0).IntPart()
}

// MarketValue is a provider market value given either as a number or as a
// formatted string.
type MarketValue int64

// UnmarshalJSON accepts numbers, numeric strings and formatted strings.
func (v *MarketValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = 0
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = MarketValue(ParseMarketValue(s))
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return errors.NewValidationError("marketValue", string(data), "not a number")
	}
	*v = MarketValue(d.Round(0).IntPart())
	return nil
}

// RawPlayer is a player as found in a catalog file, before normalization.
type RawPlayer struct {
	ID               json.Number `json:"id"`
	Name             string      `json:"name"`
	Position         string      `json:"position"`
	DetailedPosition string      `json:"detailedPosition"`
	Club             string      `json:"club"`
	ClubLogo         string      `json:"clubLogo"`
	Age              *float64    `json:"age"`
	MarketValue      MarketValue `json:"marketValue"`
	Photo            string      `json:"photo"`
}

// Normalize converts a raw record into a Player.
// Negative market values clamp to 0 and negative ages become unknown.
func (n *Normalizer) Normalize(raw RawPlayer) (Player, error) {
	id, err := strconv.Atoi(raw.ID.String())
	if err != nil {
		return Player{}, errors.NewValidationError("id", raw.ID.String(), "player id must be an integer")
	}

	pos, err := n.Position(raw.Position)
	if err != nil {
		return Player{}, err
	}

	detailed := raw.DetailedPosition
	if detailed == "" {
		detailed = raw.Position
	}

	var age *int
	if raw.Age != nil && *raw.Age >= 0 {
		a := int(*raw.Age)
		age = &a
	}

	value := int64(raw.MarketValue)
	if value < 0 {
		value = 0
	}

	return Player{
		ID:               id,
		Name:             strings.TrimSpace(raw.Name),
		Position:         pos,
		DetailedPosition: DetailedPosition(detailed),
		Club:             raw.Club,
		ClubLogo:         raw.ClubLogo,
		Age:              age,
		MarketValue:      value,
		Photo:            raw.Photo,
	}, nil
}

// NormalizeAll converts raw records, skipping duplicate IDs.
// The first failing record aborts the conversion.
func (n *Normalizer) NormalizeAll(raws []RawPlayer) ([]Player, error) {
	out := make([]Player, 0, len(raws))
	seen := make(map[int]struct{}, len(raws))
	for _, raw := range raws {
		p, err := n.Normalize(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID]; dup {
			n.logger.Debug().Int("player_id", p.ID).Msg("Skipping duplicate player")
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
