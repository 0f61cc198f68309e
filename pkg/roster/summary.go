package roster

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// AgePlaceholder is displayed when the average age is undefined.
const AgePlaceholder = "-"

// Summary holds the aggregate figures of a roster.
type Summary struct {
	Count            int                      `json:"count" yaml:"count"`
	TotalMarketValue int64                    `json:"totalMarketValue" yaml:"totalMarketValue"`
	AverageAge       *float64                 `json:"averageAge" yaml:"averageAge"`
	CountsByPosition map[players.Position]int `json:"countsByPosition" yaml:"countsByPosition"`
}

// Summarize computes count, total value, mean age and per-position counts.
// The mean age covers only players with a known age and is nil when no
// player has one.
func Summarize(r Roster) Summary {
	s := Summary{
		Count:            len(r.Players),
		CountsByPosition: make(map[players.Position]int, len(players.Positions)),
	}
	for _, pos := range players.Positions {
		s.CountsByPosition[pos] = 0
	}

	ages, aged := 0, 0
	for _, p := range r.Players {
		s.TotalMarketValue += p.MarketValue
		s.CountsByPosition[p.Position]++
		if p.Age != nil {
			ages += *p.Age
			aged++
		}
	}
	if aged > 0 {
		avg := float64(ages) / float64(aged)
		s.AverageAge = &avg
	}
	return s
}

// AverageAgeLabel renders the mean age with one decimal, or AgePlaceholder.
func (s Summary) AverageAgeLabel() string {
	if s.AverageAge == nil {
		return AgePlaceholder
	}
	return decimal.NewFromFloat(*s.AverageAge).StringFixed(1)
}

var (
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
	thousand = decimal.New(1, 3)
)

// FormatMarketValue renders a value as €1.2B, €45.0M, €350K or €900.
func FormatMarketValue(v int64) string {
	d := decimal.NewFromInt(v)
	switch {
	case v <= 0:
		return "€0"
	case v >= 1_000_000_000:
		return "€" + d.Div(billion).StringFixed(1) + "B"
	case v >= 1_000_000:
		return "€" + d.Div(million).StringFixed(1) + "M"
	case v >= 1_000:
		return "€" + d.Div(thousand).StringFixed(0) + "K"
	default:
		return "€" + d.String()
	}
}

// FormatPlayerValue renders a single player's value without decimals: €80M, €500K.
func FormatPlayerValue(v int64) string {
	d := decimal.NewFromInt(v)
	switch {
	case v >= 1_000_000:
		return "€" + d.Div(million).StringFixed(0) + "M"
	case v >= 1_000:
		return "€" + d.Div(thousand).StringFixed(0) + "K"
	default:
		return "€" + d.String()
	}
}

// FormatExactValue renders the full value with thousands separators: €1,234,000.
func FormatExactValue(v int64) string {
	return "€" + humanize.Comma(v)
}
