// Package cmdtest provides fixtures for command tests: a selector over an
// in-memory store and catalog, and helpers to run a command.
package cmdtest

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
)

// Now is the fixed clock of selectors built here.
var Now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// Catalog returns spain with 4 goalkeepers and 3 outfield players, and
// japan with 2 players. Other teams are unavailable.
func Catalog() *players.MemoryCatalog {
	age := func(n int) *int { return &n }
	return players.NewMemoryCatalog(map[string][]players.Player{
		"spain": {
			{ID: 1, Name: "Unai Simón", Position: players.Goalkeeper, Club: "Athletic", Age: age(28), MarketValue: 25_000_000},
			{ID: 2, Name: "David Raya", Position: players.Goalkeeper, Club: "Arsenal", Age: age(30), MarketValue: 35_000_000},
			{ID: 3, Name: "Álex Remiro", Position: players.Goalkeeper, Club: "Real Sociedad", Age: age(31), MarketValue: 15_000_000},
			{ID: 4, Name: "Robert Sánchez", Position: players.Goalkeeper, Club: "Chelsea", MarketValue: 10_000_000},
			{ID: 10, Name: "Pedri", Position: players.Midfielder, Club: "FC Barcelona", Age: age(23), MarketValue: 140_000_000},
			{ID: 11, Name: "Lamine Yamal", Position: players.Forward, Club: "FC Barcelona", Age: age(18), MarketValue: 200_000_000},
			{ID: 12, Name: "Pau Cubarsí", Position: players.Defender, Club: "FC Barcelona", Age: age(19), MarketValue: 80_000_000},
		},
		"japan": {
			{ID: 20, Name: "Kaoru Mitoma", Position: players.Forward, Club: "Brighton", Age: age(28), MarketValue: 45_000_000},
			{ID: 21, Name: "Zion Suzuki", Position: players.Goalkeeper, Club: "Parma", Age: age(23), MarketValue: 18_000_000},
		},
	})
}

// Selector returns a selector over a fresh in-memory store and Catalog.
func Selector(t *testing.T) (squadselector.Client, *kv.Memory) {
	t.Helper()
	store := kv.NewMemory()
	sel, err := squadselector.New(
		squadselector.WithStore(store),
		squadselector.WithCatalog(Catalog()),
		squadselector.WithLogger(logging.NewNopLogger()),
		squadselector.WithClock(func() time.Time { return Now }),
		squadselector.WithShareBaseURL("https://squads.example/"),
	)
	if err != nil {
		t.Fatalf("squadselector.New() failed: %v", err)
	}
	return sel, store
}

// App returns a mock application serving sel in the given output format.
func App(sel squadselector.Client, format string) *application.Mock {
	return &application.Mock{
		SelectorFunc:     func() (squadselector.Client, error) { return sel, nil },
		OutputFormatFunc: func() string { return format },
	}
}

// Run executes cmd with args and returns what it wrote to stdout.
func Run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
