package app

import (
	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/completion"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/imports"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/man"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/overview"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/player"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/profile"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/share"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/squad"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/teams"
	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(teams.NewCommand(a))
	rootCmd.AddCommand(player.NewCommand(a))
	rootCmd.AddCommand(squad.NewCommand(a))
	rootCmd.AddCommand(overview.NewCommand(a))
	rootCmd.AddCommand(share.NewCommand(a))
	rootCmd.AddCommand(imports.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(profile.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand(a))
	rootCmd.AddCommand(man.NewCommand(a))
}
