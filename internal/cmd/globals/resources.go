package globals

import "github.com/spf13/cobra"

// PlayerFlags holds flags for commands that list a team's players.
type PlayerFlags struct {
	Position string
	Search   string
	Limit    int
	Selected bool
}

// ParsePlayers extracts player flags from a command.
// The command must have had AddPlayerFlags called on it, otherwise this will panic.
func ParsePlayers(cmd *cobra.Command) *PlayerFlags {
	return &PlayerFlags{
		Position: mustGetString(cmd, "position"),
		Search:   mustGetString(cmd, "search"),
		Limit:    mustGetInt(cmd, "limit"),
		Selected: mustGetBool(cmd, "selected"),
	}
}

// AddPlayerFlags adds player listing flags to a command.
func AddPlayerFlags(cmd *cobra.Command) *PlayerFlags {
	flags := &PlayerFlags{}

	cmd.Flags().StringVarP(&flags.Position, "position", "p", "all",
		"Filter by position: GK, DEF, MID, FWD or all")
	cmd.Flags().StringVar(&flags.Search, "search", "",
		"Match player or club names (accents and case ignored)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")
	cmd.Flags().BoolVar(&flags.Selected, "selected", false,
		"Only show players in the saved squad")

	return flags
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
