// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/constants"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
)

// Info is the structured form of the version output.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"builtBy" yaml:"builtBy"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewCommand creates the version command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Info{
				Version:   app.Version(),
				Commit:    app.Commit(),
				Date:      app.Date(),
				BuiltBy:   app.BuiltBy(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			flags := cmdutil.Flags(app)
			if flags.Output == constants.FormatJSON || flags.Output == constants.FormatYAML {
				return output.FormatAny(cmd.OutOrStdout(), info, flags)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "squadselector version %s\n", info.Version)
			_, _ = fmt.Fprintf(w, "commit: %s\n", info.Commit)
			_, _ = fmt.Fprintf(w, "built: %s\n", info.Date)
			_, _ = fmt.Fprintf(w, "built by: %s\n", info.BuiltBy)
			_, _ = fmt.Fprintf(w, "go version: %s\n", info.GoVersion)
			_, err := fmt.Fprintf(w, "platform: %s\n", info.Platform)
			return err
		},
	}
}
