// Package cmdutil provides helpers shared by squadselector commands.
package cmdutil

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	squadselector "github.com/jpamies/worldcup-squad-selector"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/alerts"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/globals"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// Selector returns the application's selector with storage initialized.
func Selector(cmd *cobra.Command, app application.Application) (squadselector.Client, error) {
	sel, err := app.Selector()
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, errors.NewConfigError("selector", "no selector configured", nil)
	}
	if err := sel.Initialize(cmd.Context()); err != nil {
		return nil, err
	}
	return sel, nil
}

// Flags returns the output flags of the application.
func Flags(app application.Application) *globals.Flags {
	return globals.ForFormat(app.OutputFormat())
}

// Alerts returns an alert writer on the command's output.
func Alerts(cmd *cobra.Command, app application.Application) *alerts.Writer {
	noColor := false
	if flags, err := globals.Parse(cmd); err == nil {
		noColor = flags.NoColor
	}
	return alerts.NewWriter(cmd.OutOrStdout(), output.Format(app.OutputFormat()), noColor)
}

// ParseIDs parses player ids given as arguments.
func ParseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.NewValidationError("player id", arg, fmt.Sprintf("%q is not a player id", arg))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
