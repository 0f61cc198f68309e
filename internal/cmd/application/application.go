// Package application provides the application interface for squadselector
// commands.
//
// Commands accept the Application interface rather than the concrete App
// type so they can be tested with Mock:
//
//	mock := &application.Mock{
//	    SelectorFunc: func() (squadselector.Client, error) {
//	        return testSelector, nil
//	    },
//	}
//	cmd := squad.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	squadselector "github.com/jpamies/worldcup-squad-selector"
)

// Application provides what commands need from the app.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Selector returns the squad selector (lazy-initialized, shared).
	Selector() (squadselector.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide)
	// or "" to auto-detect.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
