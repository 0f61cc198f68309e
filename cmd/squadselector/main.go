// Package main provides the entry point for the squadselector CLI tool.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jpamies/worldcup-squad-selector/cmd/squadselector/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	runErr := application.Execute(ctx, os.Args[1:])
	cancel()

	// The signal context may already be cancelled, so shut down on a fresh one
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger().Error().Err(err).Msg("Shutdown failed")
	}
	shutdownCancel()

	app.ExitOnError(runErr)
}
