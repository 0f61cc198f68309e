// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used across commands for squad and alert status.
const (
	// Success marks completed operations, selected players and complete squads.
	Success = "✓"

	// Error marks failures and rejected selections.
	Error = "✗"

	// Warning marks partial failures, such as an import with failed teams.
	Warning = "!"

	// Optional marks skipped items and teams without a squad.
	Optional = "-"

	// Unknown marks unrecognized states.
	Unknown = "?"

	// Info marks informational messages.
	Info = "i"

	// Spinner marks a squad that is started but not complete.
	Spinner = "..."
)
