// Package constants provides shared constants used throughout the squad selector.
// This includes roster composition limits, persistent key names, timeouts and
// file permissions that must stay consistent between the library and the CLI.
package constants

import "time"

// Roster composition limits
const (
	// MaxSquadSize is the maximum number of players in a squad
	MaxSquadSize = 26

	// MaxGoalkeepers is the maximum number of goalkeepers in a squad
	MaxGoalkeepers = 3

	// MaxOutfield is the maximum number of non-goalkeepers in a squad
	MaxOutfield = 23
)

// Persistent store keys. These are shared with stores written by the web app
// and must not change.
const (
	// KeyPrefix prefixes every key owned by the selector
	KeyPrefix = "wc2026_"

	// ProfilesKey holds the JSON profile metadata map
	ProfilesKey = KeyPrefix + "profiles"

	// CurrentProfileKey holds the id of the current profile
	CurrentProfileKey = KeyPrefix + "current_profile"

	// LegacySquadPrefix prefixes single-profile squads from before profiles existed
	LegacySquadPrefix = KeyPrefix + "squad_"
)

// Default profile
const (
	// DefaultProfileID is the id of the auto-created, undeletable profile
	DefaultProfileID = "default"

	// DefaultProfileName is the display name of the default profile
	DefaultProfileName = "Mi Mundial"

	// NewProfileNamePrefix is used to name profiles created without a name
	NewProfileNamePrefix = "Mundial"

	// CopySuffix is appended to a duplicated profile's name when none is given
	CopySuffix = " (copia)"

	// MaxIDAttempts bounds profile id regeneration on collision
	MaxIDAttempts = 8
)

// Timeout constants
const (
	// DefaultHTTPTimeout is the timeout for fetching a remote catalog file
	DefaultHTTPTimeout = 30 * time.Second

	// StoreOpenTimeout bounds waiting for the bolt file lock
	StoreOpenTimeout = 1 * time.Second

	// CatalogCacheTTL is how long a fetched catalog stays fresh
	CatalogCacheTTL = 24 * time.Hour
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for store files (rw-------)
	SecureFilePermissions = 0600
)

// Catalog limits
const (
	// CatalogCacheSize is the number of team catalogs kept in memory
	CatalogCacheSize = 64

	// DefaultCatalogRate is the number of remote catalog requests per second
	DefaultCatalogRate = 5

	// MaxCatalogBytes caps the size of a catalog file read from disk or network
	MaxCatalogBytes = 8 << 20
)

// Share link parameters
const (
	// SquadParam is the query parameter carrying a single-squad token
	SquadParam = "squad"

	// AllSquadsParam is the query parameter carrying an all-squads token
	AllSquadsParam = "data"
)
