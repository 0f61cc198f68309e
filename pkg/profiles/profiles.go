// Package profiles multiplexes several independent World Cups ("profiles")
// over one flat kv.Store. Each profile owns one saved roster per team; one
// profile is current at any time and the default profile always exists.
//
// Keys are shared with the web app and must stay bit-compatible:
//
//	wc2026_profiles          JSON map of id to profile metadata
//	wc2026_current_profile   id of the current profile
//	wc2026_<id>_<team>       JSON roster of a team in a profile
//	wc2026_squad_<team>      legacy roster from before profiles, migrated on Initialize
package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
)

// Profile is the metadata of one profile.
type Profile struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	CreatedAt utc.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt utc.Time `json:"updatedAt" yaml:"updatedAt"`
}

// IsDefault reports whether this is the undeletable default profile.
func (p Profile) IsDefault() bool {
	return p.ID == constants.DefaultProfileID
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the time source for profile and squad timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the profile id generator. Generated ids must be
// non-empty and must not contain '_'.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Store is the profile store. It holds no state of its own; every call reads
// and writes through the kv.Store.
type Store struct {
	kv     kv.Store
	logger *zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// New creates a profile store over a kv.Store.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:     store,
		logger: logging.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() utc.Time {
	return utc.New(s.now())
}

func (s *Store) defaultProfiles() map[string]Profile {
	now := s.timestamp()
	return map[string]Profile{
		constants.DefaultProfileID: {
			ID:        constants.DefaultProfileID,
			Name:      constants.DefaultProfileName,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// load reads the metadata map, (re)creating the default set when the key is
// missing or unreadable and restoring the default profile when it is gone.
func (s *Store) load(ctx context.Context) (map[string]Profile, error) {
	raw, ok, err := s.kv.Get(ctx, constants.ProfilesKey)
	if err != nil {
		return nil, errors.WrapResource("load", "profiles", "", err)
	}

	var profiles map[string]Profile
	if ok {
		if err := json.Unmarshal([]byte(raw), &profiles); err != nil {
			s.logger.Warn().Err(err).Msg("Profile metadata is unreadable, resetting to default profile")
			profiles = nil
		}
	}

	if profiles == nil {
		profiles = s.defaultProfiles()
		return profiles, s.save(ctx, profiles)
	}

	for id, p := range profiles {
		if p.ID != id {
			p.ID = id
			profiles[id] = p
		}
	}

	if _, ok := profiles[constants.DefaultProfileID]; !ok {
		s.logger.Warn().Msg("Default profile missing, restoring it")
		profiles[constants.DefaultProfileID] = s.defaultProfiles()[constants.DefaultProfileID]
		return profiles, s.save(ctx, profiles)
	}
	return profiles, nil
}

func (s *Store) save(ctx context.Context, profiles map[string]Profile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return errors.WrapResource("save", "profiles", "", err)
	}
	if err := s.kv.Set(ctx, constants.ProfilesKey, string(data)); err != nil {
		return errors.WrapResource("save", "profiles", "", err)
	}
	return nil
}

// currentID resolves the current pointer against profiles, resetting it to
// the default profile when it is missing or dangling.
func (s *Store) currentID(ctx context.Context, profiles map[string]Profile) (string, error) {
	id, ok, err := s.kv.Get(ctx, constants.CurrentProfileKey)
	if err != nil {
		return "", errors.WrapResource("load", "current profile", "", err)
	}
	if ok {
		if _, exists := profiles[id]; exists {
			return id, nil
		}
		s.logger.Debug().Str("profile_id", id).Msg("Current profile not found, falling back to default")
	}
	if err := s.kv.Set(ctx, constants.CurrentProfileKey, constants.DefaultProfileID); err != nil {
		return "", errors.WrapResource("save", "current profile", constants.DefaultProfileID, err)
	}
	return constants.DefaultProfileID, nil
}

// Initialize ensures the default profile and the current pointer exist and
// migrates legacy rosters into the default profile. It is idempotent.
func (s *Store) Initialize(ctx context.Context) error {
	profiles, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, err := s.currentID(ctx, profiles); err != nil {
		return err
	}
	return s.migrate(ctx)
}

// List returns every profile keyed by id.
func (s *Store) List(ctx context.Context) (map[string]Profile, error) {
	return s.load(ctx)
}

// Sorted returns profiles with the default profile first, then by creation time.
func Sorted(profiles map[string]Profile) []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Profile) int {
		switch {
		case a.IsDefault():
			return -1
		case b.IsDefault():
			return 1
		}
		if c := a.CreatedAt.Time.Compare(b.CreatedAt.Time); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// CurrentID returns the id of the current profile.
func (s *Store) CurrentID(ctx context.Context) (string, error) {
	profiles, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return s.currentID(ctx, profiles)
}

// Current returns the metadata of the current profile.
func (s *Store) Current(ctx context.Context) (Profile, error) {
	profiles, err := s.load(ctx)
	if err != nil {
		return Profile{}, err
	}
	id, err := s.currentID(ctx, profiles)
	if err != nil {
		return Profile{}, err
	}
	return profiles[id], nil
}

// Get returns the metadata of one profile.
func (s *Store) Get(ctx context.Context, id string) (Profile, bool, error) {
	profiles, err := s.load(ctx)
	if err != nil {
		return Profile{}, false, err
	}
	p, ok := profiles[id]
	return p, ok, nil
}

// SetCurrent switches the current profile. It returns false, changing
// nothing, when id is unknown.
func (s *Store) SetCurrent(ctx context.Context, id string) (bool, error) {
	profiles, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := profiles[id]; !ok {
		return false, nil
	}
	if err := s.kv.Set(ctx, constants.CurrentProfileKey, id); err != nil {
		return false, errors.WrapResource("save", "current profile", id, err)
	}
	return true, nil
}

func validID(id string) bool {
	return id != "" && !strings.Contains(id, "_")
}

func (s *Store) generateID(profiles map[string]Profile) (string, error) {
	for range constants.MaxIDAttempts {
		id := s.newID()
		if !validID(id) {
			continue
		}
		if _, taken := profiles[id]; !taken {
			return id, nil
		}
		s.logger.Debug().Str("profile_id", id).Msg("Profile id collision, regenerating")
	}
	return "", errors.NewResourceError("create", "profile", "",
		fmt.Errorf("no free profile id after %d attempts", constants.MaxIDAttempts))
}

// Create adds a profile and returns its id. An empty name becomes
// "Mundial N" where N is the profile count after creation.
func (s *Store) Create(ctx context.Context, name string, switchTo bool) (string, error) {
	profiles, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	id, err := s.generateID(profiles)
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("%s %d", constants.NewProfileNamePrefix, len(profiles)+1)
	}

	now := s.timestamp()
	profiles[id] = Profile{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.save(ctx, profiles); err != nil {
		return "", err
	}
	s.logger.Info().Str("profile_id", id).Str("name", name).Msg("Profile created")

	if switchTo {
		if _, err := s.SetCurrent(ctx, id); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Rename changes a profile's name and bumps its update time. It returns
// false when id is unknown.
func (s *Store) Rename(ctx context.Context, id, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.NewValidationError("name", name, "profile name cannot be empty")
	}
	profiles, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	p, ok := profiles[id]
	if !ok {
		return false, nil
	}
	p.Name = name
	p.UpdatedAt = s.timestamp()
	profiles[id] = p
	if err := s.save(ctx, profiles); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a profile and every roster stored under it. The default
// profile cannot be deleted. Deleting the current profile makes the default
// profile current.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	if id == constants.DefaultProfileID {
		s.logger.Warn().Msg("Cannot delete default profile")
		return false, nil
	}
	profiles, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := profiles[id]; !ok {
		return false, nil
	}

	keys, err := s.squadKeys(ctx, id)
	if err != nil {
		return false, err
	}
	for _, key := range keys {
		if err := s.kv.Delete(ctx, key); err != nil {
			return false, errors.WrapResource("delete", "squad", key, err)
		}
	}

	delete(profiles, id)
	if err := s.save(ctx, profiles); err != nil {
		return false, err
	}

	current, ok, err := s.kv.Get(ctx, constants.CurrentProfileKey)
	if err != nil {
		return false, errors.WrapResource("load", "current profile", "", err)
	}
	if !ok || current == id {
		if err := s.kv.Set(ctx, constants.CurrentProfileKey, constants.DefaultProfileID); err != nil {
			return false, errors.WrapResource("save", "current profile", constants.DefaultProfileID, err)
		}
	}

	s.logger.Info().Str("profile_id", id).Int("squads", len(keys)).Msg("Profile deleted")
	return true, nil
}

// Duplicate creates a new profile (not made current) holding verbatim copies
// of every roster of sourceID. An empty name becomes "<source name> (copia)".
// It returns false when sourceID is unknown.
func (s *Store) Duplicate(ctx context.Context, sourceID, name string) (string, bool, error) {
	profiles, err := s.load(ctx)
	if err != nil {
		return "", false, err
	}
	source, ok := profiles[sourceID]
	if !ok {
		return "", false, nil
	}
	if strings.TrimSpace(name) == "" {
		name = source.Name + constants.CopySuffix
	}

	id, err := s.Create(ctx, name, false)
	if err != nil {
		return "", false, err
	}

	keys, err := s.squadKeys(ctx, sourceID)
	if err != nil {
		return id, false, err
	}
	for _, key := range keys {
		data, ok, err := s.kv.Get(ctx, key)
		if err != nil {
			return id, false, errors.WrapResource("load", "squad", key, err)
		}
		if !ok {
			continue
		}
		team := strings.TrimPrefix(key, squadPrefix(sourceID))
		if err := s.kv.Set(ctx, SquadKey(id, team), data); err != nil {
			return id, false, errors.WrapResource("save", "squad", team, err)
		}
	}

	s.logger.Info().
		Str("source_id", sourceID).
		Str("profile_id", id).
		Int("squads", len(keys)).
		Msg("Profile duplicated")
	return id, true, nil
}
