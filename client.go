// Package squadselector is the application layer of the World Cup squad
// selector. It ties the roster engine, the profile store, the player catalog
// and the share codec together behind a single Client.
//
// Selection state lives in an explicit Session opened per team; nothing is
// kept in package globals.
//
// Example usage:
//
//	sel, err := squadselector.New(
//	    squadselector.WithCatalog(catalog),
//	    squadselector.WithStore(store),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := sel.Open(ctx, "spain")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.Select(1001); err != nil {
//	    fmt.Println(err) // e.g. "Maximum 3 goalkeepers allowed!"
//	}
//	if err := s.Save(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := sel.ExportAll(ctx)
package squadselector

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
	"github.com/jpamies/worldcup-squad-selector/pkg/players"
	"github.com/jpamies/worldcup-squad-selector/pkg/profiles"
)

// Client is the squad selector.
type Client interface {

	// Sessions opens per-team selection sessions
	Sessions

	// Sharing exports squads as tokens and links
	Sharing

	// Importer loads shared tokens into a profile
	Importer

	// Overviewer summarizes every squad of the current profile
	Overviewer

	// Hooks provides access to event callback registration
	Hooks

	// Profiles returns the profile store
	Profiles() *profiles.Store

	// Initialize prepares storage: default profile, current pointer and
	// legacy migration. Other methods call it as needed.
	Initialize(ctx context.Context) error
}

// client is the internal implementation of the Client interface.
type client struct {
	options  *options
	catalog  players.Catalog
	profiles *profiles.Store
	logger   *zerolog.Logger
	hooks    *hooks

	// initialization runs once per client, on first use
	initMu sync.Mutex
	ready  bool
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}
	if o.catalog == nil {
		return nil, &errors.ConfigError{Component: "client", Message: "a player catalog is required"}
	}
	if o.store == nil {
		o.store = kv.NewMemory()
	}

	popts := []profiles.Option{
		profiles.WithLogger(o.logger),
		profiles.WithClock(o.now),
	}
	if o.newID != nil {
		popts = append(popts, profiles.WithIDGenerator(o.newID))
	}

	return &client{
		options:  o,
		catalog:  o.catalog,
		profiles: profiles.New(o.store, popts...),
		logger:   o.logger,
		hooks:    newHooks(),
	}, nil
}

// Profiles returns the profile store. It is initialized on the first
// client call that touches storage.
func (c *client) Profiles() *profiles.Store {
	return c.profiles
}

// Initialize implements Client.
func (c *client) Initialize(ctx context.Context) error {
	return c.init(ctx)
}

// init runs the profile store initialization (legacy migration and default
// profile) once per client.
func (c *client) init(ctx context.Context) error {
	c.initMu.Lock()
	defer c.initMu.Unlock()
	if c.ready {
		return nil
	}
	if err := c.profiles.Initialize(ctx); err != nil {
		return err
	}
	c.ready = true
	return nil
}

// fetch returns the catalog of a team, wrapping collaborator failures.
func (c *client) fetch(ctx context.Context, team string) ([]players.Player, error) {
	ps, err := c.catalog.Players(ctx, team)
	if err != nil {
		if errors.IsCatalogUnavailable(err) {
			return nil, err
		}
		return nil, errors.WrapCatalog(team, "", err)
	}
	return ps, nil
}

// lookupTeam validates an internal team code.
func lookupTeam(team string) (players.Team, error) {
	t, ok := players.LookupTeam(team)
	if !ok {
		return players.Team{}, errors.NewNotFoundError("team", team)
	}
	return t, nil
}
