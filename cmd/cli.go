package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/session"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/config"
)

var errNotLoggedIn = errors.New("not logged in, run login first")

// cliSession is the client side object graph: the services act for the user
// of the persisted session. Tracking stays in memory.
type cliSession struct {
	cfg   *config.Config
	store *session.Store
	svc   *services
}

func newCLISession() (*cliSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := configureLogging(cfg); err != nil {
		return nil, err
	}
	quietLogging(os.Stderr)

	client := newBackendClient(cfg)
	store := session.NewStore(session.NewTOMLFile(cfg.Session.Path), client)
	if err := store.Load(); err != nil {
		return nil, err
	}

	return &cliSession{
		cfg:   cfg,
		store: store,
		svc:   newServices(cfg, client, store, nil),
	}, nil
}

// authedContext attaches the session token, failing early when there is no
// usable session.
func (s *cliSession) authedContext(ctx context.Context) (context.Context, error) {
	if !s.store.Authenticated(time.Now()) {
		return nil, errNotLoggedIn
	}
	return s.store.Context(ctx), nil
}
