// Package session holds the authenticated user and token for the current
// process. It is the only place either value is read from.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type ProfileFetcher interface {
	Profile(ctx context.Context) (*entity.User, error)
}

type Store struct {
	persister Persister
	profiles  ProfileFetcher
	logger    logrus.FieldLogger

	mu    sync.RWMutex
	token string
	user  *entity.User
}

func NewStore(persister Persister, profiles ProfileFetcher) *Store {
	return &Store{
		persister: persister,
		profiles:  profiles,
		logger:    logrus.WithField("module", "session"),
	}
}

// Load restores the persisted state. A missing persister leaves the store empty.
func (s *Store) Load() error {
	if s.persister == nil {
		return nil
	}
	state, err := s.persister.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.token = state.Token
	s.user = cloneUser(state.User)
	s.mu.Unlock()
	return nil
}

func (s *Store) SetAuth(token string, user *entity.User) error {
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.user = cloneUser(user)
	s.mu.Unlock()
	return s.save()
}

func (s *Store) SetUser(user *entity.User) error {
	s.mu.Lock()
	s.user = cloneUser(user)
	s.mu.Unlock()
	return s.save()
}

func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if s.persister == nil {
		return nil
	}
	return s.persister.Clear()
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the cached user, or nil.
func (s *Store) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// Plan is the cached user's tier. Without a user it is free.
func (s *Store) Plan() entity.PlanTier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || !s.user.Plan.Valid() {
		return entity.PlanFree
	}
	return s.user.Plan
}

// Authenticated reports whether a token is present and its exp claim, when
// set, is after now.
func (s *Store) Authenticated(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}
	exp, ok := TokenExpiry(token)
	if !ok {
		return true
	}
	return now.Before(exp)
}

// Context attaches the session token to ctx for backend calls.
func (s *Store) Context(ctx context.Context) context.Context {
	return backend.WithToken(ctx, s.Token())
}

// CurrentUser returns the cached user, fetching the profile when none is cached.
func (s *Store) CurrentUser(ctx context.Context) (*entity.User, error) {
	if user := s.User(); user != nil {
		return user, nil
	}
	return s.Refresh(ctx)
}

// Refresh always refetches the profile and replaces the cached user.
func (s *Store) Refresh(ctx context.Context) (*entity.User, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	if s.profiles == nil {
		return nil, errors.New("session: no profile fetcher configured")
	}
	user, err := s.profiles.Profile(backend.WithToken(ctx, token))
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			s.logger.Info("session_token_rejected")
		}
		return nil, err
	}
	if err := s.SetUser(user); err != nil {
		s.logger.WithError(err).Warn("session_persist_failed")
	}
	return cloneUser(user), nil
}

func (s *Store) save() error {
	if s.persister == nil {
		return nil
	}
	s.mu.RLock()
	state := &State{Token: s.token, User: cloneUser(s.user)}
	s.mu.RUnlock()
	return s.persister.Save(state)
}

// TokenExpiry reads the exp claim without verifying the signature. The
// backend is the one that verifies tokens.
func TokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	copied := *user
	return &copied
}
