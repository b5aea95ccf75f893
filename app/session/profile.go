package session

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

// ProfileProvider serves the gateway, where every request carries its own
// token on the context. Nothing is cached between requests.
type ProfileProvider struct {
	profiles ProfileFetcher
}

func NewProfileProvider(profiles ProfileFetcher) *ProfileProvider {
	return &ProfileProvider{profiles: profiles}
}

func (p *ProfileProvider) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := p.profiles.Profile(ctx)
	if errors.Is(err, backend.ErrNoToken) {
		return nil, ErrNotAuthenticated
	}
	return user, err
}

func (p *ProfileProvider) Refresh(ctx context.Context) (*entity.User, error) {
	return p.CurrentUser(ctx)
}
