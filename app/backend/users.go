package backend

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/dto"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
)

type AuthResult struct {
	Token string
	User  *entity.User
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var resp dto.AuthResponse
	if err := c.post(ctx, "/auth/login", &dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("backend: login response carried no token")
	}
	return &AuthResult{Token: resp.Token, User: mapper.UserFromDTO(&resp.User)}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

func (c *Client) Profile(ctx context.Context) (*entity.User, error) {
	if c.token(ctx) == "" {
		return nil, ErrNoToken
	}
	var resp dto.UserResponse
	if err := c.get(ctx, "/users/profile", &resp); err != nil {
		return nil, err
	}
	return mapper.UserFromDTO(&resp), nil
}
