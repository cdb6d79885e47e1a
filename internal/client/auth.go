package client

import (
	"context"
	"net/http"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
)

// Login stores the issued tokens in the session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var t auth.Tokens
	if err := c.do(ctx, http.MethodPost, "/api/login", auth.Credentials{Username: username, Password: password}, &t); err != nil {
		return err
	}
	c.session.Set(t)
	return nil
}

func (c *Client) Register(ctx context.Context, cr auth.Credentials) (*auth.User, error) {
	if ve := cr.Validate(); !ve.OK() {
		return nil, ve
	}
	var u auth.User
	if err := c.do(ctx, http.MethodPost, "/api/register", cr, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Refresh swaps the refresh token for a new pair.
func (c *Client) Refresh(ctx context.Context) error {
	in := struct {
		RefreshToken string `json:"refresh_token"`
	}{c.session.Tokens().RefreshToken}
	var t auth.Tokens
	if err := c.do(ctx, http.MethodPost, "/api/refresh", in, &t); err != nil {
		return err
	}
	c.session.Set(t)
	return nil
}

// Logout revokes the server sessions and always clears the local one.
func (c *Client) Logout(ctx context.Context) error {
	defer c.session.Clear()
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
}

// Whoami returns the username behind the current access token.
func (c *Client) Whoami(ctx context.Context) (string, error) {
	var out struct {
		Username string `json:"username"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/protected", nil, &out); err != nil {
		return "", err
	}
	return out.Username, nil
}
