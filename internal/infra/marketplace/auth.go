package marketplace

import (
	"context"
	"net/http"

	"wedding-console/internal/domain/session"
	"wedding-console/internal/domain/user"
	"wedding-console/internal/infra"
)

// Signup creates the account and returns the user with the marketplace token
// issued in the Set-Cookie header.
func (c *Client) Signup(ctx context.Context, reg *user.Registration) (session.User, string, error) {
	var out userWire
	resp, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/users/signup",
		body: signupWire{
			Username: reg.Username().Value(),
			Email:    reg.Email().Value(),
			Password: reg.Password().Value(),
		},
	}, &out)
	if err != nil {
		return session.User{}, "", err
	}

	token, err := tokenFrom(resp)
	if err != nil {
		return session.User{}, "", err
	}
	return out.toDomain(), token, nil
}

func (c *Client) Login(ctx context.Context, creds user.Credentials) (session.User, string, error) {
	var out userWire
	resp, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/users/login",
		body: loginWire{
			Email:    creds.Email().Value(),
			Password: creds.Password().Value(),
		},
	}, &out)
	if err != nil {
		return session.User{}, "", err
	}

	token, err := tokenFrom(resp)
	if err != nil {
		return session.User{}, "", err
	}
	return out.toDomain(), token, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/users/logout", token: token}, nil)
	return err
}

// Me validates the token and returns the current user record.
func (c *Client) Me(ctx context.Context, token string) (session.User, error) {
	var out userWire
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/users/me", token: token}, &out); err != nil {
		return session.User{}, err
	}
	return out.toDomain(), nil
}

func tokenFrom(resp *http.Response) (string, error) {
	for _, ck := range resp.Cookies() {
		if ck.Name == TokenCookieName && ck.Value != "" {
			return ck.Value, nil
		}
	}
	return "", infra.WrapRepoErr("marketplace did not issue an access token", nil, infra.KindUpstreamFailure)
}
