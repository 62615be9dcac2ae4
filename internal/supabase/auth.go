package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Role         string          `json:"role,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	ConfirmedAt  string          `json:"confirmed_at,omitempty"`
	UserMetadata json.RawMessage `json:"user_metadata,omitempty"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	User         User   `json:"user"`
}

// AuthClient proxies email/password auth to the project's GoTrue endpoints.
type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{Client: c} }

// SignUp registers a user. Depending on the project settings GoTrue answers
// with either the bare user or a session wrapping it; both are accepted.
func (a *AuthClient) SignUp(ctx context.Context, creds Credentials) (User, error) {
	var out struct {
		User
		Nested *User `json:"user"`
	}
	if err := a.do(ctx, http.MethodPost, "/auth/v1/signup", nil, creds, &out); err != nil {
		return User{}, err
	}
	if out.Nested != nil && out.Nested.ID != "" {
		return *out.Nested, nil
	}
	return out.User, nil
}

func (a *AuthClient) SignIn(ctx context.Context, creds Credentials) (Session, error) {
	q := url.Values{"grant_type": {"password"}}
	var s Session
	if err := a.do(ctx, http.MethodPost, "/auth/v1/token", q, creds, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}
