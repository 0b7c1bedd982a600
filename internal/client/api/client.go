// Package api contains the typed REST binding for the Lovebird backend.
package api

import (
	"context"

	"github.com/nmorozova/lovebird/internal/client/models"
)

// TokenPair is the credential pair issued by register and login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client is the request surface the rest of the application uses.
//
// Every call performs one network round trip and returns either a parsed
// payload or an error: a *APIError when the server answered with a non-2xx
// status, or an error wrapping ErrUnavailable when no response was received.
//
// SetAuthHeader mutates the default Authorization header shared by all
// subsequent calls; it is synchronous and has no network effect. The session
// manager is its only writer.
type Client interface {
	SetAuthHeader(token string)
	Register(ctx context.Context, req RegisterRequest) (*TokenPair, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	FetchProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error)
	FetchInterests(ctx context.Context) (map[string][]string, error)
	SaveInterests(ctx context.Context, interests []string) error
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
}
