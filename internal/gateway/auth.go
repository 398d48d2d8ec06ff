package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

// Login exchanges credentials for a bearer token. On success the token
// is persisted into the session store before it is returned, so callers
// never write the credential themselves.
func (g *Gateway) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	var token models.Token
	if err := g.call(ctx, "login", http.MethodPost, "/auth/login", creds, &token); err != nil {
		return nil, err
	}

	if token.AccessToken != "" {
		if err := g.session.Save(token.AccessToken); err != nil {
			return nil, fmt.Errorf("failed to persist credential: %w", err)
		}
	}

	return &token, nil
}

func (g *Gateway) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	var user models.User
	if err := g.call(ctx, "register", http.MethodPost, "/auth/register", reg, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *Gateway) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := g.call(ctx, "current_user", http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
