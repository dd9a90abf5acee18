package noroff

import (
	"context"
	"net/http"

	"holidaze/internal/models"
)

func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.Profile, error) {
	return one[models.Profile](ctx, c, http.MethodPost, "/auth/register", "", reg)
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	return one[models.AuthResult](ctx, c, http.MethodPost, "/auth/login", "", creds)
}

// DeleteProfile removes the account the token belongs to.
func (c *Client) DeleteProfile(ctx context.Context, token string) error {
	return c.exec(ctx, http.MethodDelete, "/auth/profile", token, nil)
}
