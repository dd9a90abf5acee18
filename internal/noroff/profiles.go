package noroff

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/internal/models"
)

func profilePath(name string) string {
	return "/holidaze/profiles/" + url.PathEscape(name)
}

func (c *Client) GetProfile(ctx context.Context, token, name string) (*models.Profile, error) {
	return one[models.Profile](ctx, c, http.MethodGet, profilePath(name), token, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, token, name string, upd models.ProfileUpdate) (*models.Profile, error) {
	return one[models.Profile](ctx, c, http.MethodPut, profilePath(name), token, upd)
}
