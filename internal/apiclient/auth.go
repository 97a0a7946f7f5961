package apiclient

import (
	"context"
	"net/http"

	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/models/dto"
)

// Paths of the singleton resources.
const (
	PathSchoolMe  = "/schools/me"
	PathAccountMe = "/auth/me"
)

// Login exchanges credentials for a bearer token and the account it belongs to.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.Do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout tells the API the token is no longer in use.
func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// School returns the /schools/me singleton.
func (c *Client) School() *Singleton[models.School] {
	return Me[models.School](c, PathSchoolMe)
}

// Account returns the /auth/me singleton.
func (c *Client) Account() *Singleton[models.AccountProfile] {
	return Me[models.AccountProfile](c, PathAccountMe)
}
