package httpclient

import (
	"context"
	"net/http"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
)

var _ repository.AuthRemote = (*Client)(nil)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	in := call{
		op:     entity.OpLogin,
		method: http.MethodPost,
		path:   "/api/auth/login",
		public: true,
		body:   credentials{Email: email, Password: password},
	}
	if err := c.do(ctx, in, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an account
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, call{
		op:     entity.OpRegister,
		method: http.MethodPost,
		path:   "/api/auth/register",
		public: true,
		body:   credentials{Email: email, Password: password},
	}, nil)
}
