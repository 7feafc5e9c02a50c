package repository

import "context"

// AuthRemote exchanges credentials for a bearer token
type AuthRemote interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) error
}
