package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrNoActor            = errors.New("no authenticated actor in context")
	ErrNoEmployee         = errors.New("account is not linked to an employee")
)
