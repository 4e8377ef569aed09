package user

import "context"

type UserRepository interface {
	// GetByEmail returns the user for a login email.
	// Returns ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID returns one user. Returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id string) (User, error)
}
