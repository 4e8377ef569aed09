package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/user"
)

// Actor is the authenticated identity acting on a request. It is always
// passed explicitly via context claims; nothing reads ambient global state.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

// ActorFromContext extracts the actor from the verified JWT claims placed in
// the request context by the jwtauth middleware.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, fmt.Errorf("%w: %v", ErrNoActor, err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Actor{}, fmt.Errorf("%w: user_id claim is missing", ErrNoActor)
	}

	actor := Actor{UserID: userID}

	if employeeID, ok := claims["employee_id"].(string); ok {
		actor.EmployeeID = employeeID
	}
	if role, ok := claims["role"].(string); ok {
		actor.Role = user.Role(role)
	}

	return actor, nil
}

// RequireEmployee returns the actor and fails when it is not linked to an
// employee record (clock actions need one).
func RequireEmployee(ctx context.Context) (Actor, error) {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return Actor{}, err
	}
	if actor.EmployeeID == "" {
		return Actor{}, ErrNoEmployee
	}
	return actor, nil
}
