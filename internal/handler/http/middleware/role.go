package middleware

import (
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/user"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

// AdminOnly admits only admin actors.
func AdminOnly(next http.Handler) http.Handler {
	return requireRole(next, func(role user.Role) bool {
		return role == user.RoleAdmin
	}, "Admin privilege required")
}

// ManagerOrAdmin admits manager-or-above actors.
func ManagerOrAdmin(next http.Handler) http.Handler {
	return requireRole(next, func(role user.Role) bool {
		return role == user.RoleManager || role == user.RoleAdmin
	}, "Manager privilege required")
}

func requireRole(next http.Handler, allowed func(user.Role) bool, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := auth.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !allowed(actor.Role) {
			response.Forbidden(w, message)
			return
		}

		next.ServeHTTP(w, r)
	})
}
