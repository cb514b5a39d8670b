package middleware

import (
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// CurrentUserID extracts the authenticated user's id from the JWT claims.
func CurrentUserID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["user_id"].(string)
	return id, ok
}

// CurrentRole extracts the authenticated user's role from the JWT claims.
func CurrentRole(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// AdminOnly requires the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := CurrentRole(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin requires the manager or admin role.
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := CurrentRole(r)
		if !ok || (role != user.RoleManager && role != user.RoleAdmin) {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
