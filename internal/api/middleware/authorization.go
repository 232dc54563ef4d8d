package middleware

import (
	"context"
	"net/http"

	"guest-portal-backend/internal/auth"
	"guest-portal-backend/internal/model"
)

type identityContextKey struct{}

// IdentityFromRequest returns the identity that RequireRole stored on the
// request, if any.
func IdentityFromRequest(r *http.Request) (auth.Identity, bool) {
	identity, ok := r.Context().Value(identityContextKey{}).(auth.Identity)
	return identity, ok
}

// RequireRole parses the bearer token and rejects requests whose role is not
// in the allowed set. The parsed identity is attached to the request context
// for handlers that want to know who is acting. Tenant scope is carried but
// not enforced anywhere.
func RequireRole(roles ...model.Role) Middleware {
	allowed := map[model.Role]bool{}
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, err := auth.IdentityFromAuthorizationHeader(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if len(allowed) > 0 && !allowed[identity.Role] {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next(w, r.WithContext(ctx))
		}
	}
}

var RequireAdmin = RequireRole(model.RoleSuperAdmin, model.RoleTenantAdmin)
var RequireAnyStaff = RequireRole(model.RoleSuperAdmin, model.RoleTenantAdmin, model.RoleTenantViewer)
