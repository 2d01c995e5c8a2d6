package httpx

import "net/http"

// RequireRole gates a route to callers whose session token carries the given
// role. This guards the HTTP surface only; the directory core re-checks the
// active session's role for admin reads, since route guards alone are
// bypassable by direct callers.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromCtx(r.Context()) != role {
				writeBearerRoleError(w, role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for an insufficient role, with the service's
// standard JSON error body alongside the challenge header.
func writeBearerRoleError(w http.ResponseWriter, role string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+role+`"`)
	WriteJSON(w, http.StatusForbidden, map[string]string{
		"error":             "insufficient_role",
		"error_description": "this operation requires the " + role + " role",
	})
}
