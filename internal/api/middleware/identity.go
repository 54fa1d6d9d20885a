package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
)

// IdentityHeader carries the caller identity on every protected request.
const IdentityHeader = "X-User-Email"

// RequireIdentity rejects requests without an identity header with 401 and
// stores the identity in the request context otherwise.
// Preflight OPTIONS requests pass through untouched.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		identity := strings.TrimSpace(r.Header.Get(IdentityHeader))
		if identity == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Missing "+IdentityHeader+" header")
			return
		}

		ctx := shared.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the caller identity from the request context.
func GetIdentity(r *http.Request) (string, bool) {
	return shared.GetIdentity(r.Context())
}
