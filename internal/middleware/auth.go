package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/batcheasycook/batchcook-api/internal/auth"
)

type contextKey string

const claimsContextKey contextKey = "authClaims"

// BearerAuth middleware validates the Authorization bearer token and
// stores the verified claims in the request context.
func BearerAuth(tokens *auth.TokenManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Unauthorized: token required", http.StatusUnauthorized)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "Unauthorized: malformed authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly middleware rejects requests whose token does not carry the
// admin role. It must run after BearerAuth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != auth.RoleAdmin {
			http.Error(w, "Forbidden: admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext extracts the verified token claims stored by BearerAuth.
func ClaimsFromContext(ctx context.Context) (*auth.SignedDetails, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.SignedDetails)
	return claims, ok
}
