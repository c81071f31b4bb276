package middleware

import (
	"context"
	"net/http"
	"strings"

	h "aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaims returns a context with the token claims set. Used by auth middleware.
func SetClaims(ctx context.Context, claims *domain.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated token claims from the context, if present.
func ClaimsFromContext(ctx context.Context) (*domain.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*domain.TokenClaims)
	return claims, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// claims in the request context. If the token is missing or invalid, it
// responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetClaims(r.Context(), claims))
			next(w, r)
		}
	}
}

// RequireAdmin returns a wrapper that rejects requests whose claims do not
// carry the admin role. It must run after RequireAuth; a request without
// claims in context gets 401.
func RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
				return
			}
			if claims.Role != domain.RoleAdmin {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "admin access required")
				return
			}
			next(w, r)
		}
	}
}
