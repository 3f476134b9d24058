package reaperhttp

import (
	"context"
	"net/http"

	jwt "github.com/golang-jwt/jwt/v5"
)

type claimsKey struct{}

// ClaimsFromContext returns the validated admin token claims, if any.
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(jwt.MapClaims)
	return claims, ok
}

// requireAdmin validates the Bearer token (HS256, host-issued shared secret), requires
// the admin role claim, and stores claims in the request context.
//
// Endpoints are served unauthenticated when no secret is configured; that mode is meant
// for hosts that mount the handler behind their own admin-session middleware.
func (s *Service) requireAdmin(next http.Handler) http.Handler {
	if len(s.secret) == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r.Header.Get("Authorization"))
		if tokenStr == "" {
			unauthorized(w, "missing_token")
			return
		}
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims,
			func(*jwt.Token) (any, error) { return s.secret, nil },
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			unauthorized(w, "invalid_token")
			return
		}
		if !hasRole(claims, s.adminRole) {
			forbidden(w, "admin_required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

func hasRole(claims jwt.MapClaims, slug string) bool {
	raw, _ := claims["roles"].([]any)
	for _, v := range raw {
		if s, ok := v.(string); ok && s == slug {
			return true
		}
	}
	return false
}
