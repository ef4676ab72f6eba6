package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	BearerTokenKey contextKey = "bearer_token"
)

// Identity extracts the student identity from a bearer token when one is
// present. Authentication is the campus backend's business; the portal
// never rejects here. It only records who is asking (for logs) and
// keeps the raw Authorization header around so the upstream client can
// forward it.
func Identity(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), BearerTokenKey, authHeader)

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err == nil && token.Valid {
				uid, _ := claims["uid"].(string)
				if uid == "" {
					uid, _ = claims["sub"].(string)
				}
				if uid != "" {
					ctx = context.WithValue(ctx, UserIDKey, uid)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated student id, or "".
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

// GetBearerToken returns the raw Authorization header, or "".
func GetBearerToken(ctx context.Context) string {
	token, _ := ctx.Value(BearerTokenKey).(string)
	return token
}
