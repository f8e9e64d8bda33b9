package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type key int

const UserIDKey key = 0

// JWTMiddleware guards a route subtree with bearer-token checks. A
// missing or malformed Authorization header yields 401, a token that
// fails signature or expiry checks yields 403. On success the bound
// user id is attached to the request context and downstream handlers
// use it to scope every store query.
func JWTMiddleware(jwtService *JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				reject(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || parts[0] != "Bearer" {
				reject(w, http.StatusUnauthorized, "Authorization header must be a bearer token")
				return
			}

			userID, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				reject(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserIDFromContext(ctx context.Context) int {
	userID, ok := ctx.Value(UserIDKey).(int)
	if !ok {
		return 0
	}
	return userID
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
	})
}
