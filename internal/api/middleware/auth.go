package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/example/shopfront/internal/auth"
)

// TokenHeader is the fixed request header carrying the session token
const TokenHeader = "auth-token"

type contextKey string

const identityContextKey contextKey = "identity"

// respondUnauthenticated writes the 401 response shared by all token failures
func respondUnauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message})
}

// Auth verifies the session token and puts the resolved identity in the
// request context. Requests without a valid token never reach the handler.
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get(TokenHeader)
			if tokenString == "" {
				respondUnauthenticated(w, "missing token")
				return
			}

			identity, err := tokens.Verify(tokenString)
			if err != nil {
				respondUnauthenticated(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the verified identity from the request context
func GetIdentity(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityContextKey).(string)
	return identity, ok && identity != ""
}
