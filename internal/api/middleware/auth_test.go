package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/shopfront/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService("test-secret-key", 0)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := newTestTokenService()
	mw := Auth(tokens)

	token, err := tokens.Issue("user@example.com")
	require.NoError(t, err)

	var capturedIdentity string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if ok {
			capturedIdentity = identity
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/getcart", nil)
	req.Header.Set(TokenHeader, token)
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", capturedIdentity)
}

func TestAuth_NoToken(t *testing.T) {
	mw := Auth(newTestTokenService())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/addtocart", nil)
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerCalled)
	assert.Contains(t, rec.Body.String(), "missing token")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestAuth_InvalidToken(t *testing.T) {
	mw := Auth(newTestTokenService())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", mustIssue(t, auth.NewTokenService("other-secret", 0), "user@example.com")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/addtocart", nil)
			req.Header.Set(TokenHeader, tt.token)
			rec := httptest.NewRecorder()

			mw(handler).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid token")
		})
	}
}

func TestGetIdentity_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	identity, ok := GetIdentity(req.Context())
	assert.False(t, ok)
	assert.Empty(t, identity)
}

func mustIssue(t *testing.T, tokens *auth.TokenService, identity string) string {
	t.Helper()
	token, err := tokens.Issue(identity)
	require.NoError(t, err)
	return token
}
