package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authproviders "github.com/Michel-2503/Kopfrechnen/pkg/auth/providers"
	"github.com/stretchr/testify/assert"
)

type fakeAuthProvider struct{}

func (fakeAuthProvider) VerifyToken(ctx context.Context, idToken string) (*authproviders.TokenClaims, error) {
	if idToken != "good" {
		return nil, errors.New("bad token")
	}
	return &authproviders.TokenClaims{UID: "user-1"}, nil
}

func ownerEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(OwnerFromContext(r.Context())))
	})
}

func TestNewAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		provider   authproviders.AuthProvider
		header     string
		wantStatus int
		wantOwner  string
	}{
		{name: "disabled", provider: nil, wantStatus: http.StatusOK},
		{name: "missing token", provider: fakeAuthProvider{}, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", provider: fakeAuthProvider{}, header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "valid token", provider: fakeAuthProvider{}, header: "Bearer good", wantStatus: http.StatusOK, wantOwner: "user-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/sessions/x", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			NewAuthMiddleware(tt.provider)(ownerEcho()).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantOwner, w.Body.String())
			}
		})
	}
}

func TestNewCORSMiddleware(t *testing.T) {
	handler := NewCORSMiddleware("https://quiz.example")(ownerEcho())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/sessions", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://quiz.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewLoggingMiddleware(t *testing.T) {
	handler := NewLoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw, ok := w.(*statusWriter)
		assert.True(t, ok)
		http.Error(w, "nope", http.StatusTeapot)
		assert.Equal(t, http.StatusTeapot, sw.status)
		assert.Positive(t, sw.bytes)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}
