package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewProvider(&cfg.AuthCfg{
		ProviderURL: srv.URL,
		AnonKey:     "anon-key",
	}, logger.NewSlogLogger())
}

func TestSignInWithPassword_Success(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at-123",
			"refresh_token": "rt-456",
			"expires_in":    3600,
			"user":          map[string]string{"id": "uid-1", "email": "admin@example.com"},
		})
	})

	session, err := provider.SignInWithPassword(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "at-123", session.AccessToken)
	assert.Equal(t, "rt-456", session.RefreshToken)
	assert.Equal(t, int64(3600), session.ExpiresIn)
	assert.Equal(t, "uid-1", session.User.ID)
}

func TestSignInWithPassword_BadCredentials(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid login credentials"})
	})

	_, err := provider.SignInWithPassword(context.Background(), "admin@example.com", "wrong")
	require.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestRefreshSession_TokenNotFoundByCode(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_code": "refresh_token_not_found"})
	})

	_, err := provider.RefreshSession(context.Background(), "stale-token")
	require.ErrorIs(t, err, e.ErrRefreshTokenNotFound)
}

func TestRefreshSession_TokenNotFoundByMessage(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_description": "Refresh Token Not Found"})
	})

	_, err := provider.RefreshSession(context.Background(), "stale-token")
	require.ErrorIs(t, err, e.ErrRefreshTokenNotFound)
}

func TestSignOut_IgnoresAlreadyInvalidToken(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	})

	require.NoError(t, provider.SignOut(context.Background(), "at-123"))
}

func TestSignOut_ServerErrorIsReturned(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	require.Error(t, provider.SignOut(context.Background(), "at-123"))
}
