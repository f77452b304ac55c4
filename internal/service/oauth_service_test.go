package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/memory"
)

func newOAuthFixture(t *testing.T, tokenHandler http.HandlerFunc) (*oauthService, *memory.CredentialRepository) {
	t.Helper()
	srv := httptest.NewServer(tokenHandler)
	t.Cleanup(srv.Close)

	creds := memory.NewCredentialRepository()
	svc := NewOAuthService(OAuthSettings{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8787/auth/pinterest/callback",
		Scopes:       []string{"boards:read", "pins:read"},
		TokenURL:     srv.URL + "/v5/oauth/token",
		StateSecret:  "state-secret",
	}, creds, srv.Client(), logger.NewNopLogger())
	return svc.(*oauthService), creds
}

func tokenEndpoint(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client", user)
		assert.Equal(t, "secret", pass)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"pina_abc","token_type":"bearer","expires_in":2592000,"scope":"boards:read,pins:read"}`))
	}
}

func TestOAuth_LoginURL(t *testing.T) {
	svc, _ := newOAuthFixture(t, tokenEndpoint(t))

	raw, state, err := svc.LoginURL()
	require.NoError(t, err)
	require.NotEmpty(t, state)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.pinterest.com", u.Host)
	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "boards:read,pins:read", q.Get("scope"))
	assert.Equal(t, state, q.Get("state"))
}

func TestOAuth_CallbackStoresCredential(t *testing.T) {
	svc, creds := newOAuthFixture(t, tokenEndpoint(t))
	_, state, err := svc.LoginURL()
	require.NoError(t, err)

	require.NoError(t, svc.HandleCallback(context.Background(), "the-code", state, state))

	cred, ok := creds.Active()
	require.True(t, ok)
	assert.Equal(t, "pina_abc", cred.AccessToken)
	assert.Equal(t, "boards:read,pins:read", cred.Scope)
	assert.Equal(t, int64(2592000), cred.ExpiresIn)

	status := svc.Status()
	assert.True(t, status.Connected)
	require.NotNil(t, status.Scope)
	assert.Equal(t, "boards:read,pins:read", *status.Scope)
}

func TestOAuth_CallbackRejectsBadState(t *testing.T) {
	svc, creds := newOAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("token endpoint must not be called")
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, state, err := svc.LoginURL()
	require.NoError(t, err)
	_, other, err := svc.LoginURL()
	require.NoError(t, err)

	assert.ErrorIs(t, svc.HandleCallback(context.Background(), "code", state, other), ErrInvalidState)
	assert.ErrorIs(t, svc.HandleCallback(context.Background(), "code", state, ""), ErrInvalidState)
	assert.ErrorIs(t, svc.HandleCallback(context.Background(), "", state, state), ErrInvalidState)
	assert.ErrorIs(t, svc.HandleCallback(context.Background(), "code", "forged", "forged"), ErrInvalidState)

	_, ok := creds.Active()
	assert.False(t, ok)
}

func TestOAuth_CallbackRejectsExpiredState(t *testing.T) {
	svc, _ := newOAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("token endpoint must not be called")
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, state, err := svc.LoginURL()
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(StateTTL + time.Minute) }
	assert.ErrorIs(t, svc.HandleCallback(context.Background(), "code", state, state), ErrInvalidState)
}

func TestOAuth_TokenExchangeFailure(t *testing.T) {
	svc, creds := newOAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	})
	_, state, err := svc.LoginURL()
	require.NoError(t, err)

	err = svc.HandleCallback(context.Background(), "code", state, state)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidState)

	_, ok := creds.Active()
	assert.False(t, ok)
	assert.False(t, svc.Status().Connected)
}
