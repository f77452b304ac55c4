package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"style-match-be/internal/dto"
	"style-match-be/internal/entity"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/contract"
)

const (
	PinterestAuthURL = "https://www.pinterest.com/oauth/"
	StateCookieName  = "pinterest_oauth_state"
	StateTTL         = 10 * time.Minute
)

var ErrInvalidState = errors.New("oauth state or code invalid")

type OAuthSettings struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
	AuthURL      string // defaults to PinterestAuthURL
	TokenURL     string
	StateSecret  string // random per process when empty
}

type IOAuthService interface {
	// LoginURL returns the authorize URL and the state to pin in a cookie.
	LoginURL() (string, string, error)
	// HandleCallback checks state against the cookie value, exchanges the
	// code and stores the resulting credential.
	HandleCallback(ctx context.Context, code, state, cookieState string) error
	Status() dto.ConnectionStatusResponse
}

type oauthService struct {
	conf        *oauth2.Config
	scopes      string
	secret      []byte
	credentials contract.CredentialRepository
	httpClient  *http.Client
	logger      logger.ILogger
	now         func() time.Time
}

func NewOAuthService(settings OAuthSettings, credentials contract.CredentialRepository, httpClient *http.Client, log logger.ILogger) IOAuthService {
	authURL := settings.AuthURL
	if authURL == "" {
		authURL = PinterestAuthURL
	}

	secret := []byte(settings.StateSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
	}

	return &oauthService{
		conf: &oauth2.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			RedirectURL:  settings.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  settings.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		// Pinterest expects a comma separated scope list
		scopes:      strings.Join(settings.Scopes, ","),
		secret:      secret,
		credentials: credentials,
		httpClient:  httpClient,
		logger:      log,
		now:         time.Now,
	}
}

func (s *oauthService) LoginURL() (string, string, error) {
	nonce := make([]byte, 24)
	if _, err := rand.Read(nonce); err != nil {
		return "", "", fmt.Errorf("failed to generate state: %w", err)
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        hex.EncodeToString(nonce),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(StateTTL)),
	})
	state, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign state: %w", err)
	}

	url := s.conf.AuthCodeURL(state, oauth2.SetAuthURLParam("scope", s.scopes))
	return url, state, nil
}

func (s *oauthService) verifyState(state, cookieState string) error {
	if state == "" || cookieState == "" || state != cookieState {
		return ErrInvalidState
	}
	_, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return nil
}

func (s *oauthService) HandleCallback(ctx context.Context, code, state, cookieState string) error {
	if code == "" {
		return ErrInvalidState
	}
	if err := s.verifyState(state, cookieState); err != nil {
		s.logger.Warn("OAUTH", "Rejected callback", map[string]interface{}{"error": err.Error()})
		return err
	}

	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}
	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("OAUTH", "Code exchange failed", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("code exchange failed: %w", err)
	}

	cred := &entity.PinterestCredential{
		AccessToken: token.AccessToken,
		ExpiresIn:   expiresIn(token, s.now()),
		CreatedAt:   s.now(),
	}
	if scope, ok := token.Extra("scope").(string); ok {
		cred.Scope = scope
	}
	s.credentials.Save(cred)

	s.logger.Info("OAUTH", "Pinterest connected", map[string]interface{}{
		"scope":     cred.Scope,
		"expiresIn": cred.ExpiresIn,
	})
	return nil
}

func expiresIn(token *oauth2.Token, now time.Time) int64 {
	switch v := token.Extra("expires_in").(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	}
	if !token.Expiry.IsZero() {
		return int64(token.Expiry.Sub(now).Seconds())
	}
	return 0
}

func (s *oauthService) Status() dto.ConnectionStatusResponse {
	cred, ok := s.credentials.Active()
	if !ok || cred.AccessToken == "" {
		return dto.ConnectionStatusResponse{}
	}

	res := dto.ConnectionStatusResponse{Connected: true}
	if cred.Scope != "" {
		scope := cred.Scope
		res.Scope = &scope
	}
	if cred.ExpiresIn > 0 {
		expires := cred.ExpiresIn
		res.ExpiresIn = &expires
	}
	return res
}
