package authn

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/rishi-ann/redlix-portal/internal/config"
)

// OIDCAuthenticator runs the authorization code flow against an OpenID
// Connect provider.
type OIDCAuthenticator struct {
	*oidc.Provider
	oauth2.Config
}

func NewOIDCAuthenticator(ctx context.Context, cfg *config.Config) (*OIDCAuthenticator, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, fmt.Errorf("discover oidc provider: %w", err)
	}

	return &OIDCAuthenticator{
		Provider: provider,
		Config: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func (a *OIDCAuthenticator) AuthCodeURL(state string) string {
	return a.Config.AuthCodeURL(state)
}

// Exchange trades the callback code for tokens and verifies the ID token.
func (a *OIDCAuthenticator) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := a.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("no id_token field in oauth2 token")
	}

	idToken, err := a.Verifier(&oidc.Config{ClientID: a.ClientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode id token claims: %w", err)
	}
	if claims.Email == "" {
		return nil, errors.New("id token carries no email")
	}

	return &Identity{ID: idToken.Subject, Email: normalizeEmail(claims.Email), Provider: ProviderOIDC}, nil
}
