package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rishi-ann/redlix-portal/internal/authn"
	"github.com/rishi-ann/redlix-portal/internal/config"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

const defaultOAuthRedirect = "/developer"

var ErrInvalidState = errors.New("invalid or expired OAuth state")

// OAuthService drives developer login through an OpenID Connect provider.
// The provider is optional; without it every call reports NotConfigured.
type OAuthService struct {
	provider   authn.FederatedAuthenticator
	stateRepo  repository.OAuthStateRepository
	developers *DeveloperService
	now        func() time.Time
}

func NewOAuthService(
	provider authn.FederatedAuthenticator,
	stateRepo repository.OAuthStateRepository,
	developers *DeveloperService,
) *OAuthService {
	return &OAuthService{
		provider:   provider,
		stateRepo:  stateRepo,
		developers: developers,
		now:        time.Now,
	}
}

func (s *OAuthService) Enabled() bool {
	return s.provider != nil
}

// GetAuthURL records a single-use state and returns the provider URL to
// redirect the browser to.
func (s *OAuthService) GetAuthURL(ctx context.Context, next string) (string, error) {
	if !s.Enabled() {
		return "", apperrors.NotConfigured("Federated login")
	}

	state, err := util.GenerateToken()
	if err != nil {
		return "", apperrors.Internal("Failed to generate state").WithCause(err)
	}

	_, err = s.stateRepo.Create(ctx, model.CreateOAuthStateParams{
		StateHash:  util.HashToken(state),
		RedirectTo: SafeRedirect(next),
		ExpiresAt:  s.now().Add(config.OAuthStateTTL),
	})
	if err != nil {
		return "", apperrors.Database(err)
	}

	return s.provider.AuthCodeURL(state), nil
}

// HandleCallback consumes the state, exchanges the code and upserts the
// developer. It returns the developer and where to send the browser.
func (s *OAuthService) HandleCallback(ctx context.Context, code, state string) (*model.Developer, string, error) {
	if !s.Enabled() {
		return nil, "", apperrors.NotConfigured("Federated login")
	}
	if code == "" || state == "" {
		return nil, "", ErrInvalidState
	}

	stored, err := s.stateRepo.Consume(ctx, util.HashToken(state))
	if err != nil {
		return nil, "", apperrors.Database(err)
	}
	if stored == nil {
		return nil, "", ErrInvalidState
	}

	identity, err := s.provider.Exchange(ctx, code)
	if err != nil {
		log.Warn().Err(err).Msg("oidc code exchange failed")
		return nil, "", apperrors.External("identity provider", err)
	}

	dev, err := s.developers.Sync(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	return dev, stored.RedirectTo, nil
}

// SafeRedirect keeps post-login redirects on this site.
func SafeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return defaultOAuthRedirect
	}
	return next
}
