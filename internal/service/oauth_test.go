package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rishi-ann/redlix-portal/internal/authn"
	"github.com/rishi-ann/redlix-portal/internal/config"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

func TestOAuthService_Disabled(t *testing.T) {
	svc := NewOAuthService(nil, new(mockOAuthStateRepo), nil)
	assert.False(t, svc.Enabled())

	_, err := svc.GetAuthURL(context.Background(), "/developer")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotConfigured))

	_, _, err = svc.HandleCallback(context.Background(), "code", "state")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotConfigured))
}

func TestOAuthService_GetAuthURL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	provider := new(mockFederatedAuth)
	states := new(mockOAuthStateRepo)

	var issued string
	provider.On("AuthCodeURL", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { issued = args.String(0) }).
		Return("https://idp.example.com/auth?state=x")
	states.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateOAuthStateParams) bool {
		return p.RedirectTo == "/developer/tasks" && p.ExpiresAt.Equal(now.Add(config.OAuthStateTTL))
	})).Return(&model.OAuthState{}, nil)

	svc := NewOAuthService(provider, states, nil)
	svc.now = func() time.Time { return now }

	url, err := svc.GetAuthURL(context.Background(), "/developer/tasks")
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example.com/auth?state=x", url)

	// Only the hash of the state handed to the provider is stored.
	require.Len(t, issued, 64)
	params := states.Calls[0].Arguments.Get(1).(model.CreateOAuthStateParams)
	assert.Equal(t, util.HashToken(issued), params.StateHash)
	assert.NotEqual(t, issued, params.StateHash)
}

func TestOAuthService_HandleCallback(t *testing.T) {
	ctx := context.Background()
	state := "raw-state"

	t.Run("unknown or reused state", func(t *testing.T) {
		provider := new(mockFederatedAuth)
		states := new(mockOAuthStateRepo)
		states.On("Consume", mock.Anything, util.HashToken(state)).Return(nil, nil)

		_, _, err := NewOAuthService(provider, states, nil).HandleCallback(ctx, "code", state)
		assert.ErrorIs(t, err, ErrInvalidState)
		provider.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
	})

	t.Run("missing parameters", func(t *testing.T) {
		states := new(mockOAuthStateRepo)
		_, _, err := NewOAuthService(new(mockFederatedAuth), states, nil).HandleCallback(ctx, "", state)
		assert.ErrorIs(t, err, ErrInvalidState)
		states.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})

	t.Run("exchange failure", func(t *testing.T) {
		provider := new(mockFederatedAuth)
		states := new(mockOAuthStateRepo)
		states.On("Consume", mock.Anything, mock.Anything).Return(&model.OAuthState{RedirectTo: "/developer"}, nil)
		provider.On("Exchange", mock.Anything, "code").Return(nil, errors.New("boom"))

		_, _, err := NewOAuthService(provider, states, nil).HandleCallback(ctx, "code", state)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeExternal))
	})

	t.Run("success syncs developer", func(t *testing.T) {
		provider := new(mockFederatedAuth)
		states := new(mockOAuthStateRepo)
		devRepo := new(mockDeveloperRepo)
		states.On("Consume", mock.Anything, util.HashToken(state)).
			Return(&model.OAuthState{RedirectTo: "/developer/reports"}, nil)
		provider.On("Exchange", mock.Anything, "code").
			Return(&authn.Identity{ID: "oidc-sub", Email: "dev@example.com", Provider: authn.ProviderOIDC}, nil)
		devRepo.On("FindByIdentity", mock.Anything, authn.ProviderOIDC, "oidc-sub").Return(nil, nil)
		devRepo.On("FindByEmail", mock.Anything, "dev@example.com").Return(nil, nil)
		devRepo.On("Upsert", mock.Anything, "oidc-sub", "dev@example.com").
			Return(&model.Developer{ID: "oidc-sub", Email: "dev@example.com"}, nil)
		devRepo.On("LinkIdentity", mock.Anything, "oidc-sub", authn.ProviderOIDC, "oidc-sub").Return(nil)

		svc := NewOAuthService(provider, states, NewDeveloperService(devRepo, nil))
		dev, next, err := svc.HandleCallback(ctx, "code", state)
		require.NoError(t, err)
		assert.Equal(t, "oidc-sub", dev.ID)
		assert.Equal(t, "/developer/reports", next)
	})
}

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/developer"},
		{"/developer/tasks", "/developer/tasks"},
		{"https://evil.example.com", "/developer"},
		{"//evil.example.com", "/developer"},
		{"/\\evil.example.com", "/developer"},
		{"developer", "/developer"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeRedirect(tt.in))
		})
	}
}
