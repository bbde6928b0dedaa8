package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/rishi-ann/redlix-portal/internal/authn"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
)

type DeveloperService struct {
	developers repository.DeveloperRepository
	auth       authn.PasswordAuthenticator
}

func NewDeveloperService(developers repository.DeveloperRepository, auth authn.PasswordAuthenticator) *DeveloperService {
	return &DeveloperService{developers: developers, auth: auth}
}

func (s *DeveloperService) SignUp(ctx context.Context, email, password string) (*model.Developer, error) {
	identity, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.Sync(ctx, identity)
}

func (s *DeveloperService) SignIn(ctx context.Context, email, password string) (*model.Developer, error) {
	identity, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.Sync(ctx, identity)
}

// Sync upserts the developer record for an authenticated identity.
// Federated identities are linked to an existing developer with the same
// email, so one person keeps a single account across sign-in methods.
func (s *DeveloperService) Sync(ctx context.Context, identity *authn.Identity) (*model.Developer, error) {
	if identity == nil || identity.ID == "" || identity.Email == "" {
		return nil, apperrors.ValidationError("Incomplete identity")
	}
	if identity.Provider != "" {
		return s.syncFederated(ctx, identity)
	}
	return s.upsert(ctx, identity.ID, identity.Email)
}

func (s *DeveloperService) syncFederated(ctx context.Context, identity *authn.Identity) (*model.Developer, error) {
	linked, err := s.developers.FindByIdentity(ctx, identity.Provider, identity.ID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if linked != nil {
		return s.upsert(ctx, linked.ID, identity.Email)
	}

	developerID := identity.ID
	existing, err := s.developers.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing != nil {
		developerID = existing.ID
	}

	dev, err := s.upsert(ctx, developerID, identity.Email)
	if err != nil {
		return nil, err
	}
	if err := s.developers.LinkIdentity(ctx, dev.ID, identity.Provider, identity.ID); err != nil {
		return nil, apperrors.Database(err)
	}
	if existing != nil {
		log.Info().
			Str("developerId", dev.ID).
			Str("provider", identity.Provider).
			Msg("federated identity linked to existing developer")
	}
	return dev, nil
}

func (s *DeveloperService) upsert(ctx context.Context, id, email string) (*model.Developer, error) {
	dev, err := s.developers.Upsert(ctx, id, email)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.AlreadyExists("Developer with this email")
		}
		return nil, apperrors.Database(err)
	}
	return dev, nil
}

func (s *DeveloperService) Profile(ctx context.Context, id string) (*model.DeveloperProfile, error) {
	profile, err := s.developers.Profile(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("Developer")
	}
	return profile, nil
}

func (s *DeveloperService) List(ctx context.Context) ([]*model.Developer, error) {
	devs, err := s.developers.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return devs, nil
}
