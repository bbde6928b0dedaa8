package authn

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/repository"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

const minPasswordLength = 8

// dummyHash keeps SignIn timing flat when the email is unknown.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := util.HashPassword("not-a-real-password")
	return hash
})

type LocalAuthenticator struct {
	creds repository.CredentialRepository
}

func NewLocalAuthenticator(creds repository.CredentialRepository) *LocalAuthenticator {
	return &LocalAuthenticator{creds: creds}
}

func (a *LocalAuthenticator) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.MissingRequired("email")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.InvalidInput("password", "must be at least 8 characters")
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password").WithCause(err)
	}

	id := uuid.NewString()
	if _, err := a.creds.Register(ctx, id, email, hash); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.AlreadyExists("Account")
		}
		return nil, apperrors.Database(err)
	}

	return &Identity{ID: id, Email: email}, nil
}

func (a *LocalAuthenticator) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	cred, err := a.creds.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, apperrors.Database(err)
	}

	if cred == nil {
		util.CheckPasswordHash(password, dummyHash())
		return nil, apperrors.Unauthorized("Invalid credentials")
	}
	if !util.CheckPasswordHash(password, cred.PasswordHash) {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	return &Identity{ID: cred.DeveloperID, Email: cred.Email}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
