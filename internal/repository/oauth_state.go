package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

type OAuthStateRepository interface {
	Create(ctx context.Context, params model.CreateOAuthStateParams) (*model.OAuthState, error)
	// Consume deletes and returns an unexpired state. A second call with the
	// same hash returns nil.
	Consume(ctx context.Context, stateHash string) (*model.OAuthState, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type oauthStateRepo struct {
	db *sqlx.DB
}

func NewOAuthStateRepository(db *sqlx.DB) OAuthStateRepository {
	return &oauthStateRepo{db: db}
}

func (r *oauthStateRepo) Create(ctx context.Context, params model.CreateOAuthStateParams) (*model.OAuthState, error) {
	var state model.OAuthState
	err := r.db.GetContext(ctx, &state, `
		INSERT INTO oauth_states (state_hash, redirect_to, expires_at)
		VALUES ($1, $2, $3)
		RETURNING *
	`, params.StateHash, params.RedirectTo, params.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *oauthStateRepo) Consume(ctx context.Context, stateHash string) (*model.OAuthState, error) {
	var state model.OAuthState
	err := r.db.GetContext(ctx, &state, `
		DELETE FROM oauth_states
		WHERE state_hash = $1 AND expires_at > NOW()
		RETURNING *
	`, stateHash)
	return HandleNotFound(&state, err)
}

func (r *oauthStateRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM oauth_states WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
