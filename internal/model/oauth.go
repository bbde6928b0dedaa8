package model

import (
	"time"
)

// OAuthState is a pending federated login. The state token itself is only
// ever stored hashed.
type OAuthState struct {
	StateHash  string    `db:"state_hash"`
	RedirectTo string    `db:"redirect_to"`
	ExpiresAt  time.Time `db:"expires_at"`
	CreatedAt  time.Time `db:"created_at"`
}

type CreateOAuthStateParams struct {
	StateHash  string
	RedirectTo string
	ExpiresAt  time.Time
}
