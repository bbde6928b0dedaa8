// Package authn verifies developer identities, either against the local
// credential store or through an OpenID Connect provider.
package authn

import "context"

// ProviderOIDC tags identities issued by the OpenID Connect provider.
const ProviderOIDC = "oidc"

// Identity is an authenticated developer as reported by an authenticator.
// Provider is empty for local credentials, where ID is the developer id.
// Federated identities carry the provider subject in ID instead.
type Identity struct {
	ID       string
	Email    string
	Provider string
}

type PasswordAuthenticator interface {
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Identity, error)
}

type FederatedAuthenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Identity, error)
}
