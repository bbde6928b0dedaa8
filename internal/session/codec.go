package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rishi-ann/redlix-portal/internal/config"
	"github.com/rishi-ann/redlix-portal/internal/model"
)

// AdminSubject is the subject carried by every admin session. There is a
// single admin identity configured through the environment.
const AdminSubject = "true"

// Claims is the signed payload of a session cookie.
type Claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// CookieName returns the per-role session cookie name.
func CookieName(role model.Role) string {
	return string(role) + "_session"
}

// Codec issues and verifies role-tagged session cookies.
type Codec struct {
	secret  []byte
	secure  bool
	ttl     time.Duration
	revoked RevocationStore
	now     func() time.Time
}

func NewCodec(secret string, secure bool, revoked RevocationStore) *Codec {
	return &Codec{
		secret:  []byte(secret),
		secure:  secure,
		ttl:     config.SessionMaxAge,
		revoked: revoked,
		now:     time.Now,
	}
}

func (c *Codec) Encode(role model.Role, subject string) (*http.Cookie, *Claims, error) {
	if !role.Valid() {
		return nil, nil, fmt.Errorf("unknown role %q", role)
	}
	if subject == "" {
		return nil, nil, fmt.Errorf("empty session subject")
	}

	now := c.now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return nil, nil, fmt.Errorf("sign session: %w", err)
	}

	return &http.Cookie{
		Name:     CookieName(role),
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}, claims, nil
}

// Decode returns the claims of the role's session cookie. Absent, tampered,
// expired, revoked or role-mismatched tokens all report false.
func (c *Codec) Decode(r *http.Request, role model.Role) (*Claims, bool) {
	cookie, err := r.Cookie(CookieName(role))
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims, err := c.parse(cookie.Value)
	if err != nil || claims.Role != role || claims.Subject == "" {
		return nil, false
	}

	if c.revoked != nil && claims.ID != "" {
		revoked, err := c.revoked.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			log.Error().Err(err).Str("role", string(role)).Msg("session revocation lookup failed")
			return nil, false
		}
		if revoked {
			return nil, false
		}
	}

	return claims, true
}

// Principals returns every valid session the request carries, in
// admin, developer, client order. Browsers may hold several at once.
func (c *Codec) Principals(r *http.Request) []model.Principal {
	var principals []model.Principal
	for _, role := range model.Roles {
		if claims, ok := c.Decode(r, role); ok {
			principals = append(principals, claims.Principal())
		}
	}
	return principals
}

// Clear returns a cookie that removes the role's session from the browser.
func (c *Codec) Clear(role model.Role) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName(role),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Revoke denylists the token until it would have expired anyway.
func (c *Codec) Revoke(ctx context.Context, claims *Claims) error {
	if c.revoked == nil || claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return c.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (c *Codec) parse(value string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *Claims) Principal() model.Principal {
	return model.Principal{Role: c.Role, ID: c.Subject}
}
