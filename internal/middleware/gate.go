package middleware

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/httputil"
	"github.com/rishi-ann/redlix-portal/internal/metrics"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/session"
)

type contextKey string

const ClaimsContextKey contextKey = "sessionClaims"

// SessionDecoder is the part of session.Codec the gate depends on.
type SessionDecoder interface {
	Decode(r *http.Request, role model.Role) (*session.Claims, bool)
}

type domainRoute struct {
	role     model.Role
	prefixes []string
}

var domainRoutes = []domainRoute{
	{model.RoleAdmin, []string{"/api/admin", "/admin"}},
	{model.RoleDeveloper, []string{"/api/developer", "/developer"}},
	{model.RoleClient, []string{"/api/client", "/client"}},
}

var publicPrefixes = []string{
	"/admin/login",
	"/api/admin/login",
	"/developer/login",
	"/developer/signup",
	"/api/developer/login",
	"/api/developer/signup",
	"/client/login",
	"/api/client/login",
}

func GetClaims(ctx context.Context) *session.Claims {
	if claims, ok := ctx.Value(ClaimsContextKey).(*session.Claims); ok {
		return claims
	}
	return nil
}

func GetPrincipal(ctx context.Context) *model.Principal {
	claims := GetClaims(ctx)
	if claims == nil {
		return nil
	}
	p := claims.Principal()
	return &p
}

// WithClaims stores claims the way the gate does. Handlers that authenticate
// outside a gated prefix use it too.
func WithClaims(ctx context.Context, claims *session.Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// Gate guards the role-scoped prefixes. Requests outside them pass through
// untouched; requests inside need a valid session of that role unless the
// path is a login or signup page.
type Gate struct {
	sessions SessionDecoder
}

func NewGate(sessions SessionDecoder) *Gate {
	return &Gate{sessions: sessions}
}

func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		role, ok := ClassifyPath(path)
		if !ok {
			metrics.GateDecisionsTotal.WithLabelValues("none", "passthrough").Inc()
			next.ServeHTTP(w, r)
			return
		}

		if IsPublicPath(path) {
			metrics.GateDecisionsTotal.WithLabelValues(string(role), "public").Inc()
			next.ServeHTTP(w, r)
			return
		}

		claims, ok := g.sessions.Decode(r, role)
		if !ok {
			if strings.HasPrefix(path, "/api") {
				metrics.GateDecisionsTotal.WithLabelValues(string(role), "unauthorized").Inc()
				httputil.WriteError(w, apperrors.Unauthorized("Unauthorized"))
				return
			}
			metrics.GateDecisionsTotal.WithLabelValues(string(role), "redirected").Inc()
			http.Redirect(w, r, loginPath(path, role), http.StatusFound)
			return
		}

		metrics.GateDecisionsTotal.WithLabelValues(string(role), "allowed").Inc()
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// ClassifyPath maps a request path to the role whose session it requires.
func ClassifyPath(path string) (model.Role, bool) {
	for _, d := range domainRoutes {
		for _, prefix := range d.prefixes {
			if strings.HasPrefix(path, prefix) {
				return d.role, true
			}
		}
	}
	return "", false
}

func IsPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loginPath(path string, role model.Role) string {
	uiPrefix := "/" + string(role)
	if strings.HasPrefix(path, uiPrefix) {
		return uiPrefix + "/login"
	}
	return "/"
}
