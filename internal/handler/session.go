package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rishi-ann/redlix-portal/internal/audit"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/metrics"
	"github.com/rishi-ann/redlix-portal/internal/middleware"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/session"
)

// sessions issues and ends the per-role session cookies for the login and
// logout endpoints.
type sessions struct {
	codec *session.Codec
}

func (s sessions) start(w http.ResponseWriter, r *http.Request, role model.Role, subject string) error {
	cookie, _, err := s.codec.Encode(role, subject)
	if err != nil {
		return apperrors.Internal("Failed to create session").WithCause(err)
	}
	http.SetCookie(w, cookie)

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess, Role: role, Subject: subject})
	return nil
}

func (s sessions) failed(r *http.Request, role model.Role, reason string) {
	metrics.LoginsTotal.WithLabelValues(string(role), "failure").Inc()
	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventLoginFailure,
		Role:    role,
		Details: map[string]any{"reason": reason},
	})
}

// end revokes the current token, if any, and always clears the cookie.
func (s sessions) end(w http.ResponseWriter, r *http.Request, role model.Role) {
	if claims, ok := s.codec.Decode(r, role); ok {
		if err := s.codec.Revoke(r.Context(), claims); err != nil {
			log.Warn().Err(err).Str("role", string(role)).Msg("failed to revoke session")
		}
		audit.LogFromRequest(r, audit.Event{Type: audit.EventLogout, Role: role, Subject: claims.Subject})
	}
	http.SetCookie(w, s.codec.Clear(role))
	writeOK(w)
}

// subjectID is the id the gate verified for this request.
func subjectID(r *http.Request) string {
	if p := middleware.GetPrincipal(r.Context()); p != nil {
		return p.ID
	}
	return ""
}
