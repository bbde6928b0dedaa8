package audit

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

type EventType string

const (
	EventLoginSuccess     EventType = "login_success"
	EventLoginFailure     EventType = "login_failure"
	EventLogout           EventType = "logout"
	EventSignup           EventType = "signup"
	EventClientCreate     EventType = "client_create"
	EventClientRename     EventType = "client_rename"
	EventClientDelete     EventType = "client_delete"
	EventDocumentUpload   EventType = "document_upload"
	EventDocumentAccess   EventType = "document_access"
	EventDocumentDenied   EventType = "document_denied"
	EventOAuthStateReject EventType = "oauth_state_rejected"
)

// Event is one security-relevant action. Role and Subject identify who acted,
// when known.
type Event struct {
	Type      EventType
	Role      model.Role
	Subject   string
	IP        string
	UserAgent string
	RequestID string
	Details   map[string]any
}

func Log(ctx context.Context, event Event) {
	logger := log.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		l := log.Logger
		logger = &l
	}

	e := logger.Info().
		Str("audit", "security").
		Str("event_type", string(event.Type)).
		Time("timestamp", time.Now())

	if event.Role != "" {
		e = e.Str("role", string(event.Role))
	}
	if event.Subject != "" {
		e = e.Str("subject", event.Subject)
	}
	if event.IP != "" {
		e = e.Str("ip", event.IP)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", event.UserAgent)
	}
	if event.RequestID != "" {
		e = e.Str("request_id", event.RequestID)
	}

	for k, v := range event.Details {
		e = addField(e, k, v)
	}
	e.Msg("security audit event")
}

func addField(e *zerolog.Event, key string, value any) *zerolog.Event {
	switch v := value.(type) {
	case string:
		return e.Str(key, v)
	case int:
		return e.Int(key, v)
	case int64:
		return e.Int64(key, v)
	case bool:
		return e.Bool(key, v)
	default:
		return e.Interface(key, v)
	}
}

// LogFromRequest fills in the caller's address, user agent and request id.
// RemoteAddr is trusted as chi's RealIP middleware has already resolved it.
func LogFromRequest(r *http.Request, event Event) {
	event.IP = r.RemoteAddr
	event.UserAgent = r.UserAgent()
	event.RequestID = middleware.GetReqID(r.Context())
	Log(r.Context(), event)
}
