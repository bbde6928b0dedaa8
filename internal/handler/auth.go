package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rishi-ann/redlix-portal/internal/audit"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/service"
	"github.com/rishi-ann/redlix-portal/internal/session"
)

const developerLoginPage = "/developer/login"

// AuthHandler runs the federated developer login.
type AuthHandler struct {
	oauthService *service.OAuthService
	sessions     sessions
}

func NewAuthHandler(oauthService *service.OAuthService, codec *session.Codec) *AuthHandler {
	return &AuthHandler{oauthService: oauthService, sessions: sessions{codec: codec}}
}

// Routes is mounted at /api/auth.
func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/login", h.Login)
	r.Get("/callback", h.Callback)
	return r
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.oauthService.GetAuthURL(r.Context(), r.URL.Query().Get("next"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if providerErr := q.Get("error"); providerErr != "" {
		log.Warn().Str("error", providerErr).Msg("identity provider returned an error")
		h.sessions.failed(r, model.RoleDeveloper, "provider denied")
		redirectWithError(w, r, "oauth_denied")
		return
	}

	dev, next, err := h.oauthService.HandleCallback(r.Context(), q.Get("code"), q.Get("state"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidState) {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventOAuthStateReject, Role: model.RoleDeveloper})
			redirectWithError(w, r, "invalid_state")
			return
		}
		log.Error().Err(err).Msg("oauth callback failed")
		h.sessions.failed(r, model.RoleDeveloper, "oauth failed")
		redirectWithError(w, r, "oauth_failed")
		return
	}

	if err := h.sessions.start(w, r, model.RoleDeveloper, dev.ID); err != nil {
		log.Error().Err(err).Msg("failed to start developer session")
		redirectWithError(w, r, "oauth_failed")
		return
	}
	http.Redirect(w, r, next, http.StatusFound)
}

func redirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, developerLoginPage+"?error="+url.QueryEscape(code), http.StatusFound)
}
