package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-ann/redlix-portal/internal/audit"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/service"
	"github.com/rishi-ann/redlix-portal/internal/session"
)

// DocumentHandler serves stored document bytes to any signed-in role. The
// path sits outside the gated prefixes; entitlement is checked per document.
type DocumentHandler struct {
	documentService *service.DocumentService
	codec           *session.Codec
}

func NewDocumentHandler(documentService *service.DocumentService, codec *session.Codec) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, codec: codec}
}

func (h *DocumentHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.Get)
	return r
}

var filenameEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", "")

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	callers := h.codec.Principals(r)

	doc, granted, err := h.documentService.Retrieve(r.Context(), id, callers)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeForbidden) {
			audit.LogFromRequest(r, audit.Event{
				Type:    audit.EventDocumentDenied,
				Role:    callers[0].Role,
				Subject: callers[0].ID,
				Details: map[string]any{"documentId": id, "sessions": sessionLabels(callers)},
			})
		}
		writeError(w, r, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventDocumentAccess,
		Role:    granted.Role,
		Subject: granted.ID,
		Details: map[string]any{"documentId": doc.ID, "clientId": doc.ClientID},
	})

	h.writeContent(w, doc)
}

func sessionLabels(principals []model.Principal) []string {
	labels := make([]string, len(principals))
	for i, p := range principals {
		labels[i] = string(p.Role) + ":" + p.ID
	}
	return labels
}

func (h *DocumentHandler) writeContent(w http.ResponseWriter, doc *model.DocumentContent) {
	header := w.Header()
	header.Set("Content-Type", doc.MimeType)
	header.Set("Content-Disposition", `inline; filename="`+filenameEscaper.Replace(doc.Title)+`"`)
	header.Set("Content-Length", strconv.Itoa(len(doc.Content)))
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("Cache-Control", "private, no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Content)
}
