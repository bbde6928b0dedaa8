package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-ann/redlix-portal/internal/audit"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/service"
	"github.com/rishi-ann/redlix-portal/internal/session"
)

type ClientHandler struct {
	clientService   *service.ClientService
	taskService     *service.TaskService
	documentService *service.DocumentService
	sessions        sessions
	loginLimit      func(http.Handler) http.Handler
}

func NewClientHandler(
	clientService *service.ClientService,
	taskService *service.TaskService,
	documentService *service.DocumentService,
	codec *session.Codec,
	loginLimit func(http.Handler) http.Handler,
) *ClientHandler {
	return &ClientHandler{
		clientService:   clientService,
		taskService:     taskService,
		documentService: documentService,
		sessions:        sessions{codec: codec},
		loginLimit:      orPassthrough(loginLimit),
	}
}

// Routes is mounted at /api/client behind the authorization gate.
func (h *ClientHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(h.loginLimit).Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Get("/data", h.Data)
	r.Get("/tasks", h.ListTasks)
	r.Get("/documents", h.ListDocuments)
	r.Post("/documents", h.UploadDocument)

	return r
}

// Login signs a client in by id alone.
func (h *ClientHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req clientLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	id := strings.TrimSpace(req.ClientID)

	exists, err := h.clientService.Exists(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !exists {
		h.sessions.failed(r, model.RoleClient, "unknown client id")
		writeError(w, r, apperrors.Unauthorized("Invalid Client ID"))
		return
	}

	if err := h.sessions.start(w, r, model.RoleClient, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func (h *ClientHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.end(w, r, model.RoleClient)
}

func (h *ClientHandler) Data(w http.ResponseWriter, r *http.Request) {
	client, err := h.clientService.Get(r.Context(), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListForClient(r.Context(), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *ClientHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListForClient(r.Context(), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *ClientHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	var req documentUploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	owner := subjectID(r)
	doc, err := h.documentService.Store(r.Context(), service.StoreDocumentParams{
		ClientID:      owner,
		Title:         req.Title,
		MimeType:      req.Type,
		ContentBase64: req.Content,
		Size:          int64(req.Size),
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventDocumentUpload,
		Role:    model.RoleClient,
		Subject: owner,
		Details: map[string]any{"documentId": doc.ID, "size": doc.Size},
	})
	writeJSON(w, http.StatusOK, doc)
}
