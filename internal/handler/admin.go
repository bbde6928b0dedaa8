package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-ann/redlix-portal/internal/audit"
	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/service"
	"github.com/rishi-ann/redlix-portal/internal/session"
)

type AdminHandler struct {
	adminService     *service.AdminService
	clientService    *service.ClientService
	developerService *service.DeveloperService
	taskService      *service.TaskService
	reportService    *service.ReportService
	inquiryService   *service.InquiryService
	documentService  *service.DocumentService
	sessions         sessions
	loginLimit       func(http.Handler) http.Handler
}

func NewAdminHandler(
	adminService *service.AdminService,
	clientService *service.ClientService,
	developerService *service.DeveloperService,
	taskService *service.TaskService,
	reportService *service.ReportService,
	inquiryService *service.InquiryService,
	documentService *service.DocumentService,
	codec *session.Codec,
	loginLimit func(http.Handler) http.Handler,
) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		clientService:    clientService,
		developerService: developerService,
		taskService:      taskService,
		reportService:    reportService,
		inquiryService:   inquiryService,
		documentService:  documentService,
		sessions:         sessions{codec: codec},
		loginLimit:       orPassthrough(loginLimit),
	}
}

// Routes is mounted at /api/admin behind the authorization gate.
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(h.loginLimit).Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	// Clients
	r.Get("/clients", h.ListClients)
	r.Post("/clients", h.CreateClient)
	r.Put("/clients", h.UpdateClient)
	r.Put("/clients/{id}", h.UpdateClientByID)
	r.Delete("/clients/{id}", h.DeleteClient)

	r.Get("/developers", h.ListDevelopers)
	r.Post("/tasks/assign", h.AssignTask)

	// Inbox
	r.Get("/requests", h.ListRequests)
	r.Patch("/requests", h.UpdateRequestStatus)
	r.Get("/contact", h.ListContacts)
	r.Patch("/contact", h.UpdateContactStatus)

	r.Get("/reports", h.ListReports)
	r.Get("/documents", h.ListDocuments)

	return r
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.adminService.Configured() {
		writeError(w, r, apperrors.NotConfigured("Admin login"))
		return
	}

	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if !h.adminService.Login(req.Email, req.Password) {
		h.sessions.failed(r, model.RoleAdmin, "invalid credentials")
		writeError(w, r, apperrors.Unauthorized("Invalid credentials"))
		return
	}

	if err := h.sessions.start(w, r, model.RoleAdmin, session.AdminSubject); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.end(w, r, model.RoleAdmin)
}

func (h *AdminHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *AdminHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.clientService.Create(r.Context(), req.params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventClientCreate,
		Role:    model.RoleAdmin,
		Details: map[string]any{"clientId": client.ID},
	})
	writeJSON(w, http.StatusOK, client)
}

// UpdateClient takes the target id from the body.
func (h *AdminHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req updateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.ID == "" {
		writeError(w, r, apperrors.MissingRequired("id"))
		return
	}
	h.updateClient(w, r, req.ID, &req)
}

func (h *AdminHandler) UpdateClientByID(w http.ResponseWriter, r *http.Request) {
	var req updateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.updateClient(w, r, chi.URLParam(r, "id"), &req)
}

func (h *AdminHandler) updateClient(w http.ResponseWriter, r *http.Request, id string, req *updateClientRequest) {
	client, err := h.clientService.Update(r.Context(), id, req.params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if client.ID != id {
		audit.LogFromRequest(r, audit.Event{
			Type:    audit.EventClientRename,
			Role:    model.RoleAdmin,
			Details: map[string]any{"from": id, "to": client.ID},
		})
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *AdminHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.clientService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventClientDelete,
		Role:    model.RoleAdmin,
		Details: map[string]any{"clientId": id},
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListDevelopers(w http.ResponseWriter, r *http.Request) {
	devs, err := h.developerService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, devs)
}

func (h *AdminHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	var req assignTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.taskService.Assign(r.Context(), model.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		DeveloperID: req.DeveloperID,
		ClientID:    req.ClientID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.inquiryService.ListRequests(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *AdminHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	var req requestStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.inquiryService.UpdateRequestStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.inquiryService.ListContacts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inquiries)
}

func (h *AdminHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	var req inquiryStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.inquiryService.UpdateContactStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *AdminHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func orPassthrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}
