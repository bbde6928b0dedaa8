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

type DeveloperHandler struct {
	developerService *service.DeveloperService
	clientService    *service.ClientService
	taskService      *service.TaskService
	reportService    *service.ReportService
	documentService  *service.DocumentService
	sessions         sessions
	loginLimit       func(http.Handler) http.Handler
}

func NewDeveloperHandler(
	developerService *service.DeveloperService,
	clientService *service.ClientService,
	taskService *service.TaskService,
	reportService *service.ReportService,
	documentService *service.DocumentService,
	codec *session.Codec,
	loginLimit func(http.Handler) http.Handler,
) *DeveloperHandler {
	return &DeveloperHandler{
		developerService: developerService,
		clientService:    clientService,
		taskService:      taskService,
		reportService:    reportService,
		documentService:  documentService,
		sessions:         sessions{codec: codec},
		loginLimit:       orPassthrough(loginLimit),
	}
}

// Routes is mounted at /api/developer behind the authorization gate.
func (h *DeveloperHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(h.loginLimit).Post("/signup", h.SignUp)
	r.With(h.loginLimit).Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Get("/profile", h.Profile)
	r.Get("/clients", h.ListClients)
	r.Get("/tasks", h.ListTasks)
	r.Patch("/tasks", h.UpdateTaskStatus)
	r.Get("/reports", h.ListReports)
	r.Post("/reports", h.SubmitReport)
	r.Get("/documents", h.ListDocuments)

	return r
}

func (h *DeveloperHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	dev, err := h.developerService.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventSignup, Role: model.RoleDeveloper, Subject: dev.ID})
	if err := h.sessions.start(w, r, model.RoleDeveloper, dev.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "developer": dev})
}

func (h *DeveloperHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	dev, err := h.developerService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUnauthorized) {
			h.sessions.failed(r, model.RoleDeveloper, "invalid credentials")
		}
		writeError(w, r, err)
		return
	}

	if err := h.sessions.start(w, r, model.RoleDeveloper, dev.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "developer": dev})
}

func (h *DeveloperHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.end(w, r, model.RoleDeveloper)
}

func (h *DeveloperHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.developerService.Profile(r.Context(), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *DeveloperHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.ListForDeveloper(r.Context(), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *DeveloperHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListForDeveloper(r.Context(), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *DeveloperHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req taskStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateStatus(r.Context(), req.TaskID, subjectID(r), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *DeveloperHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.ListForDeveloper(r.Context(), r.URL.Query().Get("clientId"), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *DeveloperHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.reportService.Submit(r.Context(), model.CreateReportParams{
		ClientID:         req.ClientID,
		DeveloperID:      subjectID(r),
		Status:           req.Status,
		Summary:          req.Summary,
		DocumentURL:      req.DocumentURL,
		IssueType:        req.IssueType,
		IssueDescription: req.IssueDescription,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *DeveloperHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListForDeveloper(r.Context(), subjectID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}
