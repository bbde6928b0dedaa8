package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/service"
)

// PublicHandler serves the unauthenticated landing-page forms.
type PublicHandler struct {
	inquiryService *service.InquiryService
}

func NewPublicHandler(inquiryService *service.InquiryService) *PublicHandler {
	return &PublicHandler{inquiryService: inquiryService}
}

func (h *PublicHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/contact", h.SubmitContact)
	r.Post("/requests", h.SubmitRequest)
	return r
}

func (h *PublicHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	inquiry, err := h.inquiryService.SubmitContact(r.Context(), model.CreateInquiryParams{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": inquiry.ID})
}

func (h *PublicHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req projectRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.inquiryService.SubmitRequest(r.Context(), model.CreateProjectRequestParams{
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ProjectTitle: req.ProjectTitle,
		Description:  req.Description,
		Budget:       req.Budget,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": created.ID})
}
