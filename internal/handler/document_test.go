package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/service"
	"github.com/rishi-ann/redlix-portal/internal/session"
)

const testDocumentID = "0b6f3f0e-8d7a-4c4e-9e0f-5d2a1c3b4e5f"

var pdfBytes = []byte("%PDF-1.4\n\x00\x01\x02binary\xff\xfe")

func newDocumentTestServer(codec *session.Codec) http.Handler {
	docs := &mockDocumentRepo{
		findContentFunc: func(ctx context.Context, id string) (*model.DocumentContent, error) {
			if id != testDocumentID {
				return nil, nil
			}
			return &model.DocumentContent{
				Document: model.Document{
					ID:       testDocumentID,
					ClientID: "RED-1111",
					Title:    `Q1 "final".pdf`,
					MimeType: "application/pdf",
					Size:     int64(len(pdfBytes)),
				},
				Content: pdfBytes,
			}, nil
		},
	}
	clients := &mockClientRepo{
		isAssignedFunc: func(ctx context.Context, clientID, developerID string) (bool, error) {
			return clientID == "RED-1111" && developerID == "dev-1", nil
		},
	}
	svc := service.NewDocumentService(docs, clients, nil, 1<<20)
	return gatedRouter(codec, map[string]http.Handler{
		"/api/documents": NewDocumentHandler(svc, codec).Routes(),
	})
}

func TestDocumentHandler_Get(t *testing.T) {
	codec := newTestCodec()
	server := newDocumentTestServer(codec)

	tests := []struct {
		name     string
		role     model.Role
		subject  string
		wantCode int
	}{
		{"no session", "", "", http.StatusUnauthorized},
		{"owning client", model.RoleClient, "RED-1111", http.StatusOK},
		{"other client", model.RoleClient, "RED-2222", http.StatusForbidden},
		{"assigned developer", model.RoleDeveloper, "dev-1", http.StatusOK},
		{"unassigned developer", model.RoleDeveloper, "dev-2", http.StatusForbidden},
		{"admin", model.RoleAdmin, session.AdminSubject, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/documents/"+testDocumentID, nil)
			if tt.role != "" {
				req.AddCookie(loginCookie(t, codec, tt.role, tt.subject))
			}
			rec := httptest.NewRecorder()

			server.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, pdfBytes, rec.Body.Bytes())
			}
		})
	}
}

func TestDocumentHandler_Headers(t *testing.T) {
	codec := newTestCodec()
	server := newDocumentTestServer(codec)

	req := httptest.NewRequest(http.MethodGet, "/api/documents/"+testDocumentID, nil)
	req.AddCookie(loginCookie(t, codec, model.RoleClient, "RED-1111"))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="Q1 \"final\".pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "20", rec.Header().Get("Content-Length"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestDocumentHandler_NotFound(t *testing.T) {
	codec := newTestCodec()
	server := newDocumentTestServer(codec)
	admin := loginCookie(t, codec, model.RoleAdmin, session.AdminSubject)

	for _, id := range []string{"6f1c7f6e-3c57-4f0a-9a53-6a1a0f6f4a10", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/api/documents/"+id, nil)
		req.AddCookie(admin)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

func TestDocumentHandler_SeveralSessions(t *testing.T) {
	codec := newTestCodec()
	server := newDocumentTestServer(codec)

	tests := []struct {
		name     string
		client   string
		wantCode int
	}{
		{"owning client alongside unassigned developer", "RED-1111", http.StatusOK},
		{"no session entitled", "RED-2222", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/documents/"+testDocumentID, nil)
			req.AddCookie(loginCookie(t, codec, model.RoleDeveloper, "dev-2"))
			req.AddCookie(loginCookie(t, codec, model.RoleClient, tt.client))
			rec := httptest.NewRecorder()

			server.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, pdfBytes, rec.Body.Bytes())
			}
		})
	}
}
