package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/metrics"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

const defaultMimeType = "application/octet-stream"

type StoreDocumentParams struct {
	ClientID      string
	Title         string
	MimeType      string
	ContentBase64 string
	Size          int64
	Description   *string
}

// DocumentService stores client documents as opaque bytes and serves them
// back byte for byte to entitled callers.
type DocumentService struct {
	docs     repository.DocumentRepository
	clients  repository.ClientRepository
	sealer   *util.Sealer
	maxBytes int64
}

// NewDocumentService takes an optional sealer; with nil, content is stored
// in the clear.
func NewDocumentService(
	docs repository.DocumentRepository,
	clients repository.ClientRepository,
	sealer *util.Sealer,
	maxBytes int64,
) *DocumentService {
	return &DocumentService{
		docs:     docs,
		clients:  clients,
		sealer:   sealer,
		maxBytes: maxBytes,
	}
}

func DocumentURL(id string) string {
	return "/api/documents/" + id
}

func (s *DocumentService) Store(ctx context.Context, params StoreDocumentParams) (*model.Document, error) {
	if params.ClientID == "" {
		return nil, apperrors.MissingRequired("clientId")
	}
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, apperrors.MissingRequired("title")
	}

	content, err := decodeContent(params.ContentBase64)
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > s.maxBytes {
		return nil, apperrors.PayloadTooLarge(s.maxBytes)
	}

	size := params.Size
	if size <= 0 {
		size = int64(len(content))
	}
	mimeType := strings.TrimSpace(params.MimeType)
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	stored := content
	if s.sealer != nil {
		stored, err = s.sealer.Seal(content)
		if err != nil {
			return nil, apperrors.Internal("Failed to encrypt document").WithCause(err)
		}
	}

	id := uuid.NewString()
	doc, err := s.docs.Create(ctx, model.CreateDocumentParams{
		ID:          id,
		ClientID:    params.ClientID,
		Title:       title,
		URL:         DocumentURL(id),
		Size:        size,
		MimeType:    mimeType,
		Description: params.Description,
		Content:     stored,
		Encrypted:   s.sealer != nil,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperrors.NotFound("Client")
		}
		return nil, apperrors.Database(err)
	}

	metrics.DocumentsTotal.WithLabelValues("store").Inc()
	return doc, nil
}

// Retrieve loads a document for the first of callers entitled to it. Admins
// may read any document, clients their own, developers those of clients
// they are assigned to. The entitled principal is returned with the content.
func (s *DocumentService) Retrieve(ctx context.Context, id string, callers []model.Principal) (*model.DocumentContent, *model.Principal, error) {
	if len(callers) == 0 {
		return nil, nil, apperrors.Unauthorized("Unauthorized")
	}
	if !util.IsValidUUID(id) {
		return nil, nil, apperrors.NotFound("Document")
	}

	doc, err := s.docs.FindContent(ctx, id)
	if err != nil {
		return nil, nil, apperrors.Database(err)
	}
	if doc == nil {
		return nil, nil, apperrors.NotFound("Document")
	}

	granted, err := s.authorize(ctx, doc.ClientID, callers)
	if err != nil {
		return nil, nil, err
	}

	if doc.Encrypted {
		if s.sealer == nil {
			return nil, nil, apperrors.Internal("Document is encrypted but no key is configured")
		}
		plain, err := s.sealer.Open(doc.Content)
		if err != nil {
			return nil, nil, apperrors.Internal("Failed to decrypt document").WithCause(err)
		}
		doc.Content = plain
	}

	metrics.DocumentsTotal.WithLabelValues("retrieve").Inc()
	return doc, granted, nil
}

func (s *DocumentService) authorize(ctx context.Context, clientID string, callers []model.Principal) (*model.Principal, error) {
	for i := range callers {
		ok, err := s.entitled(ctx, clientID, callers[i])
		if err != nil {
			return nil, err
		}
		if ok {
			return &callers[i], nil
		}
	}

	log.Warn().
		Int("sessions", len(callers)).
		Str("clientId", clientID).
		Msg("document access denied")
	return nil, apperrors.Forbidden("Forbidden")
}

func (s *DocumentService) entitled(ctx context.Context, clientID string, caller model.Principal) (bool, error) {
	switch caller.Role {
	case model.RoleAdmin:
		return true, nil
	case model.RoleClient:
		return caller.ID == clientID, nil
	case model.RoleDeveloper:
		assigned, err := s.clients.IsAssigned(ctx, clientID, caller.ID)
		if err != nil {
			return false, apperrors.Database(err)
		}
		return assigned, nil
	}
	return false, nil
}

func (s *DocumentService) ListForClient(ctx context.Context, clientID string) ([]*model.DocumentListing, error) {
	docs, err := s.docs.ListByClient(ctx, clientID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return docs, nil
}

func (s *DocumentService) ListForDeveloper(ctx context.Context, developerID string) ([]*model.DocumentListing, error) {
	docs, err := s.docs.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return docs, nil
}

// ListAll returns every document with the owning client's developers attached.
func (s *DocumentService) ListAll(ctx context.Context) ([]*model.DocumentListing, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	seen := make(map[string]bool)
	var clientIDs []string
	for _, d := range docs {
		if !seen[d.ClientID] {
			seen[d.ClientID] = true
			clientIDs = append(clientIDs, d.ClientID)
		}
	}

	devs, err := s.clients.DevelopersFor(ctx, clientIDs)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	for _, d := range docs {
		d.Developers = devs[d.ClientID]
		if d.Developers == nil {
			d.Developers = []model.DeveloperRef{}
		}
	}
	return docs, nil
}

// decodeContent accepts plain standard base64 or a data URL carrying it.
func decodeContent(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "data:") {
		comma := strings.IndexByte(encoded, ',')
		if comma < 0 || !strings.HasSuffix(encoded[:comma], ";base64") {
			return nil, apperrors.InvalidInput("content", "unsupported data URL")
		}
		encoded = encoded[comma+1:]
	}
	if encoded == "" {
		return nil, apperrors.MissingRequired("content")
	}

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperrors.InvalidInput("content", fmt.Sprintf("not valid base64: %v", err))
	}
	if len(content) == 0 {
		return nil, apperrors.MissingRequired("content")
	}
	return content, nil
}
