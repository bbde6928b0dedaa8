package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

// DocumentRepository never loads content in listings; FindContent is the
// only query that reads the bytea column.
type DocumentRepository interface {
	Create(ctx context.Context, params model.CreateDocumentParams) (*model.Document, error)
	FindContent(ctx context.Context, id string) (*model.DocumentContent, error)
	ListByClient(ctx context.Context, clientID string) ([]*model.DocumentListing, error)
	ListByDeveloper(ctx context.Context, developerID string) ([]*model.DocumentListing, error)
	List(ctx context.Context) ([]*model.DocumentListing, error)
}

type documentRepo struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &documentRepo{db: db}
}

const documentColumns = `d.id, d.client_id, d.title, d.url, d.size, d.mime_type, d.description, d.encrypted, d.created_at`

const documentListingSelect = `
	SELECT ` + documentColumns + `, c.name AS client_name
	FROM client_documents d
	JOIN clients c ON c.id = d.client_id
`

func (r *documentRepo) Create(ctx context.Context, params model.CreateDocumentParams) (*model.Document, error) {
	var doc model.Document
	err := r.db.GetContext(ctx, &doc, `
		INSERT INTO client_documents AS d (id, client_id, title, url, size, mime_type, description, content, encrypted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+documentColumns,
		params.ID, params.ClientID, params.Title, params.URL, params.Size,
		params.MimeType, params.Description, params.Content, params.Encrypted)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) FindContent(ctx context.Context, id string) (*model.DocumentContent, error) {
	var doc model.DocumentContent
	err := r.db.GetContext(ctx, &doc, `SELECT * FROM client_documents WHERE id = $1`, id)
	return HandleNotFound(&doc, err)
}

func (r *documentRepo) ListByClient(ctx context.Context, clientID string) ([]*model.DocumentListing, error) {
	docs := []*model.DocumentListing{}
	err := r.db.SelectContext(ctx, &docs, documentListingSelect+`
		WHERE d.client_id = $1
		ORDER BY d.created_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.DocumentListing, error) {
	docs := []*model.DocumentListing{}
	err := r.db.SelectContext(ctx, &docs, documentListingSelect+`
		JOIN client_developers cd ON cd.client_id = d.client_id
		WHERE cd.developer_id = $1
		ORDER BY d.created_at DESC
	`, developerID)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) List(ctx context.Context) ([]*model.DocumentListing, error) {
	docs := []*model.DocumentListing{}
	if err := r.db.SelectContext(ctx, &docs, documentListingSelect+` ORDER BY d.created_at DESC`); err != nil {
		return nil, err
	}
	return docs, nil
}
