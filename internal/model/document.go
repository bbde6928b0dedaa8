package model

import (
	"time"
)

// Document is the metadata of a client document. Content is loaded only by
// the byte retrieval path.
type Document struct {
	ID          string    `db:"id" json:"id"`
	ClientID    string    `db:"client_id" json:"clientId"`
	Title       string    `db:"title" json:"title"`
	URL         string    `db:"url" json:"url"`
	Size        int64     `db:"size" json:"size"`
	MimeType    string    `db:"mime_type" json:"type"`
	Description *string   `db:"description" json:"description"`
	Encrypted   bool      `db:"encrypted" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type DocumentContent struct {
	Document
	Content []byte `db:"content" json:"-"`
}

// DocumentListing carries the owning client's name and, for admins, the
// developers assigned to that client.
type DocumentListing struct {
	Document
	ClientName string         `db:"client_name" json:"clientName"`
	Developers []DeveloperRef `db:"-" json:"developers,omitempty"`
}

type CreateDocumentParams struct {
	ID          string
	ClientID    string
	Title       string
	URL         string
	Size        int64
	MimeType    string
	Description *string
	Content     []byte
	Encrypted   bool
}
