package model

import (
	"time"
)

type Task struct {
	ID             string     `db:"id" json:"id"`
	Title          string     `db:"title" json:"title"`
	Description    *string    `db:"description" json:"description"`
	Status         TaskStatus `db:"status" json:"status"`
	DeveloperID    string     `db:"developer_id" json:"developerId"`
	ClientID       *string    `db:"client_id" json:"clientId"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
	DeveloperEmail *string    `db:"developer_email" json:"developerEmail,omitempty"`
}

type CreateTaskParams struct {
	Title       string
	Description *string
	DeveloperID string
	ClientID    *string
}
