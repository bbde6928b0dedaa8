package model

import (
	"time"
)

type ContactInquiry struct {
	ID        string        `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Subject   string        `db:"subject" json:"subject"`
	Message   string        `db:"message" json:"message"`
	Status    InquiryStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

type CreateInquiryParams struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ProjectRequest struct {
	ID           string        `db:"id" json:"id"`
	ClientName   string        `db:"client_name" json:"clientName"`
	ClientEmail  string        `db:"client_email" json:"clientEmail"`
	ProjectTitle string        `db:"project_title" json:"projectTitle"`
	Description  string        `db:"description" json:"description"`
	Budget       *string       `db:"budget" json:"budget"`
	Status       RequestStatus `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
}

type CreateProjectRequestParams struct {
	ClientName   string
	ClientEmail  string
	ProjectTitle string
	Description  string
	Budget       *string
}
