package model

import (
	"time"
)

type ProjectReport struct {
	ID               string       `db:"id" json:"id"`
	ClientID         string       `db:"client_id" json:"clientId"`
	DeveloperID      string       `db:"developer_id" json:"developerId"`
	Status           ReportStatus `db:"status" json:"status"`
	Summary          string       `db:"summary" json:"summary"`
	DocumentURL      *string      `db:"document_url" json:"documentUrl"`
	IssueType        IssueType    `db:"issue_type" json:"issueType"`
	IssueDescription *string      `db:"issue_description" json:"issueDescription"`
	CreatedAt        time.Time    `db:"created_at" json:"createdAt"`
	ClientName       *string      `db:"client_name" json:"clientName,omitempty"`
	DeveloperEmail   *string      `db:"developer_email" json:"developerEmail,omitempty"`
}

type CreateReportParams struct {
	ClientID         string
	DeveloperID      string
	Status           ReportStatus
	Summary          string
	DocumentURL      *string
	IssueType        IssueType
	IssueDescription *string
}
