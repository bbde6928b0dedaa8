package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

type ReportRepository interface {
	Create(ctx context.Context, params model.CreateReportParams) (*model.ProjectReport, error)
	List(ctx context.Context) ([]*model.ProjectReport, error)
	ListByClient(ctx context.Context, clientID string) ([]*model.ProjectReport, error)
}

type reportRepo struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepo{db: db}
}

const reportSelect = `
	SELECT r.*, c.name AS client_name, d.email AS developer_email
	FROM project_reports r
	JOIN clients c ON c.id = r.client_id
	JOIN developers d ON d.id = r.developer_id
`

func (r *reportRepo) Create(ctx context.Context, params model.CreateReportParams) (*model.ProjectReport, error) {
	var report model.ProjectReport
	err := r.db.GetContext(ctx, &report, `
		INSERT INTO project_reports (id, client_id, developer_id, status, summary, document_url, issue_type, issue_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING *
	`, uuid.NewString(), params.ClientID, params.DeveloperID, params.Status, params.Summary,
		params.DocumentURL, params.IssueType, params.IssueDescription)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) List(ctx context.Context) ([]*model.ProjectReport, error) {
	reports := []*model.ProjectReport{}
	if err := r.db.SelectContext(ctx, &reports, reportSelect+` ORDER BY r.created_at DESC`); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepo) ListByClient(ctx context.Context, clientID string) ([]*model.ProjectReport, error) {
	reports := []*model.ProjectReport{}
	err := r.db.SelectContext(ctx, &reports, reportSelect+`
		WHERE r.client_id = $1
		ORDER BY r.created_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	return reports, nil
}
