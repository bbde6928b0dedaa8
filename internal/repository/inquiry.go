package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

type InquiryRepository interface {
	Create(ctx context.Context, params model.CreateInquiryParams) (*model.ContactInquiry, error)
	List(ctx context.Context) ([]*model.ContactInquiry, error)
	UpdateStatus(ctx context.Context, id string, status model.InquiryStatus) (*model.ContactInquiry, error)
}

type inquiryRepo struct {
	db *sqlx.DB
}

func NewInquiryRepository(db *sqlx.DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, params model.CreateInquiryParams) (*model.ContactInquiry, error) {
	var inquiry model.ContactInquiry
	err := r.db.GetContext(ctx, &inquiry, `
		INSERT INTO contact_inquiries (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
	`, uuid.NewString(), params.Name, params.Email, params.Subject, params.Message)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepo) List(ctx context.Context) ([]*model.ContactInquiry, error) {
	inquiries := []*model.ContactInquiry{}
	if err := r.db.SelectContext(ctx, &inquiries, `SELECT * FROM contact_inquiries ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *inquiryRepo) UpdateStatus(ctx context.Context, id string, status model.InquiryStatus) (*model.ContactInquiry, error) {
	var inquiry model.ContactInquiry
	err := r.db.GetContext(ctx, &inquiry, `
		UPDATE contact_inquiries SET status = $2 WHERE id = $1 RETURNING *
	`, id, status)
	return HandleNotFound(&inquiry, err)
}

type ProjectRequestRepository interface {
	Create(ctx context.Context, params model.CreateProjectRequestParams) (*model.ProjectRequest, error)
	List(ctx context.Context) ([]*model.ProjectRequest, error)
	UpdateStatus(ctx context.Context, id string, status model.RequestStatus) (*model.ProjectRequest, error)
}

type projectRequestRepo struct {
	db *sqlx.DB
}

func NewProjectRequestRepository(db *sqlx.DB) ProjectRequestRepository {
	return &projectRequestRepo{db: db}
}

func (r *projectRequestRepo) Create(ctx context.Context, params model.CreateProjectRequestParams) (*model.ProjectRequest, error) {
	var req model.ProjectRequest
	err := r.db.GetContext(ctx, &req, `
		INSERT INTO project_requests (id, client_name, client_email, project_title, description, budget)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`, uuid.NewString(), params.ClientName, params.ClientEmail, params.ProjectTitle, params.Description, params.Budget)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *projectRequestRepo) List(ctx context.Context) ([]*model.ProjectRequest, error) {
	reqs := []*model.ProjectRequest{}
	if err := r.db.SelectContext(ctx, &reqs, `SELECT * FROM project_requests ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *projectRequestRepo) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) (*model.ProjectRequest, error) {
	var req model.ProjectRequest
	err := r.db.GetContext(ctx, &req, `
		UPDATE project_requests SET status = $2 WHERE id = $1 RETURNING *
	`, id, status)
	return HandleNotFound(&req, err)
}
