package service

import (
	"context"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
)

type ReportService struct {
	reports repository.ReportRepository
	clients *ClientService
}

func NewReportService(reports repository.ReportRepository, clients *ClientService) *ReportService {
	return &ReportService{reports: reports, clients: clients}
}

// Submit files a report for a client the developer is assigned to.
func (s *ReportService) Submit(ctx context.Context, params model.CreateReportParams) (*model.ProjectReport, error) {
	if params.Summary == "" {
		return nil, apperrors.MissingRequired("summary")
	}
	if err := s.clients.RequireAssignment(ctx, params.ClientID, params.DeveloperID); err != nil {
		return nil, err
	}
	if params.IssueType == "" {
		params.IssueType = model.IssueTypeNone
	}

	report, err := s.reports.Create(ctx, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return report, nil
}

func (s *ReportService) ListForDeveloper(ctx context.Context, clientID, developerID string) ([]*model.ProjectReport, error) {
	if err := s.clients.RequireAssignment(ctx, clientID, developerID); err != nil {
		return nil, err
	}
	reports, err := s.reports.ListByClient(ctx, clientID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return reports, nil
}

func (s *ReportService) ListAll(ctx context.Context) ([]*model.ProjectReport, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return reports, nil
}
