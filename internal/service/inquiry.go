package service

import (
	"context"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

// InquiryService handles the public contact form and project requests.
type InquiryService struct {
	inquiries repository.InquiryRepository
	requests  repository.ProjectRequestRepository
}

func NewInquiryService(inquiries repository.InquiryRepository, requests repository.ProjectRequestRepository) *InquiryService {
	return &InquiryService{inquiries: inquiries, requests: requests}
}

func (s *InquiryService) SubmitContact(ctx context.Context, params model.CreateInquiryParams) (*model.ContactInquiry, error) {
	inquiry, err := s.inquiries.Create(ctx, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return inquiry, nil
}

func (s *InquiryService) ListContacts(ctx context.Context) ([]*model.ContactInquiry, error) {
	inquiries, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return inquiries, nil
}

func (s *InquiryService) UpdateContactStatus(ctx context.Context, id string, status model.InquiryStatus) (*model.ContactInquiry, error) {
	if !util.IsValidUUID(id) {
		return nil, apperrors.NotFound("Inquiry")
	}
	inquiry, err := s.inquiries.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if inquiry == nil {
		return nil, apperrors.NotFound("Inquiry")
	}
	return inquiry, nil
}

func (s *InquiryService) SubmitRequest(ctx context.Context, params model.CreateProjectRequestParams) (*model.ProjectRequest, error) {
	req, err := s.requests.Create(ctx, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return req, nil
}

func (s *InquiryService) ListRequests(ctx context.Context) ([]*model.ProjectRequest, error) {
	reqs, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return reqs, nil
}

func (s *InquiryService) UpdateRequestStatus(ctx context.Context, id string, status model.RequestStatus) (*model.ProjectRequest, error) {
	if !util.IsValidUUID(id) {
		return nil, apperrors.NotFound("Request")
	}
	req, err := s.requests.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if req == nil {
		return nil, apperrors.NotFound("Request")
	}
	return req, nil
}
