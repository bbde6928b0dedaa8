package handler

import (
	"context"

	"github.com/rishi-ann/redlix-portal/internal/authn"
	"github.com/rishi-ann/redlix-portal/internal/model"
)

type mockClientRepo struct {
	createFunc             func(ctx context.Context, params model.CreateClientParams) (*model.Client, error)
	findWithDevelopersFunc func(ctx context.Context, id string) (*model.ClientWithDevelopers, error)
	existsFunc             func(ctx context.Context, id string) (bool, error)
	isAssignedFunc         func(ctx context.Context, clientID, developerID string) (bool, error)
	updateFunc             func(ctx context.Context, id string, params model.UpdateClientParams) (*model.Client, error)
	deleteFunc             func(ctx context.Context, id string) (bool, error)
}

func (m *mockClientRepo) Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Client{ID: params.ID, Name: params.Name}, nil
}

func (m *mockClientRepo) FindByID(ctx context.Context, id string) (*model.Client, error) {
	return nil, nil
}

func (m *mockClientRepo) FindWithDevelopers(ctx context.Context, id string) (*model.ClientWithDevelopers, error) {
	if m.findWithDevelopersFunc != nil {
		return m.findWithDevelopersFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepo) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockClientRepo) List(ctx context.Context) ([]*model.ClientWithDevelopers, error) {
	return []*model.ClientWithDevelopers{}, nil
}

func (m *mockClientRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.Client, error) {
	return []*model.Client{}, nil
}

func (m *mockClientRepo) IsAssigned(ctx context.Context, clientID, developerID string) (bool, error) {
	if m.isAssignedFunc != nil {
		return m.isAssignedFunc(ctx, clientID, developerID)
	}
	return false, nil
}

func (m *mockClientRepo) Update(ctx context.Context, id string, params model.UpdateClientParams) (*model.Client, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}

func (m *mockClientRepo) DevelopersFor(ctx context.Context, clientIDs []string) (map[string][]model.DeveloperRef, error) {
	return map[string][]model.DeveloperRef{}, nil
}

type mockDocumentRepo struct {
	createFunc      func(ctx context.Context, params model.CreateDocumentParams) (*model.Document, error)
	findContentFunc func(ctx context.Context, id string) (*model.DocumentContent, error)
}

func (m *mockDocumentRepo) Create(ctx context.Context, params model.CreateDocumentParams) (*model.Document, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Document{
		ID:       params.ID,
		ClientID: params.ClientID,
		Title:    params.Title,
		URL:      params.URL,
		Size:     params.Size,
		MimeType: params.MimeType,
	}, nil
}

func (m *mockDocumentRepo) FindContent(ctx context.Context, id string) (*model.DocumentContent, error) {
	if m.findContentFunc != nil {
		return m.findContentFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDocumentRepo) ListByClient(ctx context.Context, clientID string) ([]*model.DocumentListing, error) {
	return []*model.DocumentListing{}, nil
}

func (m *mockDocumentRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.DocumentListing, error) {
	return []*model.DocumentListing{}, nil
}

func (m *mockDocumentRepo) List(ctx context.Context) ([]*model.DocumentListing, error) {
	return []*model.DocumentListing{}, nil
}

type mockInquiryRepo struct {
	createFunc func(ctx context.Context, params model.CreateInquiryParams) (*model.ContactInquiry, error)
}

func (m *mockInquiryRepo) Create(ctx context.Context, params model.CreateInquiryParams) (*model.ContactInquiry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.ContactInquiry{ID: "inq-1", Status: model.InquiryStatusUnread}, nil
}

func (m *mockInquiryRepo) List(ctx context.Context) ([]*model.ContactInquiry, error) {
	return []*model.ContactInquiry{}, nil
}

func (m *mockInquiryRepo) UpdateStatus(ctx context.Context, id string, status model.InquiryStatus) (*model.ContactInquiry, error) {
	return &model.ContactInquiry{ID: id, Status: status}, nil
}

type mockProjectRequestRepo struct{}

func (m *mockProjectRequestRepo) Create(ctx context.Context, params model.CreateProjectRequestParams) (*model.ProjectRequest, error) {
	return &model.ProjectRequest{ID: "req-1", Status: model.RequestStatusPending}, nil
}

func (m *mockProjectRequestRepo) List(ctx context.Context) ([]*model.ProjectRequest, error) {
	return []*model.ProjectRequest{}, nil
}

func (m *mockProjectRequestRepo) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) (*model.ProjectRequest, error) {
	return nil, nil
}

type mockDeveloperRepo struct {
	upsertFunc  func(ctx context.Context, id, email string) (*model.Developer, error)
	profileFunc func(ctx context.Context, id string) (*model.DeveloperProfile, error)
}

func (m *mockDeveloperRepo) Upsert(ctx context.Context, id, email string) (*model.Developer, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, id, email)
	}
	return &model.Developer{ID: id, Email: email}, nil
}

func (m *mockDeveloperRepo) FindByID(ctx context.Context, id string) (*model.Developer, error) {
	return nil, nil
}

func (m *mockDeveloperRepo) FindByEmail(ctx context.Context, email string) (*model.Developer, error) {
	return nil, nil
}

func (m *mockDeveloperRepo) FindByIdentity(ctx context.Context, provider, subject string) (*model.Developer, error) {
	return nil, nil
}

func (m *mockDeveloperRepo) LinkIdentity(ctx context.Context, developerID, provider, subject string) error {
	return nil
}

func (m *mockDeveloperRepo) List(ctx context.Context) ([]*model.Developer, error) {
	return []*model.Developer{}, nil
}

func (m *mockDeveloperRepo) Profile(ctx context.Context, id string) (*model.DeveloperProfile, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, id)
	}
	return nil, nil
}

type mockTaskRepo struct {
	updateStatusFunc func(ctx context.Context, taskID, developerID string, status model.TaskStatus) (*model.Task, error)
}

func (m *mockTaskRepo) Create(ctx context.Context, params model.CreateTaskParams) (*model.Task, error) {
	return nil, nil
}

func (m *mockTaskRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.Task, error) {
	return []*model.Task{}, nil
}

func (m *mockTaskRepo) ListByClient(ctx context.Context, clientID string) ([]*model.Task, error) {
	return []*model.Task{}, nil
}

func (m *mockTaskRepo) UpdateStatus(ctx context.Context, taskID, developerID string, status model.TaskStatus) (*model.Task, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, taskID, developerID, status)
	}
	return nil, nil
}

type mockReportRepo struct {
	createFunc       func(ctx context.Context, params model.CreateReportParams) (*model.ProjectReport, error)
	listByClientFunc func(ctx context.Context, clientID string) ([]*model.ProjectReport, error)
}

func (m *mockReportRepo) Create(ctx context.Context, params model.CreateReportParams) (*model.ProjectReport, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.ProjectReport{ClientID: params.ClientID, DeveloperID: params.DeveloperID}, nil
}

func (m *mockReportRepo) List(ctx context.Context) ([]*model.ProjectReport, error) {
	return []*model.ProjectReport{}, nil
}

func (m *mockReportRepo) ListByClient(ctx context.Context, clientID string) ([]*model.ProjectReport, error) {
	if m.listByClientFunc != nil {
		return m.listByClientFunc(ctx, clientID)
	}
	return []*model.ProjectReport{}, nil
}

type mockPasswordAuth struct {
	signUpFunc func(ctx context.Context, email, password string) (*authn.Identity, error)
	signInFunc func(ctx context.Context, email, password string) (*authn.Identity, error)
}

func (m *mockPasswordAuth) SignUp(ctx context.Context, email, password string) (*authn.Identity, error) {
	return m.signUpFunc(ctx, email, password)
}

func (m *mockPasswordAuth) SignIn(ctx context.Context, email, password string) (*authn.Identity, error) {
	return m.signInFunc(ctx, email, password)
}
