package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rishi-ann/redlix-portal/internal/authn"
	"github.com/rishi-ann/redlix-portal/internal/model"
)

// Mock repositories

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *mockClientRepo) FindByID(ctx context.Context, id string) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *mockClientRepo) FindWithDevelopers(ctx context.Context, id string) (*model.ClientWithDevelopers, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientWithDevelopers), args.Error(1)
}

func (m *mockClientRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockClientRepo) List(ctx context.Context) ([]*model.ClientWithDevelopers, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ClientWithDevelopers), args.Error(1)
}

func (m *mockClientRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.Client, error) {
	args := m.Called(ctx, developerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Client), args.Error(1)
}

func (m *mockClientRepo) IsAssigned(ctx context.Context, clientID, developerID string) (bool, error) {
	args := m.Called(ctx, clientID, developerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockClientRepo) Update(ctx context.Context, id string, params model.UpdateClientParams) (*model.Client, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *mockClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockClientRepo) DevelopersFor(ctx context.Context, clientIDs []string) (map[string][]model.DeveloperRef, error) {
	args := m.Called(ctx, clientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.DeveloperRef), args.Error(1)
}

type mockDocumentRepo struct {
	mock.Mock
}

func (m *mockDocumentRepo) Create(ctx context.Context, params model.CreateDocumentParams) (*model.Document, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *mockDocumentRepo) FindContent(ctx context.Context, id string) (*model.DocumentContent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentContent), args.Error(1)
}

func (m *mockDocumentRepo) ListByClient(ctx context.Context, clientID string) ([]*model.DocumentListing, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DocumentListing), args.Error(1)
}

func (m *mockDocumentRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.DocumentListing, error) {
	args := m.Called(ctx, developerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DocumentListing), args.Error(1)
}

func (m *mockDocumentRepo) List(ctx context.Context) ([]*model.DocumentListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DocumentListing), args.Error(1)
}

type mockDeveloperRepo struct {
	mock.Mock
}

func (m *mockDeveloperRepo) Upsert(ctx context.Context, id, email string) (*model.Developer, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Developer), args.Error(1)
}

func (m *mockDeveloperRepo) FindByID(ctx context.Context, id string) (*model.Developer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Developer), args.Error(1)
}

func (m *mockDeveloperRepo) FindByEmail(ctx context.Context, email string) (*model.Developer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Developer), args.Error(1)
}

func (m *mockDeveloperRepo) FindByIdentity(ctx context.Context, provider, subject string) (*model.Developer, error) {
	args := m.Called(ctx, provider, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Developer), args.Error(1)
}

func (m *mockDeveloperRepo) LinkIdentity(ctx context.Context, developerID, provider, subject string) error {
	return m.Called(ctx, developerID, provider, subject).Error(0)
}

func (m *mockDeveloperRepo) List(ctx context.Context) ([]*model.Developer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Developer), args.Error(1)
}

func (m *mockDeveloperRepo) Profile(ctx context.Context, id string) (*model.DeveloperProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeveloperProfile), args.Error(1)
}

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Create(ctx context.Context, params model.CreateTaskParams) (*model.Task, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.Task, error) {
	args := m.Called(ctx, developerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListByClient(ctx context.Context, clientID string) ([]*model.Task, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *mockTaskRepo) UpdateStatus(ctx context.Context, taskID, developerID string, status model.TaskStatus) (*model.Task, error) {
	args := m.Called(ctx, taskID, developerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) Create(ctx context.Context, params model.CreateReportParams) (*model.ProjectReport, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectReport), args.Error(1)
}

func (m *mockReportRepo) List(ctx context.Context) ([]*model.ProjectReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectReport), args.Error(1)
}

func (m *mockReportRepo) ListByClient(ctx context.Context, clientID string) ([]*model.ProjectReport, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectReport), args.Error(1)
}

type mockInquiryRepo struct {
	mock.Mock
}

func (m *mockInquiryRepo) Create(ctx context.Context, params model.CreateInquiryParams) (*model.ContactInquiry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactInquiry), args.Error(1)
}

func (m *mockInquiryRepo) List(ctx context.Context) ([]*model.ContactInquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ContactInquiry), args.Error(1)
}

func (m *mockInquiryRepo) UpdateStatus(ctx context.Context, id string, status model.InquiryStatus) (*model.ContactInquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactInquiry), args.Error(1)
}

type mockProjectRequestRepo struct {
	mock.Mock
}

func (m *mockProjectRequestRepo) Create(ctx context.Context, params model.CreateProjectRequestParams) (*model.ProjectRequest, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectRequest), args.Error(1)
}

func (m *mockProjectRequestRepo) List(ctx context.Context) ([]*model.ProjectRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectRequest), args.Error(1)
}

func (m *mockProjectRequestRepo) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) (*model.ProjectRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectRequest), args.Error(1)
}

type mockOAuthStateRepo struct {
	mock.Mock
}

func (m *mockOAuthStateRepo) Create(ctx context.Context, params model.CreateOAuthStateParams) (*model.OAuthState, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OAuthState), args.Error(1)
}

func (m *mockOAuthStateRepo) Consume(ctx context.Context, stateHash string) (*model.OAuthState, error) {
	args := m.Called(ctx, stateHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OAuthState), args.Error(1)
}

func (m *mockOAuthStateRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock authenticators

type mockPasswordAuth struct {
	mock.Mock
}

func (m *mockPasswordAuth) SignUp(ctx context.Context, email, password string) (*authn.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authn.Identity), args.Error(1)
}

func (m *mockPasswordAuth) SignIn(ctx context.Context, email, password string) (*authn.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authn.Identity), args.Error(1)
}

type mockFederatedAuth struct {
	mock.Mock
}

func (m *mockFederatedAuth) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *mockFederatedAuth) Exchange(ctx context.Context, code string) (*authn.Identity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authn.Identity), args.Error(1)
}
