package service

import (
	"context"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

type ClientService struct {
	clients repository.ClientRepository
	ids     *ClientIDGenerator
}

func NewClientService(clients repository.ClientRepository, ids *ClientIDGenerator) *ClientService {
	return &ClientService{clients: clients, ids: ids}
}

// Create stores a client. An explicit ID must be well formed and free;
// otherwise one is generated.
func (s *ClientService) Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	if params.Name == "" {
		return nil, apperrors.MissingRequired("name")
	}

	if params.ID == "" {
		return s.ids.Create(ctx, params)
	}

	if !util.IsValidClientID(params.ID) {
		return nil, apperrors.InvalidInput("id", "must be 1-64 letters, digits, '-' or '_'")
	}
	client, err := s.clients.Create(ctx, params)
	if err != nil {
		return nil, mapClientWriteError(err)
	}
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*model.ClientWithDevelopers, error) {
	client, err := s.clients.FindWithDevelopers(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("Client")
	}
	return client, nil
}

func (s *ClientService) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := s.ids.Exists(ctx, id)
	if err != nil {
		return false, apperrors.Database(err)
	}
	return exists, nil
}

func (s *ClientService) List(ctx context.Context) ([]*model.ClientWithDevelopers, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return clients, nil
}

func (s *ClientService) ListForDeveloper(ctx context.Context, developerID string) ([]*model.Client, error) {
	clients, err := s.clients.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return clients, nil
}

// Update edits a client and optionally renames it. A rename onto a taken id
// is a conflict and leaves the stored row untouched.
func (s *ClientService) Update(ctx context.Context, id string, params model.UpdateClientParams) (*model.Client, error) {
	if id == "" {
		return nil, apperrors.MissingRequired("id")
	}
	if params.NewID != nil {
		if *params.NewID == id || *params.NewID == "" {
			params.NewID = nil
		} else if !util.IsValidClientID(*params.NewID) {
			return nil, apperrors.InvalidInput("newId", "must be 1-64 letters, digits, '-' or '_'")
		}
	}
	if params.Name != nil && *params.Name == "" {
		return nil, apperrors.InvalidInput("name", "must not be empty")
	}

	client, err := s.clients.Update(ctx, id, params)
	if err != nil {
		return nil, mapClientWriteError(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("Client")
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	deleted, err := s.clients.Delete(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if !deleted {
		return apperrors.NotFound("Client")
	}
	return nil
}

// RequireAssignment fails with Forbidden unless developerID works on clientID.
func (s *ClientService) RequireAssignment(ctx context.Context, clientID, developerID string) error {
	if clientID == "" {
		return apperrors.MissingRequired("clientId")
	}
	assigned, err := s.clients.IsAssigned(ctx, clientID, developerID)
	if err != nil {
		return apperrors.Database(err)
	}
	if !assigned {
		return apperrors.Forbidden("Not assigned to this client")
	}
	return nil
}

func mapClientWriteError(err error) error {
	switch {
	case repository.IsUniqueViolation(err):
		return apperrors.Conflict("Client ID already exists")
	case repository.IsForeignKeyViolation(err):
		return apperrors.InvalidInput("developerIds", "unknown developer")
	default:
		return apperrors.Database(err)
	}
}
