package usecase

import (
	"context"
	"errors"
	"fmt"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"
)

// ClientUseCase defines business operations for clients
type ClientUseCase interface {
	CreateClient(ctx context.Context, client *model.Client) error
	GetClientByID(ctx context.Context, id string) (*model.Client, error)
	UpdateClient(ctx context.Context, client *model.Client) error
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context, offset, limit int) ([]*model.Client, int, error)
	SearchClients(ctx context.Context, query string) ([]*model.Client, error)
}

// clientUseCase implements the ClientUseCase interface
type clientUseCase struct {
	clientRepo repository.Client
	logger     logger.LoggerInterface
}

// NewClientUseCase creates a new instance of clientUseCase
func NewClientUseCase(clientRepo repository.Client, appLogger logger.LoggerInterface) ClientUseCase {
	return &clientUseCase{
		clientRepo: clientRepo,
		logger:     appLogger,
	}
}

// CreateClient creates a new client
func (uc *clientUseCase) CreateClient(ctx context.Context, client *model.Client) error {
	uc.logger.InfoContext(ctx, "Creating client in usecase", "name", client.Name)
	if client.Name == "" {
		return &domain.AppError{Message: "client name is required", Code: 400}
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create client in repository", "error", err)
		return err
	}
	return nil
}

// GetClientByID retrieves a client by ID
func (uc *clientUseCase) GetClientByID(ctx context.Context, id string) (*model.Client, error) {
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrClientNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting client", "id", id, "error", err)
		return nil, fmt.Errorf("error getting client: %w", err)
	}
	return client, nil
}

// UpdateClient modifies an existing client
func (uc *clientUseCase) UpdateClient(ctx context.Context, client *model.Client) error {
	uc.logger.InfoContext(ctx, "Updating client in usecase", "id", client.ID)
	if client.ID == "" {
		return domain.ErrInvalidID
	}

	if _, err := uc.clientRepo.GetByID(ctx, client.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("error getting client: %w", err)
	}

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to update client", "id", client.ID, "error", err)
		return err
	}
	return nil
}

// DeleteClient removes a client
func (uc *clientUseCase) DeleteClient(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting client in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}

	if err := uc.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrClientNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to delete client", "id", id, "error", err)
		return err
	}
	return nil
}

// ListClients retrieves a paginated list of clients
func (uc *clientUseCase) ListClients(ctx context.Context, offset, limit int) ([]*model.Client, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.clientRepo.List(ctx, offset, limit)
}

// SearchClients retrieves clients matching the query for lookup fields
func (uc *clientUseCase) SearchClients(ctx context.Context, query string) ([]*model.Client, error) {
	if query == "" {
		return []*model.Client{}, nil
	}
	return uc.clientRepo.Search(ctx, query, 20)
}
