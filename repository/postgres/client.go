package postgres

import (
	"context"
	"fmt"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"

	"gorm.io/gorm"
)

// clientRepository implements the Client repository interface using PostgreSQL
type clientRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewClientRepository creates a new instance of clientRepository
func NewClientRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Client {
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new client to the database
func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	r.logger.InfoContext(ctx, "Creating client", "name", client.Name)

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(client).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create client", "name", client.Name, "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}
	r.logger.InfoContext(ctx, "Client created successfully", "id", client.ID, "name", client.Name)
	return nil
}

// GetByID retrieves a client by their unique identifier
func (r *clientRepository) GetByID(ctx context.Context, id string) (*model.Client, error) {
	r.logger.InfoContext(ctx, "Getting client by ID", "id", id)
	var client model.Client
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Client not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get client by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// GetByEmail retrieves a client by email address
func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	r.logger.InfoContext(ctx, "Getting client by email", "email", email)
	var client model.Client
	if err := r.db.WithContext(ctx).Where("email = ? AND deleted_at IS NULL", email).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get client by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// Update rewrites the editable columns of a client. A map update is used on
// purpose: cleared contact and passport fields must still persist.
func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	r.logger.InfoContext(ctx, "Updating client", "id", client.ID)
	db := dbFromContext(ctx, r.db)
	updates := map[string]interface{}{
		"name":            client.Name,
		"surname":         client.Surname,
		"email":           client.Email,
		"phone":           client.Phone,
		"cpf":             client.CPF,
		"passport_number": client.PassportNumber,
		"passport_issue":  client.PassportIssue,
		"passport_expiry": client.PassportExpiry,
		"birth_date":      client.BirthDate,
		"nationality":     client.Nationality,
		"social_network":  client.SocialNetwork,
		"notes":           client.Notes,
	}
	if err := db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", client.ID).Updates(updates).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update client", "id", client.ID, "error", err)
		return fmt.Errorf("failed to update client: %w", err)
	}
	r.logger.InfoContext(ctx, "Client updated successfully", "id", client.ID)
	return nil
}

// Delete removes a client from the database (soft delete)
func (r *clientRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting client", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.Client{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete client", "id", id, "error", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.Client{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		r.logger.WarnContext(ctx, "Client not found for deletion", "id", id)
		return domain.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Client deleted successfully", "id", id)
	return nil
}

// List retrieves a paginated list of clients and the total count
func (r *clientRepository) List(ctx context.Context, offset, limit int) ([]*model.Client, int, error) {
	r.logger.InfoContext(ctx, "Listing clients", "offset", offset, "limit", limit)
	var clients []*model.Client
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Client{}).Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count clients", "error", err)
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Offset(offset).Limit(limit).Order("name ASC").Find(&clients).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list clients", "error", err)
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	r.logger.InfoContext(ctx, "Clients listed successfully", "count", len(clients), "total", total)
	return clients, int(total), nil
}

// Search retrieves clients whose name or email matches the query
func (r *clientRepository) Search(ctx context.Context, query string, limit int) ([]*model.Client, error) {
	r.logger.InfoContext(ctx, "Searching clients", "query", query)
	var clients []*model.Client
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("(name ILIKE ? OR surname ILIKE ? OR email ILIKE ?) AND deleted_at IS NULL", pattern, pattern, pattern).
		Limit(limit).Order("name ASC").Find(&clients).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to search clients", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}
