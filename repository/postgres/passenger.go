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

// passengerRepository implements the Passenger repository interface using PostgreSQL
type passengerRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewPassengerRepository creates a new instance of passengerRepository
func NewPassengerRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Passenger {
	return &passengerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *passengerRepository) Create(ctx context.Context, passenger *model.QuotePassenger) error {
	r.logger.InfoContext(ctx, "Adding passenger to quote", "quoteID", passenger.QuoteID, "clientID", passenger.ClientID)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(passenger).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to add passenger", "quoteID", passenger.QuoteID, "error", err)
		return fmt.Errorf("failed to add passenger: %w", err)
	}
	return nil
}

func (r *passengerRepository) GetByID(ctx context.Context, id string) (*model.QuotePassenger, error) {
	var passenger model.QuotePassenger
	if err := r.db.WithContext(ctx).Preload("Client").Where("id = ?", id).First(&passenger).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Passenger not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get passenger", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}
	return &passenger, nil
}

func (r *passengerRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Removing passenger", "id", id)
	db := dbFromContext(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.QuotePassenger{})
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to remove passenger", "id", id, "error", result.Error)
		return fmt.Errorf("failed to remove passenger: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByQuote retrieves the passengers of a quote preloading their clients
func (r *passengerRepository) ListByQuote(ctx context.Context, quoteID string) ([]*model.QuotePassenger, error) {
	var passengers []*model.QuotePassenger
	if err := r.db.WithContext(ctx).Preload("Client").
		Where("quote_id = ?", quoteID).Order("created_at ASC").Find(&passengers).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list passengers", "quoteID", quoteID, "error", err)
		return nil, fmt.Errorf("failed to list passengers: %w", err)
	}
	return passengers, nil
}

// ExistsOnQuote reports whether the client is already a passenger of the quote
func (r *passengerRepository) ExistsOnQuote(ctx context.Context, quoteID, clientID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.QuotePassenger{}).
		Where("quote_id = ? AND client_id = ?", quoteID, clientID).Count(&count).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to check passenger", "quoteID", quoteID, "clientID", clientID, "error", err)
		return false, fmt.Errorf("failed to check passenger: %w", err)
	}
	return count > 0, nil
}
