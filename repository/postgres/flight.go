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

// flightRepository implements the Flight repository interface using PostgreSQL
type flightRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewFlightRepository creates a new instance of flightRepository
func NewFlightRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Flight {
	return &flightRepository{
		db:     db,
		logger: logger,
	}
}

func (r *flightRepository) Create(ctx context.Context, flight *model.Flight) error {
	r.logger.InfoContext(ctx, "Creating flight", "quoteID", flight.QuoteID, "direction", flight.Direction)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(flight).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create flight", "quoteID", flight.QuoteID, "error", err)
		return fmt.Errorf("failed to create flight: %w", err)
	}
	r.logger.InfoContext(ctx, "Flight created successfully", "id", flight.ID)
	return nil
}

func (r *flightRepository) GetByID(ctx context.Context, id string) (*model.Flight, error) {
	r.logger.InfoContext(ctx, "Getting flight by ID", "id", id)
	var flight model.Flight
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&flight).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Flight not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get flight by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return &flight, nil
}

// Update rewrites every editable column of a leg. A map update is used on
// purpose: cleared baggage counts and a domestic downgrade are zero values
// and must still persist.
func (r *flightRepository) Update(ctx context.Context, flight *model.Flight) error {
	r.logger.InfoContext(ctx, "Updating flight", "id", flight.ID)
	db := dbFromContext(ctx, r.db)
	updates := map[string]interface{}{
		"direction":         flight.Direction,
		"origin":            flight.Origin,
		"dest":              flight.Dest,
		"departure_date":    flight.DepartureDate,
		"return_date":       flight.ReturnDate,
		"airline":           flight.Airline,
		"flight_number":     flight.FlightNumber,
		"class":             flight.Class,
		"departure_time":    flight.DepartureTime,
		"arrival_time":      flight.ArrivalTime,
		"checked_bags":      flight.CheckedBags,
		"carry_on_bags":     flight.CarryOnBags,
		"international":     flight.International,
		"check_in_opens_at": flight.CheckInOpensAt,
		"notes":             flight.Notes,
	}
	if err := db.WithContext(ctx).Model(&model.Flight{}).Where("id = ?", flight.ID).Updates(updates).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update flight", "id", flight.ID, "error", err)
		return fmt.Errorf("failed to update flight: %w", err)
	}
	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting flight", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.Flight{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete flight", "id", id, "error", err)
		return fmt.Errorf("failed to delete flight: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.Flight{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		r.logger.WarnContext(ctx, "Flight not found for deletion", "id", id)
		return domain.ErrNotFound
	}
	return nil
}

// ListByQuote retrieves the legs of a quote ordered by travel date.
// Legs without a date sort last so half-filled wizard rows stay visible.
func (r *flightRepository) ListByQuote(ctx context.Context, quoteID string) ([]*model.Flight, error) {
	r.logger.InfoContext(ctx, "Listing flights by quote", "quoteID", quoteID)
	var flights []*model.Flight
	if err := r.db.WithContext(ctx).
		Where("quote_id = ? AND deleted_at IS NULL", quoteID).
		Order("COALESCE(departure_date, return_date) ASC NULLS LAST").
		Find(&flights).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list flights", "quoteID", quoteID, "error", err)
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}
