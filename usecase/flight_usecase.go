package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/gateway/flightdata"
	"travel-crm-service/pkg/logger"
)

// CheckInWindows carries the hours before departure at which check-in opens
type CheckInWindows struct {
	DomesticHours      int
	InternationalHours int
}

// FlightUseCase defines business operations for flight legs
type FlightUseCase interface {
	AddFlight(ctx context.Context, flight *model.Flight) error
	GetFlightByID(ctx context.Context, id string) (*model.Flight, error)
	UpdateFlight(ctx context.Context, flight *model.Flight) error
	DeleteFlight(ctx context.Context, id string) error
	ListByQuote(ctx context.Context, quoteID string) ([]*model.Flight, error)
}

// flightUseCase implements the FlightUseCase interface
type flightUseCase struct {
	flightRepo repository.Flight
	quoteRepo  repository.Quote
	schedules  flightdata.Gateway
	windows    CheckInWindows
	logger     logger.LoggerInterface
}

// NewFlightUseCase creates a new instance of flightUseCase
func NewFlightUseCase(
	flightRepo repository.Flight,
	quoteRepo repository.Quote,
	schedules flightdata.Gateway,
	windows CheckInWindows,
	appLogger logger.LoggerInterface,
) FlightUseCase {
	return &flightUseCase{
		flightRepo: flightRepo,
		quoteRepo:  quoteRepo,
		schedules:  schedules,
		windows:    windows,
		logger:     appLogger,
	}
}

// validateFlight enforces the required fields and direction rules and
// normalizes baggage counts
func (uc *flightUseCase) validateFlight(ctx context.Context, flight *model.Flight) error {
	if !model.IsValidDirection(flight.Direction) {
		uc.logger.WarnContext(ctx, "Invalid flight direction", "direction", flight.Direction)
		return domain.ErrInvalidDirection
	}

	if flight.Origin == "" || flight.Dest == "" || flight.Class == "" ||
		flight.Airline == "" || flight.FlightNumber == "" ||
		flight.DepartureTime == "" || flight.ArrivalTime == "" {
		uc.logger.WarnContext(ctx, "Flight leg is missing required fields", "quoteID", flight.QuoteID)
		return domain.ErrFlightFieldsRequired
	}

	switch flight.Direction {
	case model.DirectionOutbound, model.DirectionInternal:
		if flight.DepartureDate == nil {
			uc.logger.WarnContext(ctx, "Missing departure date", "direction", flight.Direction)
			return domain.ErrDepartureDateRequired
		}
	case model.DirectionReturn:
		if flight.ReturnDate == nil {
			uc.logger.WarnContext(ctx, "Missing return date")
			return domain.ErrReturnDateRequired
		}
	}

	// Negative baggage counts come from free-typed inputs; clamp rather than reject
	if flight.CheckedBags < 0 {
		flight.CheckedBags = 0
	}
	if flight.CarryOnBags < 0 {
		flight.CarryOnBags = 0
	}
	return nil
}

// departureInstant resolves the leg's departure moment. The schedule API is
// tried first; when it cannot help, the manually entered time is combined
// with the leg date in local time.
func (uc *flightUseCase) departureInstant(ctx context.Context, flight *model.Flight) (time.Time, bool) {
	date := flight.TravelDate()
	if date == nil {
		return time.Time{}, false
	}

	if uc.schedules != nil && flight.FlightNumber != "" {
		schedule, err := uc.schedules.GetSchedule(ctx, flight.FlightNumber, *date)
		if err == nil {
			flight.International = schedule.International
			return schedule.DepartureLocal, true
		}
		uc.logger.WarnContext(ctx, "Schedule lookup failed, using manual times", "flight", flight.FlightNumber, "error", err)
	}

	if flight.DepartureTime == "" {
		return *date, true
	}
	parsed, err := time.Parse("15:04", flight.DepartureTime)
	if err != nil {
		uc.logger.WarnContext(ctx, "Unparseable departure time", "time", flight.DepartureTime)
		return *date, true
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.Local), true
}

// computeCheckIn stamps when check-in opens for the leg: 24h before
// departure for domestic legs, 48h for international ones
func (uc *flightUseCase) computeCheckIn(ctx context.Context, flight *model.Flight) {
	departure, ok := uc.departureInstant(ctx, flight)
	if !ok {
		flight.CheckInOpensAt = nil
		return
	}

	hours := uc.windows.DomesticHours
	if flight.International {
		hours = uc.windows.InternationalHours
	}
	opensAt := departure.Add(-time.Duration(hours) * time.Hour)
	flight.CheckInOpensAt = &opensAt
}

// AddFlight validates and attaches a leg to a quote
func (uc *flightUseCase) AddFlight(ctx context.Context, flight *model.Flight) error {
	uc.logger.InfoContext(ctx, "Adding flight in usecase", "quoteID", flight.QuoteID, "direction", flight.Direction)
	if flight.QuoteID == "" {
		return domain.ErrInvalidID
	}

	if _, err := uc.quoteRepo.GetByID(ctx, flight.QuoteID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("error getting quote: %w", err)
	}

	if err := uc.validateFlight(ctx, flight); err != nil {
		return err
	}
	uc.computeCheckIn(ctx, flight)

	if err := uc.flightRepo.Create(ctx, flight); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create flight", "quoteID", flight.QuoteID, "error", err)
		return err
	}
	return nil
}

// GetFlightByID retrieves a flight leg by ID
func (uc *flightUseCase) GetFlightByID(ctx context.Context, id string) (*model.Flight, error) {
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	flight, err := uc.flightRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, fmt.Errorf("error getting flight: %w", err)
	}
	return flight, nil
}

// UpdateFlight validates and modifies an existing leg
func (uc *flightUseCase) UpdateFlight(ctx context.Context, flight *model.Flight) error {
	uc.logger.InfoContext(ctx, "Updating flight in usecase", "id", flight.ID)
	if flight.ID == "" {
		return domain.ErrInvalidID
	}

	existing, err := uc.flightRepo.GetByID(ctx, flight.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrFlightNotFound
		}
		return fmt.Errorf("error getting flight: %w", err)
	}
	flight.QuoteID = existing.QuoteID

	if err := uc.validateFlight(ctx, flight); err != nil {
		return err
	}
	uc.computeCheckIn(ctx, flight)

	if err := uc.flightRepo.Update(ctx, flight); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to update flight", "id", flight.ID, "error", err)
		return err
	}
	return nil
}

// DeleteFlight removes a leg
func (uc *flightUseCase) DeleteFlight(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting flight in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}

	if err := uc.flightRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrFlightNotFound
		}
		return err
	}
	return nil
}

// ListByQuote retrieves the legs of a quote
func (uc *flightUseCase) ListByQuote(ctx context.Context, quoteID string) ([]*model.Flight, error) {
	if quoteID == "" {
		return nil, domain.ErrInvalidID
	}
	return uc.flightRepo.ListByQuote(ctx, quoteID)
}
