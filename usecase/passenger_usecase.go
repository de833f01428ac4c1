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

// PassengerInfo decorates a quote passenger with booking readiness
type PassengerInfo struct {
	Passenger *model.QuotePassenger
	// MissingDocuments lists what the booking still needs from this traveler
	MissingDocuments []string
}

// PassengerUseCase defines business operations for quote passengers
type PassengerUseCase interface {
	// AddPassenger attaches a client to a quote. The 9-traveler cap and the
	// duplicate guard both leave the quote untouched on violation.
	AddPassenger(ctx context.Context, passenger *model.QuotePassenger) error
	RemovePassenger(ctx context.Context, passengerID string) error
	// ListByQuote retrieves passengers with their document gaps, taking the
	// quote's international legs into account
	ListByQuote(ctx context.Context, quoteID string) ([]*PassengerInfo, error)
}

// passengerUseCase implements the PassengerUseCase interface
type passengerUseCase struct {
	passengerRepo repository.Passenger
	quoteRepo     repository.Quote
	clientRepo    repository.Client
	flightRepo    repository.Flight
	logger        logger.LoggerInterface
}

// NewPassengerUseCase creates a new instance of passengerUseCase
func NewPassengerUseCase(
	passengerRepo repository.Passenger,
	quoteRepo repository.Quote,
	clientRepo repository.Client,
	flightRepo repository.Flight,
	appLogger logger.LoggerInterface,
) PassengerUseCase {
	return &passengerUseCase{
		passengerRepo: passengerRepo,
		quoteRepo:     quoteRepo,
		clientRepo:    clientRepo,
		flightRepo:    flightRepo,
		logger:        appLogger,
	}
}

// AddPassenger attaches a client to a quote as a traveler
func (uc *passengerUseCase) AddPassenger(ctx context.Context, passenger *model.QuotePassenger) error {
	uc.logger.InfoContext(ctx, "Adding passenger in usecase", "quoteID", passenger.QuoteID, "clientID", passenger.ClientID)
	if passenger.QuoteID == "" || passenger.ClientID == "" {
		return domain.ErrInvalidID
	}

	if passenger.Type == "" {
		passenger.Type = model.PassengerAdult
	}
	if !model.IsValidPassengerType(passenger.Type) {
		uc.logger.WarnContext(ctx, "Invalid passenger type", "type", passenger.Type)
		return domain.ErrInvalidPassengerType
	}

	if _, err := uc.quoteRepo.GetByID(ctx, passenger.QuoteID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("error getting quote: %w", err)
	}

	if _, err := uc.clientRepo.GetByID(ctx, passenger.ClientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("error getting client: %w", err)
	}

	exists, err := uc.passengerRepo.ExistsOnQuote(ctx, passenger.QuoteID, passenger.ClientID)
	if err != nil {
		return err
	}
	if exists {
		uc.logger.WarnContext(ctx, "Client is already a passenger", "quoteID", passenger.QuoteID, "clientID", passenger.ClientID)
		return domain.ErrDuplicatePassenger
	}

	current, err := uc.passengerRepo.ListByQuote(ctx, passenger.QuoteID)
	if err != nil {
		return err
	}
	if len(current)+1 > model.MaxPassengersPerQuote {
		uc.logger.WarnContext(ctx, "Passenger cap reached", "quoteID", passenger.QuoteID, "current", len(current))
		return domain.ErrPassengerLimitExceeded
	}

	if err := uc.passengerRepo.Create(ctx, passenger); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to add passenger", "quoteID", passenger.QuoteID, "error", err)
		return err
	}
	return nil
}

// RemovePassenger detaches a traveler from its quote
func (uc *passengerUseCase) RemovePassenger(ctx context.Context, passengerID string) error {
	uc.logger.InfoContext(ctx, "Removing passenger in usecase", "id", passengerID)
	if passengerID == "" {
		return domain.ErrInvalidID
	}

	if err := uc.passengerRepo.Delete(ctx, passengerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "passenger not found", Code: 404}
		}
		return err
	}
	return nil
}

// ListByQuote retrieves passengers with their document gaps
func (uc *passengerUseCase) ListByQuote(ctx context.Context, quoteID string) ([]*PassengerInfo, error) {
	if quoteID == "" {
		return nil, domain.ErrInvalidID
	}

	passengers, err := uc.passengerRepo.ListByQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	// One international leg makes passport data mandatory for everyone
	international := false
	flights, err := uc.flightRepo.ListByQuote(ctx, quoteID)
	if err != nil {
		uc.logger.WarnContext(ctx, "Could not inspect legs for document requirements", "quoteID", quoteID, "error", err)
	} else {
		for _, flight := range flights {
			if flight.International {
				international = true
				break
			}
		}
	}

	infos := make([]*PassengerInfo, 0, len(passengers))
	for _, passenger := range passengers {
		infos = append(infos, &PassengerInfo{
			Passenger:        passenger,
			MissingDocuments: passenger.MissingDocuments(international),
		})
	}
	return infos, nil
}
