// Package usecase contains business logic for the CRM pipeline
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"
)

// quoteCodeAlphabet excludes look-alike characters so codes survive being
// read over the phone
const quoteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// quoteCodeLength is the fixed width of the human-facing reference
const quoteCodeLength = 6

// quoteCodeMaxAttempts bounds the collision re-roll loop before falling
// back to a timestamp-derived code
const quoteCodeMaxAttempts = 10

// QuoteUseCase defines business operations for quotes
type QuoteUseCase interface {
	CreateQuote(ctx context.Context, quote *model.Quote) error
	GetQuoteByID(ctx context.Context, id string) (*model.Quote, error)
	GetQuoteFull(ctx context.Context, id string) (*model.Quote, error)
	UpdateQuote(ctx context.Context, quote *model.Quote) error
	DeleteQuote(ctx context.Context, id string) error
	ListQuotes(ctx context.Context, offset, limit int) ([]*model.Quote, int, error)
}

// quoteUseCase implements the QuoteUseCase interface
type quoteUseCase struct {
	quoteRepo  repository.Quote
	clientRepo repository.Client
	logger     logger.LoggerInterface
}

// NewQuoteUseCase creates a new instance of quoteUseCase
func NewQuoteUseCase(quoteRepo repository.Quote, clientRepo repository.Client, appLogger logger.LoggerInterface) QuoteUseCase {
	return &quoteUseCase{
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
		logger:     appLogger,
	}
}

// randomQuoteCode draws a 6-character code from the unambiguous alphabet
func randomQuoteCode() string {
	var sb strings.Builder
	for i := 0; i < quoteCodeLength; i++ {
		sb.WriteByte(quoteCodeAlphabet[rand.IntN(len(quoteCodeAlphabet))])
	}
	return sb.String()
}

// fallbackQuoteCode derives a code from the current instant. Used when
// random generation keeps colliding; uniqueness still comes from the
// database constraint.
func fallbackQuoteCode(now time.Time) string {
	encoded := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	if len(encoded) > quoteCodeLength {
		encoded = encoded[len(encoded)-quoteCodeLength:]
	}
	return encoded
}

// generateCode produces a quote code that is free at generation time,
// re-rolling on collision and falling back to a timestamp-derived code
func (uc *quoteUseCase) generateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < quoteCodeMaxAttempts; attempt++ {
		code := randomQuoteCode()
		exists, err := uc.quoteRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("error checking quote code: %w", err)
		}
		if !exists {
			return code, nil
		}
		uc.logger.WarnContext(ctx, "Quote code collision, re-rolling", "code", code, "attempt", attempt+1)
	}
	code := fallbackQuoteCode(time.Now())
	uc.logger.WarnContext(ctx, "Falling back to timestamp-derived quote code", "code", code)
	return code, nil
}

// CreateQuote creates a new quote with a fresh reference code
func (uc *quoteUseCase) CreateQuote(ctx context.Context, quote *model.Quote) error {
	uc.logger.InfoContext(ctx, "Creating quote in usecase", "title", quote.Title)

	if quote.ClientID == nil || *quote.ClientID == "" {
		uc.logger.WarnContext(ctx, "Quote creation requires a resolved client")
		return domain.ErrClientRequired
	}

	// The client reference is authoritative; the cached display name only
	// exists to keep pipeline cards cheap to render
	client, err := uc.clientRepo.GetByID(ctx, *quote.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Client not found for quote", "clientID", *quote.ClientID)
			return domain.ErrClientNotFound
		}
		uc.logger.ErrorContext(ctx, "Error checking client for quote", "clientID", *quote.ClientID, "error", err)
		return fmt.Errorf("error checking client: %w", err)
	}
	quote.ClientName = client.FullName()

	if quote.Status == "" {
		quote.Status = model.StatusCotar
	}
	if !model.IsValidQuoteStatus(quote.Status) {
		uc.logger.WarnContext(ctx, "Invalid status on quote creation", "status", quote.Status)
		return domain.ErrInvalidStatus
	}

	if quote.TotalPassengers() > model.MaxPassengersPerQuote {
		uc.logger.WarnContext(ctx, "Passenger counters exceed the limit", "total", quote.TotalPassengers())
		return domain.ErrPassengerLimitExceeded
	}

	code, err := uc.generateCode(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to generate quote code", "error", err)
		return err
	}
	quote.Code = code

	if err := uc.quoteRepo.Create(ctx, quote); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create quote in repository", "code", quote.Code, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Quote created successfully in usecase", "id", quote.ID, "code", quote.Code)
	return nil
}

// GetQuoteByID retrieves a quote by ID
func (uc *quoteUseCase) GetQuoteByID(ctx context.Context, id string) (*model.Quote, error) {
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	quote, err := uc.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting quote", "id", id, "error", err)
		return nil, fmt.Errorf("error getting quote: %w", err)
	}
	return quote, nil
}

// GetQuoteFull retrieves a quote with flights, passengers and sale items loaded
func (uc *quoteUseCase) GetQuoteFull(ctx context.Context, id string) (*model.Quote, error) {
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	quote, err := uc.quoteRepo.GetByIDFull(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting full quote", "id", id, "error", err)
		return nil, fmt.Errorf("error getting quote: %w", err)
	}
	return quote, nil
}

// UpdateQuote modifies quote header fields. The reference code and the
// status never change through this path: the code is immutable and status
// moves go through the pipeline rules.
func (uc *quoteUseCase) UpdateQuote(ctx context.Context, quote *model.Quote) error {
	uc.logger.InfoContext(ctx, "Updating quote in usecase", "id", quote.ID)
	if quote.ID == "" {
		return domain.ErrInvalidID
	}

	existing, err := uc.quoteRepo.GetByID(ctx, quote.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("error getting quote: %w", err)
	}

	if quote.ClientID != nil && (existing.ClientID == nil || *quote.ClientID != *existing.ClientID) {
		client, err := uc.clientRepo.GetByID(ctx, *quote.ClientID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrClientNotFound
			}
			return fmt.Errorf("error checking client: %w", err)
		}
		quote.ClientName = client.FullName()
	}

	if quote.TotalPassengers() > model.MaxPassengersPerQuote {
		uc.logger.WarnContext(ctx, "Passenger counters exceed the limit", "id", quote.ID, "total", quote.TotalPassengers())
		return domain.ErrPassengerLimitExceeded
	}

	quote.Code = existing.Code
	quote.Status = existing.Status

	if err := uc.quoteRepo.Update(ctx, quote); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to update quote", "id", quote.ID, "error", err)
		return err
	}
	return nil
}

// DeleteQuote removes a quote
func (uc *quoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting quote in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}

	if err := uc.quoteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to delete quote", "id", id, "error", err)
		return err
	}
	return nil
}

// ListQuotes retrieves a paginated list of quotes
func (uc *quoteUseCase) ListQuotes(ctx context.Context, offset, limit int) ([]*model.Quote, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.quoteRepo.List(ctx, offset, limit)
}
