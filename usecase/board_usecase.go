package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"
)

// Board column keys, in display order. Launched quotes have no column of
// their own: they sit under APROVADO flagged as launched.
const (
	ColumnLead              = model.StatusLead
	ColumnCotar             = model.StatusCotar
	ColumnAguardandoCliente = model.StatusAguardandoCliente
	ColumnAprovado          = model.StatusAprovado
	ColumnReprovado         = model.StatusReprovado
)

// BoardColumns lists the five pipeline columns in display order
var BoardColumns = []string{
	ColumnLead,
	ColumnCotar,
	ColumnAguardandoCliente,
	ColumnAprovado,
	ColumnReprovado,
}

// Card kinds
const (
	CardKindLead  = "lead"
	CardKindQuote = "quote"
)

// BoardCard is one draggable card on the pipeline
type BoardCard struct {
	ID         string
	Kind       string
	Code       string
	Title      string
	ClientName string
	Value      float64
	// Launched marks LANÇADO quotes inside the APROVADO column
	Launched  bool
	CreatedAt time.Time
}

// BoardColumn is one pipeline column with its cards and value total
type BoardColumn struct {
	Key   string
	Cards []BoardCard
	// TotalValue sums the card values; lead cards always contribute zero
	TotalValue float64
}

// Board is the whole Kanban view
type Board struct {
	Columns []BoardColumn
}

// MoveCardInput describes a drag-and-drop between columns
type MoveCardInput struct {
	CardID string
	Kind   string
	Target string
	// Value and Cost carry the simplified figures submitted with a drop on
	// APROVADO; nil leaves the stored figure untouched
	Value *float64
	Cost  *float64
	// Confirmed acknowledges a destructive move away from a launched sale
	Confirmed bool
}

// MoveCardResult reports what the move produced
type MoveCardResult struct {
	// QuoteID points at the quote after the move; conversions produce a new one
	QuoteID string
	Status  string
}

// BoardUseCase defines the pipeline operations
type BoardUseCase interface {
	GetBoard(ctx context.Context) (*Board, error)
	MoveCard(ctx context.Context, input MoveCardInput) (*MoveCardResult, error)
}

// boardUseCase implements the BoardUseCase interface
type boardUseCase struct {
	quoteRepo repository.Quote
	leadUC    LeadUseCase
	saleUC    SaleUseCase
	logger    logger.LoggerInterface
}

// NewBoardUseCase creates a new instance of boardUseCase
func NewBoardUseCase(quoteRepo repository.Quote, leadUC LeadUseCase, saleUC SaleUseCase, appLogger logger.LoggerInterface) BoardUseCase {
	return &boardUseCase{
		quoteRepo: quoteRepo,
		leadUC:    leadUC,
		saleUC:    saleUC,
		logger:    appLogger,
	}
}

// columnForStatus maps a stored quote status onto its display column
func columnForStatus(status string) string {
	if status == model.StatusLancado {
		return ColumnAprovado
	}
	return status
}

// GetBoard assembles the five-column pipeline view
func (uc *boardUseCase) GetBoard(ctx context.Context) (*Board, error) {
	uc.logger.InfoContext(ctx, "Assembling pipeline board")

	leads, err := uc.leadUC.ListLeads(ctx)
	if err != nil {
		return nil, err
	}

	quotes, err := uc.quoteRepo.ListByStatus(ctx, model.QuoteStatuses...)
	if err != nil {
		return nil, err
	}

	byColumn := make(map[string][]BoardCard, len(BoardColumns))
	for _, lead := range leads {
		byColumn[ColumnLead] = append(byColumn[ColumnLead], BoardCard{
			ID:         lead.ID,
			Kind:       CardKindLead,
			ClientName: lead.Client.FullName(),
			CreatedAt:  lead.CreatedAt,
		})
	}
	for _, quote := range quotes {
		column := columnForStatus(quote.Status)
		byColumn[column] = append(byColumn[column], BoardCard{
			ID:         quote.ID,
			Kind:       CardKindQuote,
			Code:       quote.Code,
			Title:      quote.Title,
			ClientName: quote.ClientName,
			Value:      quote.Value,
			Launched:   quote.IsLaunched(),
			CreatedAt:  quote.CreatedAt,
		})
	}

	board := &Board{Columns: make([]BoardColumn, 0, len(BoardColumns))}
	for _, key := range BoardColumns {
		column := BoardColumn{Key: key, Cards: byColumn[key]}
		for _, card := range column.Cards {
			column.TotalValue += card.Value
		}
		board.Columns = append(board.Columns, column)
	}
	return board, nil
}

// MoveCard applies the pipeline transition rules to a drag-and-drop
func (uc *boardUseCase) MoveCard(ctx context.Context, input MoveCardInput) (*MoveCardResult, error) {
	uc.logger.InfoContext(ctx, "Moving pipeline card", "cardID", input.CardID, "kind", input.Kind, "target", input.Target)
	if input.CardID == "" {
		return nil, domain.ErrInvalidID
	}

	validTarget := false
	for _, key := range BoardColumns {
		if key == input.Target {
			validTarget = true
			break
		}
	}
	if !validTarget {
		uc.logger.WarnContext(ctx, "Invalid target column", "target", input.Target)
		return nil, domain.ErrInvalidStatus
	}

	switch input.Kind {
	case CardKindLead:
		return uc.moveLead(ctx, input)
	case CardKindQuote:
		return uc.moveQuote(ctx, input)
	default:
		return nil, &domain.AppError{Message: "card kind must be lead or quote", Code: 400}
	}
}

// moveLead handles lead cards: the only legal drop is COTAR, which converts
func (uc *boardUseCase) moveLead(ctx context.Context, input MoveCardInput) (*MoveCardResult, error) {
	if input.Target == ColumnLead {
		// Dropping a lead back on its own column is a no-op
		return &MoveCardResult{Status: model.StatusLead}, nil
	}
	if input.Target != ColumnCotar {
		uc.logger.WarnContext(ctx, "Lead dropped on an illegal column", "leadID", input.CardID, "target", input.Target)
		return nil, domain.ErrLeadOnlyConvertsToQuote
	}

	quote, err := uc.leadUC.ConvertToQuote(ctx, input.CardID)
	if err != nil {
		return nil, err
	}
	return &MoveCardResult{QuoteID: quote.ID, Status: quote.Status}, nil
}

// moveQuote handles quote cards, including the launched-sale cascade
func (uc *boardUseCase) moveQuote(ctx context.Context, input MoveCardInput) (*MoveCardResult, error) {
	if input.Target == ColumnLead {
		uc.logger.WarnContext(ctx, "Quote dropped on the lead column", "quoteID", input.CardID)
		return nil, domain.ErrQuoteCannotRegressToLead
	}

	quote, err := uc.quoteRepo.GetByID(ctx, input.CardID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("error getting quote: %w", err)
	}

	if quote.IsLaunched() {
		if input.Target == ColumnAprovado {
			// Launched quotes already render under APROVADO
			return &MoveCardResult{QuoteID: quote.ID, Status: quote.Status}, nil
		}
		if !input.Confirmed {
			uc.logger.WarnContext(ctx, "Unconfirmed move away from a launched sale", "quoteID", quote.ID, "target", input.Target)
			return nil, domain.ErrLaunchedMoveNeedsConfirmation
		}
		if err := uc.saleUC.UnlaunchSale(ctx, quote.ID, input.Target); err != nil {
			return nil, err
		}
		return &MoveCardResult{QuoteID: quote.ID, Status: input.Target}, nil
	}

	if quote.Status == input.Target {
		return &MoveCardResult{QuoteID: quote.ID, Status: quote.Status}, nil
	}

	// A drop on APROVADO closes the negotiation: the simplified figures
	// submitted with the card become the quote's value and cost
	value, cost := quote.Value, quote.Cost
	captureFigures := input.Target == ColumnAprovado && (input.Value != nil || input.Cost != nil)
	if captureFigures {
		if input.Value != nil {
			value = *input.Value
		}
		if input.Cost != nil {
			cost = *input.Cost
		}
		if value < 0 || cost < 0 {
			return nil, &domain.AppError{Message: "sale figures cannot be negative", Code: 400}
		}
	}

	if err := uc.quoteRepo.UpdateStatus(ctx, quote.ID, input.Target); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, err
	}
	if captureFigures {
		if err := uc.quoteRepo.SetTotals(ctx, quote.ID, value, cost); err != nil {
			return nil, err
		}
	}
	return &MoveCardResult{QuoteID: quote.ID, Status: input.Target}, nil
}
