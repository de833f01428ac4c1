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

// Sale presentation modes. Quotes still being negotiated show a single
// total; approved and launched quotes expose the itemized lines.
const (
	SaleModeSimplified = "simplificado"
	SaleModeItemized   = "detalhado"
)

// Sale is the sale tab view of a quote
type Sale struct {
	QuoteID  string
	Mode     string
	Value    float64
	Cost     float64
	Launched bool
	// Items is only populated in itemized mode
	Items []*model.SaleItem
}

// SaleUseCase defines business operations for the sale tab and the launch flow
type SaleUseCase interface {
	GetSale(ctx context.Context, quoteID string) (*Sale, error)
	// SetSimplifiedFigures stores the single value/cost pair of a quote still
	// being negotiated. Approved and launched quotes price through their
	// itemized lines and reject this call.
	SetSimplifiedFigures(ctx context.Context, quoteID string, value, cost float64) error
	AddItem(ctx context.Context, item *model.SaleItem) error
	UpdateItem(ctx context.Context, item *model.SaleItem) error
	RemoveItem(ctx context.Context, itemID string) error
	// LaunchSale copies the quote's drafted lines into the ledger and marks
	// the quote LANÇADO. Everything happens in one transaction.
	LaunchSale(ctx context.Context, quoteID string) error
	// UnlaunchSale deletes the quote's ledger rows, zeroes its value and
	// moves it to targetStatus. Drafted sale lines survive so the sale can
	// be launched again later.
	UnlaunchSale(ctx context.Context, quoteID string, targetStatus string) error
}

// saleUseCase implements the SaleUseCase interface
type saleUseCase struct {
	quoteRepo      repository.Quote
	saleItemRepo   repository.SaleItem
	payableRepo    repository.AccountPayable
	receivableRepo repository.AccountReceivable
	logger         logger.LoggerInterface
}

// NewSaleUseCase creates a new instance of saleUseCase
func NewSaleUseCase(
	quoteRepo repository.Quote,
	saleItemRepo repository.SaleItem,
	payableRepo repository.AccountPayable,
	receivableRepo repository.AccountReceivable,
	appLogger logger.LoggerInterface,
) SaleUseCase {
	return &saleUseCase{
		quoteRepo:      quoteRepo,
		saleItemRepo:   saleItemRepo,
		payableRepo:    payableRepo,
		receivableRepo: receivableRepo,
		logger:         appLogger,
	}
}

// saleMode picks the presentation mode for a status
func saleMode(status string) string {
	if status == model.StatusAprovado || status == model.StatusLancado {
		return SaleModeItemized
	}
	return SaleModeSimplified
}

// GetSale returns the sale tab view of a quote
func (uc *saleUseCase) GetSale(ctx context.Context, quoteID string) (*Sale, error) {
	if quoteID == "" {
		return nil, domain.ErrInvalidID
	}

	quote, err := uc.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("error getting quote: %w", err)
	}

	sale := &Sale{
		QuoteID:  quote.ID,
		Mode:     saleMode(quote.Status),
		Value:    quote.Value,
		Cost:     quote.Cost,
		Launched: quote.IsLaunched(),
	}

	if sale.Mode == SaleModeItemized {
		items, err := uc.saleItemRepo.ListByQuote(ctx, quoteID, "")
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}
	return sale, nil
}

// SetSimplifiedFigures stores the simplified value and cost of a quote
func (uc *saleUseCase) SetSimplifiedFigures(ctx context.Context, quoteID string, value, cost float64) error {
	uc.logger.InfoContext(ctx, "Setting simplified sale figures", "quoteID", quoteID, "value", value, "cost", cost)
	if quoteID == "" {
		return domain.ErrInvalidID
	}
	if value < 0 || cost < 0 {
		return &domain.AppError{Message: "sale figures cannot be negative", Code: 400}
	}

	quote, err := uc.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("error getting quote: %w", err)
	}
	if saleMode(quote.Status) != SaleModeSimplified {
		uc.logger.WarnContext(ctx, "Simplified figures rejected for itemized sale", "quoteID", quoteID, "status", quote.Status)
		return &domain.AppError{Message: "approved and launched quotes price through their itemized lines", Code: 400}
	}

	return uc.quoteRepo.SetTotals(ctx, quoteID, value, cost)
}

// AddItem attaches a drafted sale line to a quote and refreshes its totals
func (uc *saleUseCase) AddItem(ctx context.Context, item *model.SaleItem) error {
	uc.logger.InfoContext(ctx, "Adding sale item", "quoteID", item.QuoteID, "kind", item.Kind)
	if item.QuoteID == "" {
		return domain.ErrInvalidID
	}
	if item.Kind != model.SaleItemCost && item.Kind != model.SaleItemRevenue {
		uc.logger.WarnContext(ctx, "Invalid sale item kind", "kind", item.Kind)
		return &domain.AppError{Message: "sale item kind must be CUSTO or VENDA", Code: 400}
	}

	quote, err := uc.quoteRepo.GetByID(ctx, item.QuoteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("error getting quote: %w", err)
	}

	return uc.quoteRepo.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.saleItemRepo.Create(txCtx, item); err != nil {
			return err
		}
		return uc.refreshTotals(txCtx, quote)
	})
}

// UpdateItem modifies a drafted sale line and refreshes the quote totals
func (uc *saleUseCase) UpdateItem(ctx context.Context, item *model.SaleItem) error {
	uc.logger.InfoContext(ctx, "Updating sale item", "id", item.ID)
	if item.ID == "" {
		return domain.ErrInvalidID
	}

	existing, err := uc.saleItemRepo.GetByID(ctx, item.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "sale item not found", Code: 404}
		}
		return fmt.Errorf("error getting sale item: %w", err)
	}
	item.QuoteID = existing.QuoteID

	quote, err := uc.quoteRepo.GetByID(ctx, existing.QuoteID)
	if err != nil {
		return fmt.Errorf("error getting quote: %w", err)
	}

	return uc.quoteRepo.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.saleItemRepo.Update(txCtx, item); err != nil {
			return err
		}
		return uc.refreshTotals(txCtx, quote)
	})
}

// RemoveItem deletes a drafted sale line and refreshes the quote totals
func (uc *saleUseCase) RemoveItem(ctx context.Context, itemID string) error {
	uc.logger.InfoContext(ctx, "Removing sale item", "id", itemID)
	if itemID == "" {
		return domain.ErrInvalidID
	}

	existing, err := uc.saleItemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "sale item not found", Code: 404}
		}
		return fmt.Errorf("error getting sale item: %w", err)
	}

	quote, err := uc.quoteRepo.GetByID(ctx, existing.QuoteID)
	if err != nil {
		return fmt.Errorf("error getting quote: %w", err)
	}

	return uc.quoteRepo.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.saleItemRepo.Delete(txCtx, itemID); err != nil {
			return err
		}
		return uc.refreshTotals(txCtx, quote)
	})
}

// refreshTotals recomputes the quote's value and cost from its drafted lines.
// Launched quotes keep the value that went into the ledger.
func (uc *saleUseCase) refreshTotals(ctx context.Context, quote *model.Quote) error {
	if quote.IsLaunched() {
		return nil
	}

	items, err := uc.saleItemRepo.ListByQuote(ctx, quote.ID, "")
	if err != nil {
		return err
	}

	var value, cost float64
	for _, item := range items {
		switch item.Kind {
		case model.SaleItemRevenue:
			value += item.Value
		case model.SaleItemCost:
			cost += item.Value
		}
	}

	return uc.quoteRepo.SetTotals(ctx, quote.ID, value, cost)
}

// LaunchSale copies the quote's drafted lines into the ledger and marks it LANÇADO
func (uc *saleUseCase) LaunchSale(ctx context.Context, quoteID string) error {
	uc.logger.InfoContext(ctx, "Launching sale", "quoteID", quoteID)
	if quoteID == "" {
		return domain.ErrInvalidID
	}

	quote, err := uc.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("error getting quote: %w", err)
	}
	if quote.IsLaunched() {
		uc.logger.WarnContext(ctx, "Quote is already launched", "quoteID", quoteID)
		return &domain.AppError{Message: "quote sale is already launched", Code: 400}
	}

	items, err := uc.saleItemRepo.ListByQuote(ctx, quoteID, "")
	if err != nil {
		return err
	}

	err = uc.quoteRepo.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		var value float64
		originID := quote.ID

		for _, item := range items {
			switch item.Kind {
			case model.SaleItemCost:
				payable := &model.AccountPayable{
					CompanyID:       quote.CompanyID,
					Description:     item.Description,
					Value:           item.Value,
					DueDate:         item.DueDate,
					Installments:    item.Installments,
					SupplierID:      item.SupplierID,
					CategoryID:      item.CategoryID,
					PaymentMethodID: item.PaymentMethodID,
					Origin:          model.OriginQuote,
					OriginID:        &originID,
				}
				if err := uc.payableRepo.Create(txCtx, payable); err != nil {
					return err
				}
			case model.SaleItemRevenue:
				clientID := item.ClientID
				if clientID == nil {
					clientID = quote.ClientID
				}
				receivable := &model.AccountReceivable{
					CompanyID:       quote.CompanyID,
					Description:     item.Description,
					Value:           item.Value,
					DueDate:         item.DueDate,
					Installments:    item.Installments,
					ClientID:        clientID,
					CategoryID:      item.CategoryID,
					PaymentMethodID: item.PaymentMethodID,
					Origin:          model.OriginQuote,
					OriginID:        &originID,
				}
				if err := uc.receivableRepo.Create(txCtx, receivable); err != nil {
					return err
				}
				value += item.Value
			}
		}

		// A quote priced without itemized lines launches its header value
		// as a single receivable
		if len(items) == 0 {
			if quote.Value <= 0 {
				return &domain.AppError{Message: "quote has no value to launch", Code: 400}
			}
			receivable := &model.AccountReceivable{
				CompanyID:    quote.CompanyID,
				Description:  fmt.Sprintf("Venda cotação %s", quote.Code),
				Value:        quote.Value,
				Installments: 1,
				ClientID:     quote.ClientID,
				Origin:       model.OriginQuote,
				OriginID:     &originID,
			}
			if err := uc.receivableRepo.Create(txCtx, receivable); err != nil {
				return err
			}
			value = quote.Value
		}

		now := time.Now()
		return uc.quoteRepo.SetSaleState(txCtx, quote.ID, value, model.StatusLancado, &now)
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to launch sale", "quoteID", quoteID, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Sale launched successfully", "quoteID", quoteID)
	return nil
}

// UnlaunchSale deletes the quote's ledger rows, zeroes its value and moves it
// to targetStatus. Drafted sale lines are kept.
func (uc *saleUseCase) UnlaunchSale(ctx context.Context, quoteID string, targetStatus string) error {
	uc.logger.InfoContext(ctx, "Un-launching sale", "quoteID", quoteID, "targetStatus", targetStatus)
	if quoteID == "" {
		return domain.ErrInvalidID
	}
	if targetStatus == "" {
		targetStatus = model.StatusAprovado
	}
	if !model.IsValidQuoteStatus(targetStatus) || targetStatus == model.StatusLancado {
		return domain.ErrInvalidStatus
	}

	quote, err := uc.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteNotFound
		}
		return fmt.Errorf("error getting quote: %w", err)
	}
	if !quote.IsLaunched() {
		uc.logger.WarnContext(ctx, "Quote has no launched sale", "quoteID", quoteID)
		return domain.ErrQuoteNotLaunched
	}

	err = uc.quoteRepo.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.payableRepo.DeleteByOrigin(txCtx, model.OriginQuote, quote.ID); err != nil {
			return err
		}
		if err := uc.receivableRepo.DeleteByOrigin(txCtx, model.OriginQuote, quote.ID); err != nil {
			return err
		}
		return uc.quoteRepo.SetSaleState(txCtx, quote.ID, 0, targetStatus, nil)
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to un-launch sale", "quoteID", quoteID, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Sale un-launched successfully", "quoteID", quoteID, "status", targetStatus)
	return nil
}
