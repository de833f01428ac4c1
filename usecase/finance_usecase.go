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

// FinanceUseCase defines business operations for the ledger. Rows that were
// launched from a quote can be settled or edited here, but removing them
// wholesale goes through the quote's un-launch flow.
type FinanceUseCase interface {
	CreatePayable(ctx context.Context, account *model.AccountPayable) error
	UpdatePayable(ctx context.Context, account *model.AccountPayable) error
	DeletePayable(ctx context.Context, id string) error
	ListPayables(ctx context.Context, offset, limit int) ([]*model.AccountPayable, int, error)

	CreateReceivable(ctx context.Context, account *model.AccountReceivable) error
	UpdateReceivable(ctx context.Context, account *model.AccountReceivable) error
	DeleteReceivable(ctx context.Context, id string) error
	ListReceivables(ctx context.Context, offset, limit int) ([]*model.AccountReceivable, int, error)
}

// financeUseCase implements the FinanceUseCase interface
type financeUseCase struct {
	payableRepo    repository.AccountPayable
	receivableRepo repository.AccountReceivable
	logger         logger.LoggerInterface
}

// NewFinanceUseCase creates a new instance of financeUseCase
func NewFinanceUseCase(
	payableRepo repository.AccountPayable,
	receivableRepo repository.AccountReceivable,
	appLogger logger.LoggerInterface,
) FinanceUseCase {
	return &financeUseCase{
		payableRepo:    payableRepo,
		receivableRepo: receivableRepo,
		logger:         appLogger,
	}
}

func validateLedgerRow(description string, value float64) error {
	if description == "" {
		return &domain.AppError{Message: "ledger row description is required", Code: 400}
	}
	if value <= 0 {
		return &domain.AppError{Message: "ledger row value must be positive", Code: 400}
	}
	return nil
}

// CreatePayable adds a manual row to the payable side of the ledger
func (uc *financeUseCase) CreatePayable(ctx context.Context, account *model.AccountPayable) error {
	uc.logger.InfoContext(ctx, "Creating payable in usecase", "description", account.Description)
	if err := validateLedgerRow(account.Description, account.Value); err != nil {
		return err
	}
	if account.Installments <= 0 {
		account.Installments = 1
	}
	return uc.payableRepo.Create(ctx, account)
}

// UpdatePayable modifies a payable row
func (uc *financeUseCase) UpdatePayable(ctx context.Context, account *model.AccountPayable) error {
	uc.logger.InfoContext(ctx, "Updating payable in usecase", "id", account.ID)
	if account.ID == "" {
		return domain.ErrInvalidID
	}
	if _, err := uc.payableRepo.GetByID(ctx, account.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "account payable not found", Code: 404}
		}
		return fmt.Errorf("error getting account payable: %w", err)
	}
	return uc.payableRepo.Update(ctx, account)
}

// DeletePayable removes a payable row
func (uc *financeUseCase) DeletePayable(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting payable in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}
	if err := uc.payableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "account payable not found", Code: 404}
		}
		return err
	}
	return nil
}

// ListPayables retrieves a paginated list of payable rows
func (uc *financeUseCase) ListPayables(ctx context.Context, offset, limit int) ([]*model.AccountPayable, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.payableRepo.List(ctx, offset, limit)
}

// CreateReceivable adds a manual row to the receivable side of the ledger
func (uc *financeUseCase) CreateReceivable(ctx context.Context, account *model.AccountReceivable) error {
	uc.logger.InfoContext(ctx, "Creating receivable in usecase", "description", account.Description)
	if err := validateLedgerRow(account.Description, account.Value); err != nil {
		return err
	}
	if account.Installments <= 0 {
		account.Installments = 1
	}
	return uc.receivableRepo.Create(ctx, account)
}

// UpdateReceivable modifies a receivable row
func (uc *financeUseCase) UpdateReceivable(ctx context.Context, account *model.AccountReceivable) error {
	uc.logger.InfoContext(ctx, "Updating receivable in usecase", "id", account.ID)
	if account.ID == "" {
		return domain.ErrInvalidID
	}
	if _, err := uc.receivableRepo.GetByID(ctx, account.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "account receivable not found", Code: 404}
		}
		return fmt.Errorf("error getting account receivable: %w", err)
	}
	return uc.receivableRepo.Update(ctx, account)
}

// DeleteReceivable removes a receivable row
func (uc *financeUseCase) DeleteReceivable(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting receivable in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}
	if err := uc.receivableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "account receivable not found", Code: 404}
		}
		return err
	}
	return nil
}

// ListReceivables retrieves a paginated list of receivable rows
func (uc *financeUseCase) ListReceivables(ctx context.Context, offset, limit int) ([]*model.AccountReceivable, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.receivableRepo.List(ctx, offset, limit)
}
