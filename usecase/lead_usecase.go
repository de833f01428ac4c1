package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/kafka"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/redis"
)

// leadCacheKey holds the serialized lead list. The whole key is dropped on
// any change: lead volume is small and a coarse invalidation can never
// serve a stale card.
const leadCacheKey = "crm:leads"

// Lead change feed event types
const (
	LeadEventCreated   = "created"
	LeadEventUpdated   = "updated"
	LeadEventDeleted   = "deleted"
	LeadEventConverted = "converted"
)

// LeadChangedEvent is the message published to the lead change topic
type LeadChangedEvent struct {
	Event      string    `json:"event"`
	LeadID     string    `json:"lead_id"`
	QuoteID    string    `json:"quote_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LeadUseCase defines business operations for leads
type LeadUseCase interface {
	CreateLead(ctx context.Context, lead *model.Lead) error
	GetLeadByID(ctx context.Context, id string) (*model.Lead, error)
	UpdateLead(ctx context.Context, lead *model.Lead) error
	DeleteLead(ctx context.Context, id string) error
	ListLeads(ctx context.Context) ([]*model.Lead, error)
	// ConvertToQuote turns a lead into a quote on the COTAR column. The new
	// quote is created and the lead plus its tasks removed in one transaction.
	ConvertToQuote(ctx context.Context, leadID string) (*model.Quote, error)
}

// leadUseCase implements the LeadUseCase interface
type leadUseCase struct {
	leadRepo  repository.Lead
	taskRepo  repository.Task
	quoteUC   QuoteUseCase
	cache     redis.RedisClient
	producer  kafka.KafkaClient
	topic     string
	cacheTTL  time.Duration
	logger    logger.LoggerInterface
}

// NewLeadUseCase creates a new instance of leadUseCase
func NewLeadUseCase(
	leadRepo repository.Lead,
	taskRepo repository.Task,
	quoteUC QuoteUseCase,
	cache redis.RedisClient,
	producer kafka.KafkaClient,
	topic string,
	cacheTTL time.Duration,
	appLogger logger.LoggerInterface,
) LeadUseCase {
	return &leadUseCase{
		leadRepo: leadRepo,
		taskRepo: taskRepo,
		quoteUC:  quoteUC,
		cache:    cache,
		producer: producer,
		topic:    topic,
		cacheTTL: cacheTTL,
		logger:   appLogger,
	}
}

// notifyChange drops the cached lead list and publishes the change event.
// Failures here never fail the write: the database is the source of truth
// and the feed is advisory.
func (uc *leadUseCase) notifyChange(ctx context.Context, event LeadChangedEvent) {
	event.OccurredAt = time.Now()

	if uc.cache != nil {
		if err := uc.cache.Del(ctx, leadCacheKey); err != nil {
			uc.logger.WarnContext(ctx, "Failed to invalidate lead cache", "error", err)
		}
	}

	if uc.producer != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			uc.logger.ErrorContext(ctx, "Failed to marshal lead event", "event", event.Event, "error", err)
			return
		}
		if err := uc.producer.Produce(ctx, uc.topic, payload); err != nil {
			uc.logger.WarnContext(ctx, "Failed to publish lead event", "event", event.Event, "leadID", event.LeadID, "error", err)
		}
	}
}

// CreateLead creates a new lead
func (uc *leadUseCase) CreateLead(ctx context.Context, lead *model.Lead) error {
	uc.logger.InfoContext(ctx, "Creating lead in usecase", "clientID", lead.ClientID)
	if lead.ClientID == "" {
		uc.logger.WarnContext(ctx, "Lead creation requires a resolved client")
		return domain.ErrClientRequired
	}

	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create lead in repository", "error", err)
		return err
	}

	uc.notifyChange(ctx, LeadChangedEvent{Event: LeadEventCreated, LeadID: lead.ID})
	return nil
}

// GetLeadByID retrieves a lead by ID
func (uc *leadUseCase) GetLeadByID(ctx context.Context, id string) (*model.Lead, error) {
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting lead", "id", id, "error", err)
		return nil, fmt.Errorf("error getting lead: %w", err)
	}
	return lead, nil
}

// UpdateLead modifies an existing lead
func (uc *leadUseCase) UpdateLead(ctx context.Context, lead *model.Lead) error {
	uc.logger.InfoContext(ctx, "Updating lead in usecase", "id", lead.ID)
	if lead.ID == "" {
		return domain.ErrInvalidID
	}

	if _, err := uc.leadRepo.GetByID(ctx, lead.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrLeadNotFound
		}
		return fmt.Errorf("error getting lead: %w", err)
	}

	if err := uc.leadRepo.Update(ctx, lead); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to update lead", "id", lead.ID, "error", err)
		return err
	}

	uc.notifyChange(ctx, LeadChangedEvent{Event: LeadEventUpdated, LeadID: lead.ID})
	return nil
}

// DeleteLead removes a lead and the tasks bound to it
func (uc *leadUseCase) DeleteLead(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting lead in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}

	err := uc.leadRepo.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.taskRepo.DeleteByLead(txCtx, id); err != nil {
			return err
		}
		return uc.leadRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrLeadNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to delete lead", "id", id, "error", err)
		return err
	}

	uc.notifyChange(ctx, LeadChangedEvent{Event: LeadEventDeleted, LeadID: id})
	return nil
}

// ListLeads retrieves every lead, serving from the cache when it is warm
func (uc *leadUseCase) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, leadCacheKey)
		if err == nil && cached != "" {
			var leads []*model.Lead
			if err := json.Unmarshal([]byte(cached), &leads); err == nil {
				uc.logger.InfoContext(ctx, "Serving leads from cache", "count", len(leads))
				return leads, nil
			}
			uc.logger.WarnContext(ctx, "Dropping unreadable lead cache entry")
			_ = uc.cache.Del(ctx, leadCacheKey)
		}
	}

	leads, err := uc.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(leads); err == nil {
			if err := uc.cache.Set(ctx, leadCacheKey, payload, uc.cacheTTL); err != nil {
				uc.logger.WarnContext(ctx, "Failed to warm lead cache", "error", err)
			}
		}
	}
	return leads, nil
}

// ConvertToQuote turns a lead into a quote on the COTAR column
func (uc *leadUseCase) ConvertToQuote(ctx context.Context, leadID string) (*model.Quote, error) {
	uc.logger.InfoContext(ctx, "Converting lead to quote", "leadID", leadID)
	if leadID == "" {
		return nil, domain.ErrInvalidID
	}

	lead, err := uc.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("error getting lead: %w", err)
	}

	clientID := lead.ClientID
	quote := &model.Quote{
		CompanyID: lead.CompanyID,
		ClientID:  &clientID,
		Status:    model.StatusCotar,
		Notes:     lead.Notes,
	}

	err = uc.leadRepo.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.quoteUC.CreateQuote(txCtx, quote); err != nil {
			uc.logger.ErrorContext(ctx, "Error creating quote from lead", "leadID", leadID, "error", err)
			return err
		}
		if err := uc.taskRepo.DeleteByLead(txCtx, leadID); err != nil {
			uc.logger.ErrorContext(ctx, "Error deleting lead tasks", "leadID", leadID, "error", err)
			return err
		}
		if err := uc.leadRepo.Delete(txCtx, leadID); err != nil {
			uc.logger.ErrorContext(ctx, "Error deleting converted lead", "leadID", leadID, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Lead converted to quote", "leadID", leadID, "quoteID", quote.ID, "code", quote.Code)
	uc.notifyChange(ctx, LeadChangedEvent{Event: LeadEventConverted, LeadID: leadID, QuoteID: quote.ID})
	return quote, nil
}
