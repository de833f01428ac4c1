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

// AgendaUseCase defines business operations for tasks and appointments
type AgendaUseCase interface {
	CreateTask(ctx context.Context, task *model.Task) error
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, offset, limit int) ([]*model.Task, int, error)
	ListTasksByLead(ctx context.Context, leadID string) ([]*model.Task, error)

	CreateAppointment(ctx context.Context, appointment *model.Appointment) error
	UpdateAppointment(ctx context.Context, appointment *model.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
	ListAppointments(ctx context.Context, offset, limit int) ([]*model.Appointment, int, error)
}

// agendaUseCase implements the AgendaUseCase interface
type agendaUseCase struct {
	taskRepo        repository.Task
	appointmentRepo repository.Appointment
	leadRepo        repository.Lead
	logger          logger.LoggerInterface
}

// NewAgendaUseCase creates a new instance of agendaUseCase
func NewAgendaUseCase(
	taskRepo repository.Task,
	appointmentRepo repository.Appointment,
	leadRepo repository.Lead,
	appLogger logger.LoggerInterface,
) AgendaUseCase {
	return &agendaUseCase{
		taskRepo:        taskRepo,
		appointmentRepo: appointmentRepo,
		leadRepo:        leadRepo,
		logger:          appLogger,
	}
}

// CreateTask creates a follow-up task, optionally bound to a lead
func (uc *agendaUseCase) CreateTask(ctx context.Context, task *model.Task) error {
	uc.logger.InfoContext(ctx, "Creating task in usecase", "title", task.Title)
	if task.Title == "" {
		return &domain.AppError{Message: "task title is required", Code: 400}
	}

	if task.LeadID != nil && *task.LeadID != "" {
		if _, err := uc.leadRepo.GetByID(ctx, *task.LeadID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrLeadNotFound
			}
			return fmt.Errorf("error getting lead: %w", err)
		}
	}

	return uc.taskRepo.Create(ctx, task)
}

// UpdateTask modifies a task
func (uc *agendaUseCase) UpdateTask(ctx context.Context, task *model.Task) error {
	uc.logger.InfoContext(ctx, "Updating task in usecase", "id", task.ID)
	if task.ID == "" {
		return domain.ErrInvalidID
	}
	if _, err := uc.taskRepo.GetByID(ctx, task.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "task not found", Code: 404}
		}
		return fmt.Errorf("error getting task: %w", err)
	}
	return uc.taskRepo.Update(ctx, task)
}

// DeleteTask removes a task
func (uc *agendaUseCase) DeleteTask(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting task in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}
	if err := uc.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "task not found", Code: 404}
		}
		return err
	}
	return nil
}

// ListTasks retrieves a paginated list of tasks
func (uc *agendaUseCase) ListTasks(ctx context.Context, offset, limit int) ([]*model.Task, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.taskRepo.List(ctx, offset, limit)
}

// ListTasksByLead retrieves the tasks bound to a lead
func (uc *agendaUseCase) ListTasksByLead(ctx context.Context, leadID string) ([]*model.Task, error) {
	if leadID == "" {
		return nil, domain.ErrInvalidID
	}
	return uc.taskRepo.ListByLead(ctx, leadID)
}

// CreateAppointment schedules a meeting
func (uc *agendaUseCase) CreateAppointment(ctx context.Context, appointment *model.Appointment) error {
	uc.logger.InfoContext(ctx, "Creating appointment in usecase", "title", appointment.Title)
	if appointment.Title == "" {
		return &domain.AppError{Message: "appointment title is required", Code: 400}
	}
	if appointment.StartsAt.IsZero() {
		return &domain.AppError{Message: "appointment start time is required", Code: 400}
	}
	return uc.appointmentRepo.Create(ctx, appointment)
}

// UpdateAppointment modifies an appointment
func (uc *agendaUseCase) UpdateAppointment(ctx context.Context, appointment *model.Appointment) error {
	uc.logger.InfoContext(ctx, "Updating appointment in usecase", "id", appointment.ID)
	if appointment.ID == "" {
		return domain.ErrInvalidID
	}
	if _, err := uc.appointmentRepo.GetByID(ctx, appointment.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "appointment not found", Code: 404}
		}
		return fmt.Errorf("error getting appointment: %w", err)
	}
	return uc.appointmentRepo.Update(ctx, appointment)
}

// DeleteAppointment removes an appointment
func (uc *agendaUseCase) DeleteAppointment(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting appointment in usecase", "id", id)
	if id == "" {
		return domain.ErrInvalidID
	}
	if err := uc.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AppError{Message: "appointment not found", Code: 404}
		}
		return err
	}
	return nil
}

// ListAppointments retrieves a paginated list of appointments
func (uc *agendaUseCase) ListAppointments(ctx context.Context, offset, limit int) ([]*model.Appointment, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.appointmentRepo.List(ctx, offset, limit)
}
