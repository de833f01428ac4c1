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

// taskRepository implements the Task repository interface using PostgreSQL
type taskRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewTaskRepository creates a new instance of taskRepository
func NewTaskRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Task {
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	r.logger.InfoContext(ctx, "Creating task", "title", task.Title)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(task).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create task", "title", task.Title, "error", err)
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Task not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get task", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	r.logger.InfoContext(ctx, "Updating task", "id", task.ID)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
		"title":    task.Title,
		"notes":    task.Notes,
		"due_date": task.DueDate,
		"done":     task.Done,
	}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update task", "id", task.ID, "error", err)
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting task", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.Task{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete task", "id", id, "error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.Task{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepository) List(ctx context.Context, offset, limit int) ([]*model.Task, int, error) {
	r.logger.InfoContext(ctx, "Listing tasks", "offset", offset, "limit", limit)
	var tasks []*model.Task
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count tasks", "error", err)
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").
		Offset(offset).Limit(limit).Order("due_date ASC NULLS LAST").Find(&tasks).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, int(total), nil
}

// ListByLead retrieves every task bound to a lead
func (r *taskRepository) ListByLead(ctx context.Context, leadID string) ([]*model.Task, error) {
	var tasks []*model.Task
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("lead_id = ? AND deleted_at IS NULL", leadID).Find(&tasks).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list tasks by lead", "leadID", leadID, "error", err)
		return nil, fmt.Errorf("failed to list tasks by lead: %w", err)
	}
	return tasks, nil
}

// DeleteByLead removes every task bound to a lead
func (r *taskRepository) DeleteByLead(ctx context.Context, leadID string) error {
	r.logger.InfoContext(ctx, "Deleting tasks by lead", "leadID", leadID)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("lead_id = ?", leadID).Delete(&model.Task{}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete tasks by lead", "leadID", leadID, "error", err)
		return fmt.Errorf("failed to delete tasks by lead: %w", err)
	}
	return nil
}

// appointmentRepository implements the Appointment repository interface using PostgreSQL
type appointmentRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewAppointmentRepository creates a new instance of appointmentRepository
func NewAppointmentRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Appointment {
	return &appointmentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.logger.InfoContext(ctx, "Creating appointment", "title", appointment.Title)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(appointment).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create appointment", "title", appointment.Title, "error", err)
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).Preload("Client").Where("id = ? AND deleted_at IS NULL", id).First(&appointment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Appointment not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get appointment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	r.logger.InfoContext(ctx, "Updating appointment", "id", appointment.ID)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Model(&model.Appointment{}).Where("id = ?", appointment.ID).Updates(appointment).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update appointment", "id", appointment.ID, "error", err)
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting appointment", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.Appointment{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete appointment", "id", id, "error", err)
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.Appointment{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, offset, limit int) ([]*model.Appointment, int, error) {
	r.logger.InfoContext(ctx, "Listing appointments", "offset", offset, "limit", limit)
	var appointments []*model.Appointment
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Appointment{}).Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count appointments", "error", err)
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	if err := r.db.WithContext(ctx).Preload("Client").Where("deleted_at IS NULL").
		Offset(offset).Limit(limit).Order("starts_at ASC").Find(&appointments).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list appointments", "error", err)
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}

	return appointments, int(total), nil
}
