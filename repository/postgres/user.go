package postgres

import (
	"context"
	"fmt"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"

	"gorm.io/gorm"
)

// userRepository implements the User repository interface using PostgreSQL
type userRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB, logger logger.LoggerInterface) repository.User {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new user to the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	r.logger.InfoContext(ctx, "Creating user", "email", user.Email)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create user", "email", user.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.logger.InfoContext(ctx, "User created successfully", "id", user.ID, "email", user.Email)
	return nil
}

// GetByID retrieves a user by their unique identifier
func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.logger.InfoContext(ctx, "Getting user by ID", "id", id)
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Company").Where("id = ? AND deleted_at IS NULL", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "User not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.logger.InfoContext(ctx, "Getting user by email", "email", email)
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Company").Where("email = ? AND deleted_at IS NULL", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "User not found by email", "email", email)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Update modifies an existing user in the database
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	r.logger.InfoContext(ctx, "Updating user", "id", user.ID)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(user).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update user", "id", user.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// ConfirmEmail stamps the user's email-confirmation time.
// Confirming an already-confirmed user is a no-op.
func (r *userRepository) ConfirmEmail(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Confirming user email", "id", id)
	db := dbFromContext(ctx, r.db)
	result := db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND deleted_at IS NULL AND email_confirmed_at IS NULL", id).
		Update("email_confirmed_at", time.Now())
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to confirm user email", "id", id, "error", result.Error)
		return fmt.Errorf("failed to confirm user email: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		db.WithContext(ctx).Model(&model.User{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
		if count == 0 {
			r.logger.WarnContext(ctx, "User not found for confirmation", "id", id)
			return domain.ErrNotFound
		}
		r.logger.InfoContext(ctx, "User email already confirmed", "id", id)
	}
	return nil
}

// Delete removes a user from the database (soft delete)
func (r *userRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting user", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.User{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete user", "id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.User{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		r.logger.WarnContext(ctx, "User not found for deletion", "id", id)
		return domain.ErrNotFound
	}

	r.logger.InfoContext(ctx, "User deleted successfully", "id", id)
	return nil
}
