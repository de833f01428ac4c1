package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
	"travel-crm-service/usecase"
)

// CreateUserRequest represents the request payload for provisioning an operator
type CreateUserRequest struct {
	CompanyID   string `json:"empresa_id,omitempty" validate:"omitempty,ulid"`
	Name        string `json:"nome" validate:"required,min=1,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"senha" validate:"required,min=8"`
	Role        string `json:"papel,omitempty" validate:"omitempty,oneof=agent admin"`
	AutoConfirm bool   `json:"confirmar_automaticamente,omitempty"`
}

// ConfirmUserRequest represents the request payload for confirming a user's email
type ConfirmUserRequest struct {
	UserID string `json:"usuario_id" validate:"required,ulid"`
}

// UserResponse represents the response payload for an operator account
type UserResponse struct {
	ID        string  `json:"id"`
	CompanyID *string `json:"empresa_id,omitempty"`
	Name      string  `json:"nome"`
	Email     string  `json:"email"`
	Role      string  `json:"papel"`
	Confirmed bool    `json:"confirmado"`
	IsActive  bool    `json:"ativo"`
	CreatedAt string  `json:"created_at"`
}

// SignInLinkResponse carries the CRM URL that signs the user straight in
type SignInLinkResponse struct {
	Link string `json:"link"`
}

// CreateUserRequestToInput converts CreateUserRequest to the usecase input
func CreateUserRequestToInput(req *CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		AutoConfirm: req.AutoConfirm,
	}
}

// UserModelToResponse converts model.User to UserResponse.
// The password hash never leaves the service.
func UserModelToResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		CompanyID: user.CompanyID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Confirmed: user.IsConfirmed(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
