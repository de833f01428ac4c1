package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/jwt"
	"travel-crm-service/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// CreateUserInput carries the fields for provisioning an operator account
type CreateUserInput struct {
	CompanyID   string
	Name        string
	Email       string
	Password    string
	Role        string
	AutoConfirm bool
}

// AdminUseCase defines the administrative operations behind the service key
type AdminUseCase interface {
	// ConfirmUser marks a user's email as confirmed
	ConfirmUser(ctx context.Context, userID string) error
	// CreateUser provisions an operator account, optionally pre-confirmed
	CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error)
	// BuildSignInLink mints a short-lived company-scoped token and returns
	// the CRM URL that signs the user straight in
	BuildSignInLink(ctx context.Context, userID string) (string, error)
}

// adminUseCase implements the AdminUseCase interface
type adminUseCase struct {
	userRepo    repository.User
	companyRepo repository.Company
	tokens      jwt.JWTClient
	crmBaseURL  string
	logger      logger.LoggerInterface
}

// NewAdminUseCase creates a new instance of adminUseCase
func NewAdminUseCase(
	userRepo repository.User,
	companyRepo repository.Company,
	tokens jwt.JWTClient,
	crmBaseURL string,
	appLogger logger.LoggerInterface,
) AdminUseCase {
	return &adminUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
		crmBaseURL:  crmBaseURL,
		logger:      appLogger,
	}
}

// ConfirmUser marks a user's email as confirmed
func (uc *adminUseCase) ConfirmUser(ctx context.Context, userID string) error {
	uc.logger.InfoContext(ctx, "Confirming user in usecase", "userID", userID)
	if userID == "" {
		return domain.ErrInvalidID
	}

	if err := uc.userRepo.ConfirmEmail(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to confirm user", "userID", userID, "error", err)
		return err
	}
	return nil
}

// CreateUser provisions an operator account
func (uc *adminUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	uc.logger.InfoContext(ctx, "Creating user in usecase", "email", input.Email)
	if input.Email == "" || input.Password == "" {
		return nil, &domain.AppError{Message: "email and password are required", Code: 400}
	}

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		uc.logger.ErrorContext(ctx, "Error checking email uniqueness", "email", input.Email, "error", err)
		return nil, fmt.Errorf("error checking email uniqueness: %w", err)
	}
	if existing != nil {
		uc.logger.WarnContext(ctx, "User with this email already exists", "email", input.Email)
		return nil, domain.ErrEmailAlreadyExists
	}

	if input.CompanyID != "" {
		if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrCompanyNotFound
			}
			return nil, fmt.Errorf("error checking company: %w", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = "agent"
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if input.CompanyID != "" {
		companyID := input.CompanyID
		user.CompanyID = &companyID
	}
	if input.AutoConfirm {
		now := time.Now()
		user.EmailConfirmedAt = &now
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create user in repository", "email", input.Email, "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "User created successfully in usecase", "id", user.ID, "email", user.Email)
	return user, nil
}

// BuildSignInLink mints a short-lived sign-in token and builds the redirect URL
func (uc *adminUseCase) BuildSignInLink(ctx context.Context, userID string) (string, error) {
	uc.logger.InfoContext(ctx, "Building sign-in link", "userID", userID)
	if userID == "" {
		return "", domain.ErrInvalidID
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("error getting user: %w", err)
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}

	token, err := uc.tokens.GenerateSignInToken(user.ID, companyID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to generate sign-in token", "userID", userID, "error", err)
		return "", fmt.Errorf("failed to generate sign-in token: %w", err)
	}

	link := fmt.Sprintf("%s/entrar?token=%s", uc.crmBaseURL, url.QueryEscape(token))
	uc.logger.InfoContext(ctx, "Sign-in link built", "userID", userID)
	return link, nil
}
