package usecase

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminFixture(t *testing.T, users ...*model.User) (*fakeUserRepo, AdminUseCase) {
	t.Helper()
	userRepo := newFakeUserRepo(users...)
	companyRepo := newFakeCompanyRepo(&model.Company{ID: "company-1", Name: "Agência Azul"})
	tokens, err := jwt.New(
		jwt.WithAccessTokenSecret("access-secret"),
		jwt.WithSignInTokenSecret("signin-secret"),
	)
	require.NoError(t, err)
	uc := NewAdminUseCase(userRepo, companyRepo, tokens, "https://crm.example.com", newTestLogger())
	return userRepo, uc
}

func TestCreateUser_HashesPasswordAndDefaultsRole(t *testing.T) {
	userRepo, uc := newAdminFixture(t)

	user, err := uc.CreateUser(context.Background(), CreateUserInput{
		CompanyID: "company-1",
		Name:      "João",
		Email:     "joao@example.com",
		Password:  "s3nha-forte",
	})
	require.NoError(t, err)

	assert.Equal(t, "agent", user.Role)
	assert.Nil(t, user.EmailConfirmedAt)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3nha-forte")))
	assert.Len(t, userRepo.users, 1)
}

func TestCreateUser_AutoConfirm(t *testing.T) {
	_, uc := newAdminFixture(t)

	user, err := uc.CreateUser(context.Background(), CreateUserInput{
		Email:       "ana@example.com",
		Password:    "outra-s3nha",
		AutoConfirm: true,
	})
	require.NoError(t, err)
	assert.True(t, user.IsConfirmed())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	_, uc := newAdminFixture(t, &model.User{ID: "user-1", Email: "joao@example.com"})

	_, err := uc.CreateUser(context.Background(), CreateUserInput{Email: "joao@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_UnknownCompany(t *testing.T) {
	_, uc := newAdminFixture(t)

	_, err := uc.CreateUser(context.Background(), CreateUserInput{
		CompanyID: "ghost",
		Email:     "joao@example.com",
		Password:  "x",
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestConfirmUser(t *testing.T) {
	userRepo, uc := newAdminFixture(t, &model.User{ID: "user-1", Email: "joao@example.com"})

	require.NoError(t, uc.ConfirmUser(context.Background(), "user-1"))
	assert.NotNil(t, userRepo.users["user-1"].EmailConfirmedAt)

	// Confirming twice keeps the original timestamp
	first := *userRepo.users["user-1"].EmailConfirmedAt
	time.Sleep(time.Millisecond)
	require.NoError(t, uc.ConfirmUser(context.Background(), "user-1"))
	assert.Equal(t, first, *userRepo.users["user-1"].EmailConfirmedAt)
}

func TestConfirmUser_NotFound(t *testing.T) {
	_, uc := newAdminFixture(t)

	err := uc.ConfirmUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBuildSignInLink(t *testing.T) {
	companyID := "company-1"
	_, uc := newAdminFixture(t, &model.User{ID: "user-1", Email: "joao@example.com", CompanyID: &companyID})

	link, err := uc.BuildSignInLink(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, "https://crm.example.com/entrar?token="), "got %s", link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	token := parsed.Query().Get("token")
	require.NotEmpty(t, token)

	tokens, err := jwt.New(
		jwt.WithAccessTokenSecret("access-secret"),
		jwt.WithSignInTokenSecret("signin-secret"),
	)
	require.NoError(t, err)
	claims, err := tokens.ValidateSignInToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
}
