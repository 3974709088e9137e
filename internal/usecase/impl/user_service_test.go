package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	mockRepo "inmomarket/internal/mocks/repository"
	mockSvc "inmomarket/internal/mocks/service"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
}

func newTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		userRepo: mockRepo.NewMockUserRepository(t),
		hasher:   mockSvc.NewMockPasswordHasher(t),
		tokens:   mockSvc.NewMockTokenService(t),
	}
	service := NewUserService(UserServiceParams{
		UserRepo: mocks.userRepo,
		Hasher:   mocks.hasher,
		Tokens:   mocks.tokens,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	service, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().
		ValidatePasswordStrength("str0ngpass").
		Return(nil)
	mocks.hasher.EXPECT().
		Hash("str0ngpass").
		Return("$2a$10$hash", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "  Ana Flores ",
		Email:    " Ana@Example.COM ",
		Password: "str0ngpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana Flores", user.Name)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	service, mocks := newTestUserService(t)

	mocks.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(assert.AnError)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ana Flores",
		Email:    "ana@example.com",
		Password: "short",
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().
		ValidatePasswordStrength("str0ngpass").
		Return(nil)
	mocks.hasher.EXPECT().
		Hash("str0ngpass").
		Return("$2a$10$hash", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana Flores",
		Email:    "ana@example.com",
		Password: "str0ngpass",
	})
	requireAppError(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_IssuesTokenPair(t *testing.T) {
	service, mocks := newTestUserService(t)
	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleUser,
	}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(user, nil)
	mocks.hasher.EXPECT().
		Check("str0ngpass", user.PasswordHash).
		Return(true)
	mocks.tokens.EXPECT().
		GenerateTokens(user.ID, "user").
		Return("access", "refresh", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "Ana@Example.com",
		Password: "str0ngpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever12",
	})
	requireAppError(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, mocks := newTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "$2a$10$hash"}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(user, nil)
	mocks.hasher.EXPECT().
		Check("wrongpass1", user.PasswordHash).
		Return(false)

	// An unknown email and a wrong password look the same to the caller.
	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrongpass1",
	})
	requireAppError(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	service, mocks := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.GetProfile(ctx, userID)
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}
