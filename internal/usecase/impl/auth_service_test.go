package impl

import (
	"context"
	"errors"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"
	mockRepo "hospital/internal/mocks/repository"
	mockService "hospital/internal/mocks/service"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authDeps struct {
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func newAuthTestService(t *testing.T) (usecase.AuthUsecase, authDeps) {
	deps := authDeps{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	return NewAuthService(deps.userRepo, deps.hasher, deps.tokenService, newDiscardLogger()), deps
}

func TestAuthService_Register_Success(t *testing.T) {
	service, deps := newAuthTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.hasher.EXPECT().Hash("Secret#123").Return("hashed", nil)
	deps.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" &&
				u.PasswordHash == "hashed" && u.Role == entity.RoleManager
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = userID }).
		Return(nil)
	deps.tokenService.EXPECT().GenerateToken(userID, "manager").Return("signed", nil)

	out, err := service.Register(ctx, usecase.RegisterInput{
		Username: " alice ",
		Email:    "Alice@Example.com",
		Password: "Secret#123",
		Role:     "Manager",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	service, _ := newAuthTestService(t)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Secret#123",
		Role:     "janitor",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	service, deps := newAuthTestService(t)

	deps.hasher.EXPECT().Hash("weak").Return("", domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "weak",
		Role:     "pantry",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	service, deps := newAuthTestService(t)
	ctx := context.Background()

	deps.hasher.EXPECT().Hash("Secret#123").Return("hashed", nil)
	deps.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUser)

	_, err := service.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret#123",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, deps := newAuthTestService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed", Role: entity.RoleDelivery}

	deps.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	deps.hasher.EXPECT().Check("Secret#123", "hashed").Return(true)
	deps.tokenService.EXPECT().GenerateToken(user.ID, "delivery").Return("signed", nil)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "ALICE@example.com", Password: "Secret#123"})

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, "signed", out.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, deps := newAuthTestService(t)
	ctx := context.Background()

	deps.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, deps := newAuthTestService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	deps.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	deps.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GetUser(t *testing.T) {
	service, deps := newAuthTestService(t)
	ctx := context.Background()
	known := &entity.User{ID: uuid.New()}
	missing := uuid.New()

	deps.userRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	deps.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	got, err := service.GetUser(ctx, known.ID)
	require.NoError(t, err)
	assert.Equal(t, known, got)

	_, err = service.GetUser(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_GetUser_DatabaseError(t *testing.T) {
	service, deps := newAuthTestService(t)
	ctx := context.Background()
	id := uuid.New()
	dbErr := errors.New("connection reset")

	deps.userRepo.EXPECT().FindByID(ctx, id).Return(nil, dbErr)

	_, err := service.GetUser(ctx, id)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
}
