package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	mockUsecase "hospital/internal/mocks/usecase"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register_Created(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/api/register", h.Register)

	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "secret-hash", Role: entity.RoleAdmin}
	authUC.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Secret#123", Role: "admin"}).
		Return(&usecase.AuthOutput{User: user, Token: "signed"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/register",
		`{"username":"alice","email":"alice@example.com","password":"Secret#123","role":"admin"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed", body.Token)
	assert.Equal(t, user.ID, body.User.ID)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/api/register", h.Register)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"username":"alice","email":"not-an-email","password":"x","role":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email must be a valid email address")
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "unknown email", ucErr: domainerrors.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "wrong password", ucErr: domainerrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
			e := newTestEcho()
			e.POST("/api/login", h.Login)

			authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "a@b.co", Password: "pw"}).Return(nil, tt.ucErr)

			rec := doRequest(e, http.MethodPost, "/api/login", `{"email":"a@b.co","password":"pw"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/api/login", h.Login)

	rec := doRequest(e, http.MethodPost, "/api/login", `{"email":"a@b.co"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_GetUser(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleManager}
	e := newTestEcho()
	e.GET("/api/get-user", h.GetUser, asIdentity(identity))

	authUC.EXPECT().GetUser(mock.Anything, identity.UserID).
		Return(&entity.User{ID: identity.UserID, Username: "bob", Email: "bob@example.com", Role: entity.RoleManager}, nil)

	rec := doRequest(e, http.MethodGet, "/api/get-user", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":"`+identity.UserID.String()+`","username":"bob","email":"bob@example.com","role":"manager"}`,
		rec.Body.String())
}
