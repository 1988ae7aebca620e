package handler

import (
	"net/http"
	"testing"

	deliverymiddleware "venturesroom/internal/delivery/http/middleware"
	"venturesroom/internal/domain/entity"
	mockUsecase "venturesroom/internal/mocks/usecase"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	userID := uuid.New()
	authUC.On("Register", mock.Anything, mock.MatchedBy(func(input usecase.RegisterInput) bool {
		return input.Email == "founder@example.com" && input.Role == entity.RoleStartup
	})).Return(&entity.User{
		ID:       userID,
		Email:    "founder@example.com",
		Name:     "Founder",
		Role:     entity.RoleStartup,
		Approval: entity.ApprovalPending,
	}, nil)

	body := `{"name":"Founder","email":"founder@example.com","password":"secret1","role":"startup","companyName":"Rocketry"}`
	c, rec := newTestContext(http.MethodPost, "/api/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	// The password hash never leaves the API
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	// Missing the required email field
	c, _ := newTestContext(http.MethodPost, "/api/auth/register", `{"name":"x","password":"secret1","role":"client"}`)

	err := h.Register(c)
	require.Error(t, err)
}

func TestAuthHandler_Login(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	authUC.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "client@example.com",
		Password: "secret1",
	}).Return(&usecase.LoginOutput{
		AccessToken: "signed-token",
		ExpiresIn:   86400,
		User:        &entity.User{ID: uuid.New(), Email: "client@example.com", Role: entity.RoleClient},
	}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login", `{"email":"client@example.com","password":"secret1"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"expiresIn":86400`)
}

func TestAuthHandler_Me(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	userID := uuid.New()
	authUC.On("GetProfile", mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "me@example.com", Role: entity.RoleClient}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	c.Set(deliverymiddleware.ContextUserID, userID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@example.com")
}

func TestAuthHandler_Me_Anonymous(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	c, _ := newTestContext(http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	require.Error(t, err)
}

func TestAuthHandler_Approve_InvalidID(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPost, "/api/auth/approve/nope", "")
	c.SetParamNames("userID")
	c.SetParamValues("nope")

	require.NoError(t, h.Approve(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Approve(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	userID := uuid.New()
	authUC.On("Approve", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleStartup, Approval: entity.ApprovalApproved}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/auth/approve/"+userID.String(), "")
	c.SetParamNames("userID")
	c.SetParamValues(userID.String())

	require.NoError(t, h.Approve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"approval":"approved"`)
}
