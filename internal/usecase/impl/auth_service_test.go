package impl

import (
	"context"
	"testing"
	"time"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	mockRepo "venturesroom/internal/mocks/repository"
	mockService "venturesroom/internal/mocks/service"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	userRepo      *mockRepo.MockUserRepository
	startupRepo   *mockRepo.MockStartupRepository
	structureRepo *mockRepo.MockStructureRepository
	hasher        *mockService.MockPasswordHasher
	tokenService  *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	startupRepo := mockRepo.NewMockStartupRepository(t)
	structureRepo := mockRepo.NewMockStructureRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Users:      userRepo,
			Startups:   startupRepo,
			Structures: structureRepo,
		},
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:       service,
		userRepo:      userRepo,
		startupRepo:   startupRepo,
		structureRepo: structureRepo,
		hasher:        hasher,
		tokenService:  tokenService,
	}
}

func TestAuthService_Register_Client(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Secret123!").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
		Role:     entity.RoleClient,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, user.Role)
	// Clients skip the approval queue
	assert.Equal(t, entity.ApprovalApproved, user.Approval)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestAuthService_Register_StartupCreatesTenant(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Secret123!").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.startupRepo.On("Create", ctx, mock.MatchedBy(func(s *entity.Startup) bool {
		return s.Name == "Rocket Labs" && s.Sector == "aerospace"
	})).Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:        "Bob",
		Email:       "bob@example.com",
		Password:    "Secret123!",
		Role:        entity.RoleStartup,
		CompanyName: "Rocket Labs",
		Sector:      "aerospace",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, user.Approval)
}

func TestAuthService_Register_StructureCreatesTenant(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Secret123!").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.structureRepo.On("Create", ctx, mock.MatchedBy(func(s *entity.SupportStructure) bool {
		// Falls back to the account name when no company name is given
		return s.Name == "Carol"
	})).Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "Secret123!",
		Role:     entity.RoleStructure,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, user.Approval)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)

	for _, role := range []entity.Role{"superuser", entity.RoleAdmin, ""} {
		_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "Secret123!",
			Role:     role,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Secret123!").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
		Role:     entity.RoleClient,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		Role:         entity.RoleClient,
		Approval:     entity.ApprovalApproved,
		PasswordHash: "hashed",
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "Secret123!", "hashed").Return(true)
	fx.tokenService.On("GenerateToken", userID, entity.RoleClient).Return("token-123", nil)
	fx.tokenService.On("AccessTokenDuration").Return(24 * time.Hour)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-123", output.AccessToken)
	assert.Equal(t, int64(86400), output.ExpiresIn)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, unknownErr)

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}
	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, wrongErr)

	// Both failure modes are indistinguishable to the caller
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_GetProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	user, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Approve(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(&entity.User{
		ID:       userID,
		Role:     entity.RoleStartup,
		Approval: entity.ApprovalPending,
	}, nil)
	fx.userRepo.On("UpdateApproval", ctx, userID, entity.ApprovalApproved).Return(nil)

	user, err := fx.service.Approve(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, user.Approval)
}

func TestAuthService_Approve_AlreadyApproved(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(&entity.User{
		ID:       userID,
		Role:     entity.RoleStartup,
		Approval: entity.ApprovalApproved,
	}, nil)

	_, err := fx.service.Approve(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyApproved)
}

func TestAuthService_Approve_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Approve(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
