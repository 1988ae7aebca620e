// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "venturesroom/internal/delivery/context"
	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/domain/service"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and, for seller/support roles, its tenant row
// in one transaction.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if !input.Role.IsValid() || input.Role == entity.RoleAdmin {
		srv.log(ctx).Warn("Registration with invalid role", slog.String("role", input.Role.String()))

		return nil, domainerrors.ErrInvalidRole
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	approval := entity.ApprovalApproved
	if input.Role.RequiresApproval() {
		approval = entity.ApprovalPending
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		Approval:     approval,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		switch input.Role {
		case entity.RoleStartup:
			startup := &entity.Startup{
				OwnerID:     newUser.ID,
				Name:        tenantName(input.CompanyName, input.Name),
				Sector:      input.Sector,
				Country:     input.Country,
				Website:     input.Website,
				Description: input.Description,
			}
			if err := repoFactory.NewStartupRepository().Create(ctx, startup); err != nil {
				return errors.Wrap(err, "failed to create startup during registration")
			}
		case entity.RoleStructure:
			structure := &entity.SupportStructure{
				OwnerID: newUser.ID,
				Name:    tenantName(input.CompanyName, input.Name),
				Country: input.Country,
				Website: input.Website,
			}
			if err := repoFactory.NewStructureRepository().Create(ctx, structure); err != nil {
				return errors.Wrap(err, "failed to create support structure during registration")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Account registered",
		slog.String("role", input.Role.String()), slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so emails cannot be probed.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}

// GetProfile loads the authenticated user's account.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// Approve flips a pending startup/structure account to approved.
func (srv *authService) Approve(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for approval")
	}

	if user.IsApproved() {
		return nil, domainerrors.ErrAlreadyApproved
	}

	if err := srv.userRepo.UpdateApproval(ctx, userID, entity.ApprovalApproved); err != nil {
		return nil, errors.Wrap(err, "failed to update approval status")
	}

	user.Approval = entity.ApprovalApproved

	srv.log(ctx).Info("Account approved", slog.Any("userID", userID), slog.String("role", user.Role.String()))

	return user, nil
}

// tenantName picks the tenant display name, falling back to the account name.
func tenantName(companyName, accountName string) string {
	if companyName != "" {
		return companyName
	}

	return accountName
}
