// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Role startup and structure accounts get their tenant row created in the
// same transaction.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role

	// Tenant details, used when Role is startup or structure.
	CompanyName string
	Sector      string
	Country     string
	Website     string
	Description string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int64 // Seconds until expiry
	User        *entity.User
}

// AuthUsecase defines the interface for account business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates the account and, for seller/support roles, its tenant
	// row in one transaction.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues an access token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetProfile loads the authenticated user's account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Approve flips a pending startup/structure account to approved.
	// The transition is one-way.
	Approve(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
