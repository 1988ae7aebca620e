package middleware

import (
	"strings"

	"venturesroom/config"
	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/service"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware for handlers to read.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUc   usecase.AuthUsecase
	demoMode bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUc usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	demoMode := false
	if cfg != nil && cfg.Auth != nil {
		demoMode = cfg.Auth.DemoMode
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, authUc: authUc, demoMode: demoMode}
}

// Authenticate validates the bearer token and stores the caller's identity
// on the Echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return err
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		return next(c)
	}
}

// OptionalAuthenticate accepts anonymous callers. A present but invalid
// token still fails; a missing header leaves the actor unset so the tenant
// fallback can apply in demo mode.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return err
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		return next(c)
	}
}

// RequireRole restricts a route to the given roles. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(entity.Role)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("role information missing")
			}
			if !allowed.Contains(role) {
				return domainerrors.ErrForbidden.WrapMessage("insufficient role")
			}

			return next(c)
		}
	}
}

// RequireApproved rejects startup and structure accounts that are still
// pending administrative approval. Anonymous callers pass through so the
// demo tenant fallback keeps working; the services reject them in strict
// mode.
func (m *AuthMiddleware) RequireApproved(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actorID := ActorID(c)
		if actorID == uuid.Nil {
			return next(c)
		}

		role, _ := c.Get(ContextRole).(entity.Role)
		if !role.RequiresApproval() {
			return next(c)
		}

		user, err := m.authUc.GetProfile(c.Request().Context(), actorID)
		if err != nil {
			return err
		}
		if !user.IsApproved() {
			return domainerrors.ErrAccountNotApproved
		}

		return next(c)
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid token format, must be Bearer token")
	}

	// A present token that fails validation is an authorization failure,
	// not a missing credential.
	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid or expired token")
	}

	return claims, nil
}

// ActorID returns the authenticated user's ID, or uuid.Nil for anonymous
// callers.
func ActorID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(ContextUserID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}

// ActorRole returns the authenticated user's role, or the empty role.
func ActorRole(c echo.Context) entity.Role {
	role, _ := c.Get(ContextRole).(entity.Role)

	return role
}
