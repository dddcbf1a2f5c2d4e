package middleware

import (
	"elyukal/config"
	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys under which the resolved identity is stored on echo.Context.
const (
	ContextKeyActor     = "actor"
	ContextKeyAdminUser = "adminUser"
	ContextKeyStoreUser = "storeUser"
)

// AuthMiddleware resolves session cookies into identities. Each role family
// has its own cookie and its own session table, so a seller cookie never
// grants admin access.
type AuthMiddleware struct {
	adminAuth usecase.AdminAuthUsecase
	storeAuth usecase.StoreAuthUsecase
	cfg       *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(adminAuth usecase.AdminAuthUsecase, storeAuth usecase.StoreAuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		adminAuth: adminAuth,
		storeAuth: storeAuth,
		cfg:       cfg,
	}
}

// RequireAdmin validates the admin session cookie and loads the admin identity
// into the request context.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.cookieValue(c, m.cfg.Session.Admin.CookieName)

		admin, err := m.adminAuth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(ContextKeyAdminUser, admin)
		c.Set(ContextKeyActor, admin.Actor())

		return next(c)
	}
}

// RequireStoreUser validates the seller session cookie and loads the seller
// identity into the request context.
func (m *AuthMiddleware) RequireStoreUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.cookieValue(c, m.cfg.Session.StoreUser.CookieName)

		user, err := m.storeAuth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		// Approval can be revoked after login; recheck on every request.
		if user.Status != entity.StatusAccepted {
			return domainerrors.ErrAccountNotApproved
		}

		c.Set(ContextKeyStoreUser, user)
		c.Set(ContextKeyActor, user.Actor())

		return next(c)
	}
}

// cookieValue returns the named cookie's value, or empty when absent. The
// authenticator turns the empty token into the unauthenticated error.
func (m *AuthMiddleware) cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}
