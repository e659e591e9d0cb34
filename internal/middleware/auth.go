package middleware

import (
	"jobmarket_backend/internal/auth"
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/routes"
	"jobmarket_backend/pkg/apperrors"
	"jobmarket_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const principalKey = string(contextkeys.PrincipalKey)

// Authenticate resolves a bearer token into a principal when it can. It
// never aborts the request: a missing, invalid or stale token simply leaves
// the request anonymous and lets Authorize decide whether that is enough.
func Authenticate(tm *auth.TokenManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := auth.BearerToken(header)
		if !ok {
			c.Next()
			return
		}

		claims, err := tm.Validate(raw)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "rejected bearer token", "error", err)
			c.Next()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			// Token for a deleted or unknown user stays anonymous.
			logger.CtxDebug(c.Request.Context(), "token subject not found", "user_id", claims.UserID)
			c.Next()
			return
		}

		c.Set(principalKey, user)
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Authorize enforces the access table. It runs after Authenticate and is the
// only place that turns a missing principal into a 401 or a role mismatch
// into a 403.
func Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		access := routes.Decide(c.Request.Method, c.Request.URL.Path)
		if access.Public {
			c.Next()
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		if !access.AllowsRole(user.Role) {
			apperrors.HandleError(c, apperrors.ErrRoleNotAllowed)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated principal, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
