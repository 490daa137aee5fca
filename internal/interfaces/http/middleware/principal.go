package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appaccess "shieldtrack/internal/application/access"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/constants"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

// PrincipalMiddleware turns the verified token subject into a Principal. The
// role, client binding and area assignments all come from the database on
// every request, so role changes and deactivations take effect immediately.
type PrincipalMiddleware struct {
	resolver appaccess.PrincipalResolver
	logger   logger.Interface
}

func NewPrincipalMiddleware(resolver appaccess.PrincipalResolver, logger logger.Interface) *PrincipalMiddleware {
	return &PrincipalMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

func (m *PrincipalMiddleware) ResolvePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		userSID, exists := c.Get(constants.ContextKeyUserSID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		principal, err := m.resolver.ResolveBySID(c.Request.Context(), userSID.(string))
		if err != nil {
			if errors.IsUnauthorizedError(err) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or disabled account")
			} else {
				// Scope resolution failures surface as a generic 500.
				utils.ErrorResponseWithError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, principal)
		c.Set(constants.ContextKeyUserID, principal.UserID())
		c.Set(constants.ContextKeyUserRole, principal.Role().String())

		c.Next()
	}
}

// PrincipalFromContext fetches the resolved principal set by the middleware.
func PrincipalFromContext(c *gin.Context) (access.Principal, bool) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return access.Principal{}, false
	}

	principal, ok := value.(access.Principal)
	return principal, ok
}
