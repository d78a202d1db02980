package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/utils"
)

// PolicyEnforcer answers whether a role may attempt an action on a resource.
type PolicyEnforcer interface {
	Enforce(role authorization.Role, resource, action string) (bool, error)
}

// PermissionMiddleware performs the coarse role check before a handler runs.
// Relationship checks such as "is the assignee" stay with the workflow.
type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := utils.GetActor(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(actor.Role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "account_id", actor.AccountID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "account_id", actor.AccountID, "role", actor.Role.String(), "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
