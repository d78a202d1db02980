package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/constants"
)

// SetActor stores the authenticated caller on the request context.
func SetActor(c *gin.Context, actor authorization.Actor) {
	c.Set(constants.ContextKeyActor, actor)
}

// GetActor returns the caller stored by the auth middleware.
func GetActor(c *gin.Context) (authorization.Actor, bool) {
	v, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return authorization.Actor{}, false
	}
	actor, ok := v.(authorization.Actor)
	if !ok || !actor.IsValid() {
		return authorization.Actor{}, false
	}
	return actor, true
}
