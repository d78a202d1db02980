package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/infrastructure/ratelimit"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/utils"
)

// RateLimitMiddleware limits requests per account, falling back to the client
// IP for anonymous callers.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	limits  ratelimit.Limits
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, limits ratelimit.Limits, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limits:  limits,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if actor, ok := utils.GetActor(c); ok {
			key = fmt.Sprintf("account:%d", actor.AccountID)
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.limits)
		if err != nil {
			// Redis being unavailable must not block the workflow.
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
