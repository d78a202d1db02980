package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/auth"
	"github.com/ecobarangay/wasteops/internal/infrastructure/config"
	"github.com/ecobarangay/wasteops/internal/infrastructure/metrics"
	"github.com/ecobarangay/wasteops/internal/infrastructure/permission"
	"github.com/ecobarangay/wasteops/internal/infrastructure/storage"
	"github.com/ecobarangay/wasteops/internal/interfaces/http/middleware"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and middlewares, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	workflow *maintenance.Workflow
	metrics  *metrics.Metrics
	files    *storage.LocalStorage
	markdown markdown.MarkdownService
	enforcer *permission.Enforcer
	jwtSvc   *auth.JWTService

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimitMiddleware
}

// NewContainer builds every dependency from cfg. The order matters: use
// cases need the repositories and services, handlers need the use cases.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - workflow, storage, metrics, auth, RBAC
	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("failed to initialize infrastructure: %w", err)
	}

	// Section 2: Repositories and use cases
	c.repos = newRepositories(db)
	c.ucs = c.newUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Shutdown releases the connections the container opened.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis client", "error", err)
		}
	}
}
