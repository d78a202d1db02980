package http

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/auth"
	"github.com/ecobarangay/wasteops/internal/infrastructure/config"
	"github.com/ecobarangay/wasteops/internal/infrastructure/email"
	"github.com/ecobarangay/wasteops/internal/infrastructure/metrics"
	"github.com/ecobarangay/wasteops/internal/infrastructure/permission"
	"github.com/ecobarangay/wasteops/internal/infrastructure/ratelimit"
	"github.com/ecobarangay/wasteops/internal/infrastructure/storage"
	"github.com/ecobarangay/wasteops/internal/interfaces/http/middleware"
	sharedConfig "github.com/ecobarangay/wasteops/internal/shared/config"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/services/markdown"
)

// ============================================================
// Section 1: Infrastructure
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.workflow = newWorkflow(cfg.Workflow)
	c.metrics = metrics.New()
	c.markdown = markdown.NewMarkdownService()
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)

	files, err := storage.NewLocalStorage(
		cfg.Storage.BasePath,
		int64(cfg.Storage.MaxSizeMB)<<20,
		cfg.Storage.AllowedMimeTypes,
	)
	if err != nil {
		return err
	}
	c.files = files

	// Route-level grants are regenerated from the workflow on every start.
	enforcerDB := c.db
	if !cfg.Permission.PersistPolicies {
		enforcerDB = nil
	}
	enforcer, err := permission.NewEnforcer(enforcerDB, log)
	if err != nil {
		return err
	}
	if err := enforcer.Sync(permission.Policies(c.workflow)); err != nil {
		return err
	}
	c.enforcer = enforcer

	if cfg.RateLimit.Enabled {
		c.redis = initRedis(cfg, log)
		c.rateLimiter = middleware.NewRateLimitMiddleware(
			ratelimit.NewRedisRateLimiter(c.redis),
			ratelimit.Limits{
				RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
				RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
			},
			log,
		)
	}

	return nil
}

func newWorkflow(cfg sharedConfig.WorkflowConfig) *maintenance.Workflow {
	var opts []maintenance.Option
	if !cfg.StrictVerification {
		opts = append(opts, maintenance.WithPermissiveVerification())
	}
	if cfg.AllowRework {
		opts = append(opts, maintenance.WithRework())
	}
	opts = append(opts, maintenance.WithRemarksPolicy(maintenance.RemarksPolicy(cfg.RemarksPolicy)))
	return maintenance.NewWorkflow(opts...)
}

// initRedis creates the Redis client. An unreachable server is only logged:
// the rate limiter fails open.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, rate limiting will fail open", "error", err)
		return redisClient
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// newAssignmentNotifier returns the SMTP notifier when email is enabled and
// configured, and a logging no-op otherwise.
func (c *Container) newAssignmentNotifier() usecases.AssignmentNotifier {
	cfg := c.cfg.Email
	if !cfg.Enabled {
		return email.NewNoopNotifier(c.log)
	}

	svc, err := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	})
	if err != nil {
		if errors.Is(err, email.ErrEmailServiceNotConfigured) {
			c.log.Warnw("email enabled but smtp_host is empty, assignment emails disabled")
		} else {
			c.log.Errorw("failed to initialize email service", "error", err)
		}
		return email.NewNoopNotifier(c.log)
	}
	return email.NewObservedNotifier(svc, c.metrics)
}
