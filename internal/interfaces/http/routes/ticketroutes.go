package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/permission"
	tickethandlers "github.com/ecobarangay/wasteops/internal/interfaces/http/handlers/ticket"
	"github.com/ecobarangay/wasteops/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter *middleware.RateLimitMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	h := config.TicketHandler
	allow := func(action string) gin.HandlerFunc {
		return config.PermissionMiddleware.RequirePermission(permission.ResourceTicket, action)
	}
	workflow := func(action maintenance.Action) gin.HandlerFunc {
		return allow(string(action))
	}

	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())

	tickets.GET("", allow(permission.ActionRead), h.ListTickets)
	tickets.GET("/:id", allow(permission.ActionRead), h.GetTicket)
	tickets.GET("/:id/attachments/:attachmentId", allow(permission.ActionRead), h.DownloadAttachment)

	writes := tickets.Group("")
	if config.RateLimiter != nil {
		writes.Use(config.RateLimiter.Limit())
	}
	writes.POST("", allow(permission.ActionCreate), h.CreateTicket)
	writes.POST("/:id/accept", workflow(maintenance.ActionAccept), h.AcceptTicket)
	writes.POST("/:id/ongoing", workflow(maintenance.ActionMarkOngoing), h.MarkOngoing)
	writes.POST("/:id/for-verification", workflow(maintenance.ActionMarkForVerification), h.MarkForVerification)
	writes.POST("/:id/complete", workflow(maintenance.ActionVerifyCompletion), h.VerifyCompletion)
	writes.POST("/:id/cancel", workflow(maintenance.ActionCancel), h.CancelTicket)
	writes.POST("/:id/remarks", allow(permission.ActionRemark), h.AddRemarks)
	writes.POST("/:id/attachments", allow(permission.ActionAttach), h.UploadAttachment)
}
