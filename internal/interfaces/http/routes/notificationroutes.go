package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/infrastructure/permission"
	notificationhandlers "github.com/ecobarangay/wasteops/internal/interfaces/http/handlers/notification"
	"github.com/ecobarangay/wasteops/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler  *notificationhandlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	h := config.NotificationHandler
	read := config.PermissionMiddleware.RequirePermission(permission.ResourceNotification, permission.ActionRead)
	update := config.PermissionMiddleware.RequirePermission(permission.ResourceNotification, permission.ActionUpdate)

	notifications := api.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", read, h.ListNotifications)
		notifications.POST("/:type/read-all", update, h.MarkAllRead)
		notifications.POST("/:type/:id/read", update, h.MarkRead)
	}
}
