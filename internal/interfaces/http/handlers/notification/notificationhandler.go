// Package notification serves the per-account activity feed.
package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/application/notification/usecases"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/utils"
)

type ListNotificationsRequest struct {
	Type       string `form:"type"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
	UnreadOnly bool   `form:"unread_only"`
}

type NotificationHandler struct {
	listUC        usecases.ListNotificationsExecutor
	markReadUC    usecases.MarkReadExecutor
	markAllReadUC usecases.MarkAllReadExecutor
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	markReadUC usecases.MarkReadExecutor,
	markAllReadUC usecases.MarkAllReadExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
	}
}

// ListNotifications godoc
// @Summary List notifications
// @Description Ticket events newest first, each flagged read or unread for the caller.
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param type query string false "Feed type" default(maintenance)
// @Param limit query int false "Window size" default(20)
// @Param offset query int false "Window offset" default(0)
// @Param unread_only query bool false "Only unread items"
// @Success 200 {object} utils.APIResponse{data=dto.NotificationListDTO}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := utils.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		AccountID:  actor.AccountID,
		Type:       req.Type,
		Limit:      req.Limit,
		Offset:     req.Offset,
		UnreadOnly: req.UnreadOnly,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead godoc
// @Summary Mark notification as read
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param type path string true "Feed type" example(maintenance)
// @Param id path int true "Notification ID"
// @Success 204 "No content"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Notification not found"
// @Router /notifications/{type}/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := utils.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	id, err := utils.ParseUintID(c.Param("id"), "notification id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		AccountID: actor.AccountID,
		Type:      c.Param("type"),
		ID:        id,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param type path string true "Feed type" example(maintenance)
// @Success 200 {object} utils.APIResponse{data=dto.MarkAllReadDTO}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Router /notifications/{type}/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := utils.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.markAllReadUC.Execute(c.Request.Context(), usecases.MarkAllReadCommand{
		AccountID: actor.AccountID,
		Type:      c.Param("type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications marked as read", result)
}
