package http

import (
	notificationHandlers "github.com/ecobarangay/wasteops/internal/interfaces/http/handlers/notification"
	ticketHandlers "github.com/ecobarangay/wasteops/internal/interfaces/http/handlers/ticket"
	"github.com/ecobarangay/wasteops/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	ticketHandler       *ticketHandlers.TicketHandler
	notificationHandler *notificationHandlers.NotificationHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(ticketHandlers.UseCases{
			Create:              u.createTicketUC,
			Accept:              u.acceptTicketUC,
			MarkOngoing:         u.markOngoingUC,
			MarkForVerification: u.markForVerificationUC,
			VerifyCompletion:    u.verifyCompletionUC,
			Cancel:              u.cancelTicketUC,
			AddRemarks:          u.addRemarksUC,
			List:                u.listTicketsUC,
			Get:                 u.getTicketUC,
			BindAttachment:      u.bindAttachmentUC,
		}, c.files, c.metrics, c.log),
		notificationHandler: notificationHandlers.NewNotificationHandler(
			u.listNotificationsUC, u.markReadUC, u.markAllReadUC,
		),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
}
