package http

import (
	maintenanceUsecases "github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
	notificationUsecases "github.com/ecobarangay/wasteops/internal/application/notification/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Maintenance tickets
	createTicketUC        *maintenanceUsecases.CreateTicketUseCase
	acceptTicketUC        *maintenanceUsecases.AcceptTicketUseCase
	markOngoingUC         *maintenanceUsecases.TransitionTicketUseCase
	markForVerificationUC *maintenanceUsecases.TransitionTicketUseCase
	verifyCompletionUC    *maintenanceUsecases.TransitionTicketUseCase
	cancelTicketUC        *maintenanceUsecases.TransitionTicketUseCase
	addRemarksUC          *maintenanceUsecases.AddRemarksUseCase
	listTicketsUC         *maintenanceUsecases.ListTicketsUseCase
	getTicketUC           *maintenanceUsecases.GetTicketUseCase
	bindAttachmentUC      *maintenanceUsecases.BindAttachmentUseCase

	// Notifications
	listNotificationsUC *notificationUsecases.ListNotificationsUseCase
	markReadUC          *notificationUsecases.MarkReadUseCase
	markAllReadUC       *notificationUsecases.MarkAllReadUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	wf := c.workflow
	log := c.log
	notifier := c.newAssignmentNotifier()

	return &allUseCases{
		createTicketUC:        maintenanceUsecases.NewCreateTicketUseCase(r.txManager, r.tickets, r.events, r.attachments, r.catalog, c.markdown, log),
		acceptTicketUC:        maintenanceUsecases.NewAcceptTicketUseCase(r.txManager, r.tickets, r.events, r.attachments, wf, r.accounts, r.catalog, notifier, log),
		markOngoingUC:         maintenanceUsecases.NewMarkOnGoingUseCase(r.txManager, r.tickets, r.events, wf, log),
		markForVerificationUC: maintenanceUsecases.NewMarkForVerificationUseCase(r.txManager, r.tickets, r.events, wf, log),
		verifyCompletionUC:    maintenanceUsecases.NewVerifyCompletionUseCase(r.txManager, r.tickets, r.events, wf, log),
		cancelTicketUC:        maintenanceUsecases.NewCancelTicketUseCase(r.txManager, r.tickets, r.events, wf, log),
		addRemarksUC:          maintenanceUsecases.NewAddRemarksUseCase(r.txManager, r.tickets, r.events, r.attachments, wf, c.markdown, log),
		listTicketsUC:         maintenanceUsecases.NewListTicketsUseCase(r.tickets, r.catalog, log),
		getTicketUC:           maintenanceUsecases.NewGetTicketUseCase(r.tickets, r.events, r.attachments, r.catalog, c.markdown, log),
		bindAttachmentUC:      maintenanceUsecases.NewBindAttachmentUseCase(r.tickets, r.attachments, log),

		listNotificationsUC: notificationUsecases.NewListNotificationsUseCase(r.feed, log),
		markReadUC:          notificationUsecases.NewMarkReadUseCase(r.feed, log),
		markAllReadUC:       notificationUsecases.NewMarkAllReadUseCase(r.feed, log),
	}
}
