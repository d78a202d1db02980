package usecases

import (
	"context"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	tickets     maintenance.TicketRepository
	events      maintenance.EventRepository
	attachments maintenance.AttachmentRepository
	catalog     maintenance.Catalog
	renderer    DetailsRenderer
	logger      logger.Interface
}

func NewGetTicketUseCase(
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	attachments maintenance.AttachmentRepository,
	catalog maintenance.Catalog,
	renderer DetailsRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		tickets:     tickets,
		events:      events,
		attachments: attachments,
		catalog:     catalog,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.tickets.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, toAppError(uc.logger, "get ticket", err, "ticket_id", query.TicketID)
	}
	if t == nil {
		return nil, errTicketNotFound()
	}

	statusName, err := uc.catalog.StatusName(ctx, t.Status())
	if err != nil {
		return nil, toAppError(uc.logger, "get ticket", err, "ticket_id", query.TicketID)
	}
	var priorityName string
	if p := t.Priority(); p != nil {
		if priorityName, err = uc.catalog.PriorityName(ctx, *p); err != nil {
			return nil, toAppError(uc.logger, "get ticket", err, "ticket_id", query.TicketID)
		}
	}

	attachments, err := uc.attachments.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, toAppError(uc.logger, "list attachments", err, "ticket_id", t.ID())
	}
	events, err := uc.events.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, toAppError(uc.logger, "list ticket events", err, "ticket_id", t.ID())
	}

	detail := &dto.TicketDetailDTO{
		TicketDTO:   *dto.ToTicketDTO(t, statusName, priorityName),
		Attachments: dto.ToAttachmentDTOs(attachments),
		Events:      dto.ToEventDTOs(events),
	}
	count := int64(len(attachments))
	detail.AttachmentCount = &count

	html, err := uc.renderer.ToHTMLSanitized(t.Details())
	if err != nil {
		uc.logger.Warnw("failed to render ticket details", "ticket_id", t.ID(), "error", err)
	} else {
		detail.DetailsHTML = html
	}

	return detail, nil
}
