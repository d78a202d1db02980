package usecases

import (
	"context"
	"time"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type AddRemarksCommand struct {
	TicketID   uint
	Actor      authorization.Actor
	Remarks    string
	Attachment *maintenance.FileRef
}

type AddRemarksUseCase struct {
	writer    *ticketWriter
	workflow  *maintenance.Workflow
	sanitizer TextSanitizer
	logger    logger.Interface
}

func NewAddRemarksUseCase(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	attachments maintenance.AttachmentRepository,
	workflow *maintenance.Workflow,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *AddRemarksUseCase {
	return &AddRemarksUseCase{
		writer:    newTicketWriter(txManager, tickets, events, attachments, logger),
		workflow:  workflow,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *AddRemarksUseCase) Execute(ctx context.Context, cmd AddRemarksCommand) (*dto.TransitionResultDTO, error) {
	uc.logger.Infow("executing add remarks use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.Actor.AccountID,
		"has_attachment", cmd.Attachment != nil)

	text := uc.sanitizer.SanitizeText(cmd.Remarks)
	res, err := uc.writer.mutate(ctx, "add remarks", cmd.TicketID, cmd.Actor, cmd.Attachment,
		func(_ context.Context, t *maintenance.Ticket, now time.Time) (*maintenance.Event, error) {
			return uc.workflow.AddRemark(t, cmd.Actor, text, now)
		})
	if err != nil {
		uc.logger.Warnw("add remarks rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("remarks added successfully",
		"ticket_id", res.ticket.ID(),
		"event_id", res.event.ID())

	return &dto.TransitionResultDTO{
		Ticket:     dto.ToTicketDTO(res.ticket, "", ""),
		Event:      dto.ToEventDTO(res.event),
		Attachment: dto.ToAttachmentDTO(res.attachment),
	}, nil
}
