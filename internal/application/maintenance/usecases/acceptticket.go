package usecases

import (
	"context"
	"time"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/goroutine"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type AcceptTicketCommand struct {
	TicketID   uint
	Actor      authorization.Actor
	AssignTo   uint
	Priority   string
	DueDate    *time.Time
	Attachment *maintenance.FileRef
}

type AcceptTicketUseCase struct {
	writer   *ticketWriter
	workflow *maintenance.Workflow
	accounts maintenance.AccountDirectory
	catalog  maintenance.Catalog
	notifier AssignmentNotifier
	logger   logger.Interface
}

func NewAcceptTicketUseCase(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	attachments maintenance.AttachmentRepository,
	workflow *maintenance.Workflow,
	accounts maintenance.AccountDirectory,
	catalog maintenance.Catalog,
	notifier AssignmentNotifier,
	logger logger.Interface,
) *AcceptTicketUseCase {
	return &AcceptTicketUseCase{
		writer:   newTicketWriter(txManager, tickets, events, attachments, logger),
		workflow: workflow,
		accounts: accounts,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *AcceptTicketUseCase) Execute(ctx context.Context, cmd AcceptTicketCommand) (*dto.TransitionResultDTO, error) {
	uc.logger.Infow("executing accept ticket use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.Actor.AccountID,
		"assign_to", cmd.AssignTo)

	var assignee *maintenance.Account
	res, err := uc.writer.mutate(ctx, "accept ticket", cmd.TicketID, cmd.Actor, cmd.Attachment,
		func(ctx context.Context, t *maintenance.Ticket, now time.Time) (*maintenance.Event, error) {
			priority, err := resolvePriority(ctx, uc.catalog, uc.logger, cmd.Priority)
			if err != nil {
				return nil, err
			}
			e, err := uc.workflow.Accept(t, cmd.Actor, maintenance.AcceptParams{
				AssignTo: cmd.AssignTo,
				Priority: priority,
				DueDate:  cmd.DueDate,
			}, now)
			if err != nil {
				return nil, err
			}

			assignee, err = uc.accounts.GetByID(ctx, cmd.AssignTo)
			if err != nil {
				return nil, err
			}
			if assignee == nil {
				return nil, errors.NewNotFoundError("assignee account not found")
			}
			return e, nil
		})
	if err != nil {
		uc.logger.Warnw("accept ticket rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket accepted successfully",
		"ticket_id", res.ticket.ID(),
		"event", res.event.Type().String(),
		"assigned_to", cmd.AssignTo)

	uc.notify(ctx, res.ticket, res.event, assignee)

	return &dto.TransitionResultDTO{
		Ticket:     dto.ToTicketDTO(res.ticket, "", ""),
		Event:      dto.ToEventDTO(res.event),
		Attachment: dto.ToAttachmentDTO(res.attachment),
	}, nil
}

// notify sends the assignment notice after commit. Failures are logged only.
func (uc *AcceptTicketUseCase) notify(ctx context.Context, t *maintenance.Ticket, e *maintenance.Event, assignee *maintenance.Account) {
	if uc.notifier == nil || assignee == nil || assignee.Email == "" {
		return
	}

	notice := AssignmentNotice{
		TicketID:      t.ID(),
		TicketTitle:   t.Title(),
		AssigneeName:  assignee.DisplayName,
		AssigneeEmail: assignee.Email,
		Reassigned:    e.Type() == maintenance.EventReassigned,
	}
	if due := t.DueDate(); due != nil {
		notice.DueDate = *due
	}
	if p := t.Priority(); p != nil {
		notice.Priority = p.String()
	}

	ctx = context.WithoutCancel(ctx)
	goroutine.SafeGo(uc.logger, "assignment-notice", func() {
		if err := uc.notifier.NotifyAssignment(ctx, notice); err != nil {
			uc.logger.Warnw("failed to send assignment notice",
				"ticket_id", notice.TicketID,
				"assignee", assignee.ID,
				"error", err)
		}
	})
}
