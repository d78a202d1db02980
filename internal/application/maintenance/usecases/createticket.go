package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor      authorization.Actor
	Title      string
	Details    string
	Priority   string
	DueDate    *time.Time
	Attachment *maintenance.FileRef
}

type CreateTicketUseCase struct {
	txManager   TransactionRunner
	tickets     maintenance.TicketRepository
	events      maintenance.EventRepository
	attachments maintenance.AttachmentRepository
	catalog     maintenance.Catalog
	sanitizer   TextSanitizer
	logger      logger.Interface
	now         func() time.Time
}

func NewCreateTicketUseCase(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	attachments maintenance.AttachmentRepository,
	catalog maintenance.Catalog,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		txManager:   txManager,
		tickets:     tickets,
		events:      events,
		attachments: attachments,
		catalog:     catalog,
		sanitizer:   sanitizer,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TransitionResultDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"actor_id", cmd.Actor.AccountID,
		"role", cmd.Actor.Role.String())

	if !cmd.Actor.Role.In(maintenance.CreatorRoles()...) {
		uc.logger.Warnw("role may not create tickets", "actor_id", cmd.Actor.AccountID, "role", cmd.Actor.Role.String())
		return nil, errors.NewForbiddenError(maintenance.ErrCreatorRole.Error())
	}

	priority, err := uc.resolvePriority(ctx, cmd.Priority)
	if err != nil {
		return nil, err
	}

	t, err := maintenance.NewTicket(
		uc.sanitizer.SanitizeText(cmd.Title),
		uc.sanitizer.SanitizeText(cmd.Details),
		priority,
		cmd.Actor,
		cmd.DueDate,
		uc.now(),
	)
	if err != nil {
		return nil, toAppError(uc.logger, "create ticket", err)
	}

	var (
		event      *maintenance.Event
		attachment *maintenance.Attachment
	)
	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.tickets.Create(ctx, t); err != nil {
			return err
		}
		e, err := maintenance.RequestedEvent(t)
		if err != nil {
			return err
		}
		if err := uc.events.Append(ctx, e); err != nil {
			return err
		}
		event = e

		if cmd.Attachment == nil {
			return nil
		}
		eventID := e.ID()
		a, err := maintenance.NewAttachment(t.ID(), cmd.Actor.AccountID, *cmd.Attachment, &eventID, e.CreatedAt())
		if err != nil {
			return err
		}
		if err := uc.attachments.Create(ctx, a); err != nil {
			return err
		}
		attachment = a
		return nil
	})
	if err != nil {
		return nil, toAppError(uc.logger, "create ticket", err, "actor_id", cmd.Actor.AccountID)
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", t.ID(),
		"event_id", event.ID(),
		"has_attachment", attachment != nil)

	return &dto.TransitionResultDTO{
		Ticket:     dto.ToTicketDTO(t, "", ""),
		Event:      dto.ToEventDTO(event),
		Attachment: dto.ToAttachmentDTO(attachment),
	}, nil
}

// resolvePriority maps an optional label through the catalog. Blank means no
// priority.
func (uc *CreateTicketUseCase) resolvePriority(ctx context.Context, label string) (*vo.Priority, error) {
	return resolvePriority(ctx, uc.catalog, uc.logger, label)
}

func resolvePriority(ctx context.Context, catalog maintenance.Catalog, log logger.Interface, label string) (*vo.Priority, error) {
	if strings.TrimSpace(label) == "" {
		return nil, nil
	}
	p, ok, err := catalog.ResolvePriority(ctx, label)
	if err != nil {
		return nil, toAppError(log, "resolve priority", err)
	}
	if !ok {
		return nil, errors.NewValidationError("invalid priority", label)
	}
	return &p, nil
}
