package usecases

import (
	"context"
	"time"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

// mutation changes a locked ticket and returns the event describing the change.
type mutation func(ctx context.Context, t *maintenance.Ticket, now time.Time) (*maintenance.Event, error)

// ticketWriter runs read-decide-write cycles on one ticket. The ticket row is
// locked for the whole cycle; the ticket, its new event and an optional
// attachment are written in the same transaction or not at all.
type ticketWriter struct {
	txManager   TransactionRunner
	tickets     maintenance.TicketRepository
	events      maintenance.EventRepository
	attachments maintenance.AttachmentRepository
	logger      logger.Interface
	now         func() time.Time
}

func newTicketWriter(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	attachments maintenance.AttachmentRepository,
	log logger.Interface,
) *ticketWriter {
	return &ticketWriter{
		txManager:   txManager,
		tickets:     tickets,
		events:      events,
		attachments: attachments,
		logger:      log,
		now:         biztime.NowUTC,
	}
}

type writeResult struct {
	ticket     *maintenance.Ticket
	event      *maintenance.Event
	attachment *maintenance.Attachment
}

func (w *ticketWriter) mutate(
	ctx context.Context,
	op string,
	ticketID uint,
	actor authorization.Actor,
	file *maintenance.FileRef,
	fn mutation,
) (*writeResult, error) {
	var result writeResult
	err := w.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := w.tickets.GetByIDForUpdate(ctx, ticketID)
		if err != nil {
			return toAppError(w.logger, op, err, "ticket_id", ticketID)
		}
		if t == nil {
			return errTicketNotFound()
		}

		e, err := fn(ctx, t, w.now())
		if err != nil {
			return toAppError(w.logger, op, err, "ticket_id", ticketID)
		}

		if err := w.tickets.Update(ctx, t); err != nil {
			return toAppError(w.logger, op, err, "ticket_id", ticketID)
		}
		if err := w.events.Append(ctx, e); err != nil {
			return toAppError(w.logger, op, err, "ticket_id", ticketID)
		}

		a, err := w.bind(ctx, t, e, actor, file)
		if err != nil {
			return toAppError(w.logger, op, err, "ticket_id", ticketID)
		}

		result = writeResult{ticket: t, event: e, attachment: a}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// bind records file against t and e. A nil file binds nothing.
func (w *ticketWriter) bind(
	ctx context.Context,
	t *maintenance.Ticket,
	e *maintenance.Event,
	actor authorization.Actor,
	file *maintenance.FileRef,
) (*maintenance.Attachment, error) {
	if file == nil {
		return nil, nil
	}
	eventID := e.ID()
	a, err := maintenance.NewAttachment(t.ID(), actor.AccountID, *file, &eventID, e.CreatedAt())
	if err != nil {
		return nil, err
	}
	if err := w.attachments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
