package usecases

import (
	"context"
	"time"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type TransitionTicketCommand struct {
	TicketID uint
	Actor    authorization.Actor
}

// TransitionTicketUseCase applies one parameterless workflow action.
type TransitionTicketUseCase struct {
	writer   *ticketWriter
	workflow *maintenance.Workflow
	action   maintenance.Action
	logger   logger.Interface
}

func newTransitionTicketUseCase(
	action maintenance.Action,
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	workflow *maintenance.Workflow,
	logger logger.Interface,
) *TransitionTicketUseCase {
	return &TransitionTicketUseCase{
		writer:   newTicketWriter(txManager, tickets, events, nil, logger),
		workflow: workflow,
		action:   action,
		logger:   logger,
	}
}

// NewMarkOnGoingUseCase lets the assigned operator re-affirm work in progress.
func NewMarkOnGoingUseCase(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	workflow *maintenance.Workflow,
	logger logger.Interface,
) *TransitionTicketUseCase {
	return newTransitionTicketUseCase(maintenance.ActionMarkOngoing, txManager, tickets, events, workflow, logger)
}

// NewMarkForVerificationUseCase hands finished work back to the office.
func NewMarkForVerificationUseCase(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	workflow *maintenance.Workflow,
	logger logger.Interface,
) *TransitionTicketUseCase {
	return newTransitionTicketUseCase(maintenance.ActionMarkForVerification, txManager, tickets, events, workflow, logger)
}

func NewVerifyCompletionUseCase(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	workflow *maintenance.Workflow,
	logger logger.Interface,
) *TransitionTicketUseCase {
	return newTransitionTicketUseCase(maintenance.ActionVerifyCompletion, txManager, tickets, events, workflow, logger)
}

func NewCancelTicketUseCase(
	txManager TransactionRunner,
	tickets maintenance.TicketRepository,
	events maintenance.EventRepository,
	workflow *maintenance.Workflow,
	logger logger.Interface,
) *TransitionTicketUseCase {
	return newTransitionTicketUseCase(maintenance.ActionCancel, txManager, tickets, events, workflow, logger)
}

// Action reports which workflow action the use case applies.
func (uc *TransitionTicketUseCase) Action() maintenance.Action {
	return uc.action
}

func (uc *TransitionTicketUseCase) Execute(ctx context.Context, cmd TransitionTicketCommand) (*dto.TransitionResultDTO, error) {
	uc.logger.Infow("executing transition ticket use case",
		"action", string(uc.action),
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.Actor.AccountID)

	res, err := uc.writer.mutate(ctx, string(uc.action), cmd.TicketID, cmd.Actor, nil,
		func(_ context.Context, t *maintenance.Ticket, now time.Time) (*maintenance.Event, error) {
			return uc.apply(t, cmd.Actor, now)
		})
	if err != nil {
		uc.logger.Warnw("transition rejected",
			"action", string(uc.action),
			"ticket_id", cmd.TicketID,
			"error", err)
		return nil, err
	}

	uc.logger.Infow("ticket transitioned successfully",
		"action", string(uc.action),
		"ticket_id", res.ticket.ID(),
		"status", res.ticket.Status().String())

	return &dto.TransitionResultDTO{
		Ticket: dto.ToTicketDTO(res.ticket, "", ""),
		Event:  dto.ToEventDTO(res.event),
	}, nil
}

func (uc *TransitionTicketUseCase) apply(t *maintenance.Ticket, actor authorization.Actor, now time.Time) (*maintenance.Event, error) {
	switch uc.action {
	case maintenance.ActionMarkOngoing:
		return uc.workflow.MarkOngoing(t, actor, now)
	case maintenance.ActionMarkForVerification:
		return uc.workflow.MarkForVerification(t, actor, now)
	case maintenance.ActionVerifyCompletion:
		return uc.workflow.VerifyCompletion(t, actor, now)
	case maintenance.ActionCancel:
		return uc.workflow.Cancel(t, actor, now)
	}
	return nil, maintenance.ErrUnknownAction
}
