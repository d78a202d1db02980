package usecases

import (
	"context"
	"time"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
)

// TransactionRunner runs fn in one database transaction carried by ctx.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TextSanitizer strips markup from free text before it is stored.
type TextSanitizer interface {
	SanitizeText(text string) string
}

// DetailsRenderer turns stored ticket details into safe HTML.
type DetailsRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// AssignmentNotice is what the assignee is told after an accept.
type AssignmentNotice struct {
	TicketID      uint
	TicketTitle   string
	AssigneeName  string
	AssigneeEmail string
	DueDate       time.Time
	Priority      string
	Reassigned    bool
}

// AssignmentNotifier delivers assignment notices. Delivery is best-effort.
type AssignmentNotifier interface {
	NotifyAssignment(ctx context.Context, n AssignmentNotice) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TransitionResultDTO, error)
}

type AcceptTicketExecutor interface {
	Execute(ctx context.Context, cmd AcceptTicketCommand) (*dto.TransitionResultDTO, error)
}

// TransitionTicketExecutor covers the parameterless transitions: mark
// on-going, mark for verification, verify completion and cancel.
type TransitionTicketExecutor interface {
	Execute(ctx context.Context, cmd TransitionTicketCommand) (*dto.TransitionResultDTO, error)
}

type AddRemarksExecutor interface {
	Execute(ctx context.Context, cmd AddRemarksCommand) (*dto.TransitionResultDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type BindAttachmentExecutor interface {
	Execute(ctx context.Context, cmd BindAttachmentCommand) (*dto.AttachmentDTO, error)
}
