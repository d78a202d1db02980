package maintenance

import (
	"context"

	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
)

// TicketRepository persists tickets. Lookups return (nil, nil) when the
// ticket does not exist.
type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*TicketView, int64, error)
}

// TicketFilter narrows ListTickets. Empty fields do not filter.
type TicketFilter struct {
	Statuses   []vo.Status
	AssignedTo *uint
	CreatedBy  *uint
	Page       int
	PageSize   int
}

// TicketView is a ticket row joined with its catalog names and attachment count.
type TicketView struct {
	Ticket          *Ticket
	StatusName      string
	PriorityName    string
	AttachmentCount int64
}

// EventRepository appends to and reads the ticket event log.
type EventRepository interface {
	Append(ctx context.Context, e *Event) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Event, error)
}

// AttachmentRepository stores attachment bindings.
type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

// Catalog resolves the status and priority lookup tables.
type Catalog interface {
	ResolveStatus(ctx context.Context, label string) (vo.Status, bool, error)
	ResolvePriority(ctx context.Context, label string) (vo.Priority, bool, error)
	StatusName(ctx context.Context, s vo.Status) (string, error)
	PriorityName(ctx context.Context, p vo.Priority) (string, error)
}

// Account is the subset of an account record the workflow reads.
type Account struct {
	ID          uint
	DisplayName string
	Email       string
}

// AccountDirectory looks up accounts. GetByID returns (nil, nil) when absent.
type AccountDirectory interface {
	GetByID(ctx context.Context, id uint) (*Account, error)
}
