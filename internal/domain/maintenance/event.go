package maintenance

import (
	"time"

	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
)

// EventType names a ticket transition or annotation.
type EventType string

const (
	EventRequested       EventType = "REQUESTED"
	EventAccepted        EventType = "ACCEPTED"
	EventReassigned      EventType = "REASSIGNED"
	EventOngoing         EventType = "ONGOING"
	EventForVerification EventType = "FOR_VERIFICATION"
	EventCompleted       EventType = "COMPLETED"
	EventCancelled       EventType = "CANCELLED"
	EventRemarkAdded     EventType = "REMARK_ADDED"
)

func (e EventType) String() string {
	return string(e)
}

func (e EventType) IsValid() bool {
	switch e {
	case EventRequested, EventAccepted, EventReassigned, EventOngoing,
		EventForVerification, EventCompleted, EventCancelled, EventRemarkAdded:
		return true
	}
	return false
}

// Payload keys written alongside an event.
const (
	PayloadAssignee         = "assignee"
	PayloadPreviousAssignee = "previous_assignee"
	PayloadDueDate          = "due_date"
	PayloadPriority         = "priority"
	PayloadRemark           = "remark"
)

// Event is one immutable row of a ticket's history.
type Event struct {
	id         uint
	ticketID   uint
	eventType  EventType
	actorID    uint
	fromStatus *vo.Status
	toStatus   vo.Status
	payload    map[string]any
	createdAt  time.Time
}

func newEvent(t *Ticket, eventType EventType, actorID uint, from *vo.Status, at time.Time, payload map[string]any) *Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return &Event{
		ticketID:   t.id,
		eventType:  eventType,
		actorID:    actorID,
		fromStatus: from,
		toStatus:   t.status,
		payload:    payload,
		createdAt:  at,
	}
}

// RequestedEvent records the opening of t. It must be built after t has an id.
func RequestedEvent(t *Ticket) (*Event, error) {
	if t.id == 0 {
		return nil, ErrEventTicketMissing
	}
	payload := map[string]any{}
	if t.priority != nil {
		payload[PayloadPriority] = t.priority.String()
	}
	if t.dueDate != nil {
		payload[PayloadDueDate] = t.dueDate.UTC().Format(time.RFC3339)
	}
	return newEvent(t, EventRequested, t.createdBy, nil, t.createdAt, payload), nil
}

// ReconstructEvent rebuilds a persisted event.
func ReconstructEvent(
	id, ticketID uint,
	eventType EventType,
	actorID uint,
	fromStatus *vo.Status,
	toStatus vo.Status,
	payload map[string]any,
	createdAt time.Time,
) *Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return &Event{
		id:         id,
		ticketID:   ticketID,
		eventType:  eventType,
		actorID:    actorID,
		fromStatus: fromStatus,
		toStatus:   toStatus,
		payload:    payload,
		createdAt:  createdAt,
	}
}

func (e *Event) ID() uint { return e.id }
func (e *Event) TicketID() uint { return e.ticketID }
func (e *Event) Type() EventType { return e.eventType }
func (e *Event) ActorID() uint { return e.actorID }
func (e *Event) FromStatus() *vo.Status { return e.fromStatus }
func (e *Event) ToStatus() vo.Status { return e.toStatus }
func (e *Event) CreatedAt() time.Time { return e.createdAt }

// Payload returns a copy of the event payload.
func (e *Event) Payload() map[string]any {
	out := make(map[string]any, len(e.payload))
	for k, v := range e.payload {
		out[k] = v
	}
	return out
}

// SetID assigns the storage id after insert.
func (e *Event) SetID(id uint) {
	if e.id == 0 {
		e.id = id
	}
}
