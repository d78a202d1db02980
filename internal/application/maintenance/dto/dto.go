// Package dto holds the response shapes of the maintenance use cases.
package dto

import (
	"time"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Details         string     `json:"details,omitempty"`
	Priority        *string    `json:"priority"`
	Status          string     `json:"status"`
	CreatedBy       uint       `json:"created_by"`
	AssignedTo      *uint      `json:"assigned_to"`
	DueDate         *string    `json:"due_date"`
	Remarks         string     `json:"remarks,omitempty"`
	AttachmentCount *int64     `json:"attachment_count,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CompletedAt     *time.Time `json:"completed_at"`
}

// TicketDetailDTO is a ticket with its rendered details and full history.
type TicketDetailDTO struct {
	TicketDTO
	DetailsHTML string          `json:"details_html,omitempty"`
	Attachments []AttachmentDTO `json:"attachments"`
	Events      []EventDTO      `json:"events"`
}

type AttachmentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	EventID    *uint     `json:"event_id"`
	UploadedBy uint      `json:"uploaded_by"`
	FilePath   string    `json:"file_path"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type,omitempty"`
	FileSize   *int64    `json:"file_size,omitempty"`
	Subfolder  string    `json:"subfolder,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type EventDTO struct {
	ID         uint           `json:"id"`
	TicketID   uint           `json:"ticket_id"`
	EventType  string         `json:"event_type"`
	ActorID    uint           `json:"actor_id"`
	FromStatus *string        `json:"from_status"`
	ToStatus   string         `json:"to_status"`
	Payload    map[string]any `json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// TransitionResultDTO is returned by every state-changing operation.
type TransitionResultDTO struct {
	Ticket     *TicketDTO     `json:"ticket"`
	Event      *EventDTO      `json:"event"`
	Attachment *AttachmentDTO `json:"attachment,omitempty"`
}

// ToTicketDTO renders t using the catalog names for its status and priority.
// Empty names fall back to the built-in labels.
func ToTicketDTO(t *maintenance.Ticket, statusName, priorityName string) *TicketDTO {
	if t == nil {
		return nil
	}
	if statusName == "" {
		statusName = t.Status().String()
	}

	out := &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Details:     t.Details(),
		Status:      statusName,
		CreatedBy:   t.CreatedBy(),
		AssignedTo:  t.AssignedTo(),
		Remarks:     t.Remarks(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		CompletedAt: t.CompletedAt(),
	}
	if p := t.Priority(); p != nil {
		if priorityName == "" {
			priorityName = p.String()
		}
		out.Priority = &priorityName
	}
	if due := t.DueDate(); due != nil {
		formatted := biztime.FormatDate(*due)
		out.DueDate = &formatted
	}
	return out
}

// ToTicketListDTO renders a list row.
func ToTicketListDTO(v *maintenance.TicketView) *TicketDTO {
	if v == nil {
		return nil
	}
	out := ToTicketDTO(v.Ticket, v.StatusName, v.PriorityName)
	count := v.AttachmentCount
	out.AttachmentCount = &count
	return out
}

func ToAttachmentDTO(a *maintenance.Attachment) *AttachmentDTO {
	if a == nil {
		return nil
	}
	return &AttachmentDTO{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		EventID:    a.EventID(),
		UploadedBy: a.UploadedBy(),
		FilePath:   a.FilePath(),
		FileName:   a.FileName(),
		FileType:   a.FileType(),
		FileSize:   a.FileSize(),
		Subfolder:  a.Subfolder(),
		UploadedAt: a.UploadedAt(),
	}
}

func ToEventDTO(e *maintenance.Event) *EventDTO {
	if e == nil {
		return nil
	}
	out := &EventDTO{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		EventType: e.Type().String(),
		ActorID:   e.ActorID(),
		ToStatus:  e.ToStatus().String(),
		Payload:   e.Payload(),
		CreatedAt: e.CreatedAt(),
	}
	if from := e.FromStatus(); from != nil {
		name := from.String()
		out.FromStatus = &name
	}
	return out
}

func ToAttachmentDTOs(attachments []*maintenance.Attachment) []AttachmentDTO {
	out := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, *ToAttachmentDTO(a))
	}
	return out
}

func ToEventDTOs(events []*maintenance.Event) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, *ToEventDTO(e))
	}
	return out
}
