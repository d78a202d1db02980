package dto

import (
	"time"

	"github.com/ecobarangay/wasteops/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint       `json:"id"`
	Type      string     `json:"type"`
	TicketID  uint       `json:"ticket_id"`
	EventType string     `json:"event_type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ActorName string     `json:"actor_name"`
	CreatedAt time.Time  `json:"created_at"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at"`
}

type NotificationListDTO struct {
	Items  []*NotificationDTO `json:"items"`
	Total  int64              `json:"total"`
	Unread int64              `json:"unread"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type MarkAllReadDTO struct {
	Marked int64 `json:"marked"`
}

func ToNotificationDTO(item *notification.Item) *NotificationDTO {
	if item == nil {
		return nil
	}
	return &NotificationDTO{
		ID:        item.ID,
		Type:      item.Type.String(),
		TicketID:  item.TicketID,
		EventType: item.EventType,
		Title:     item.Title(),
		Message:   item.Message(),
		ActorName: item.ActorName,
		CreatedAt: item.CreatedAt,
		Read:      item.Read(),
		ReadAt:    item.ReadAt,
	}
}

func ToNotificationDTOs(items []*notification.Item) []*NotificationDTO {
	out := make([]*NotificationDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ToNotificationDTO(item))
	}
	return out
}
