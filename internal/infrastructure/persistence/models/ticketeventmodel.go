package models

import "gorm.io/datatypes"

// TicketEventModel is the append-only ticket history. Rows are ordered by
// (created_at, id).
type TicketEventModel struct {
	ID           uint           `gorm:"primaryKey"`
	TicketID     uint           `gorm:"not null;index:idx_ticket_events_ticket,priority:1"`
	EventType    string         `gorm:"size:32;not null;index"`
	ActorID      uint           `gorm:"not null;index"`
	FromStatusID *uint
	ToStatusID   uint           `gorm:"not null"`
	Payload      datatypes.JSON `gorm:"type:json"`
	CreatedAt    int64          `gorm:"autoCreateTime:false;not null;index;index:idx_ticket_events_ticket,priority:2"`
}

func (TicketEventModel) TableName() string {
	return "ticket_events"
}
