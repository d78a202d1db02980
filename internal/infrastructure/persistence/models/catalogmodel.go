package models

// TicketStatusModel is the ticket_statuses lookup table. Ids are seeded.
type TicketStatusModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"size:50;not null;uniqueIndex"`
}

func (TicketStatusModel) TableName() string {
	return "ticket_statuses"
}

// TicketPriorityModel is the ticket_priorities lookup table. Ids are seeded.
type TicketPriorityModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"size:50;not null;uniqueIndex"`
}

func (TicketPriorityModel) TableName() string {
	return "ticket_priorities"
}
