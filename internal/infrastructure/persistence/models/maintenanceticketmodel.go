package models

// MaintenanceTicketModel is the tickets table. Timestamps are unix millis and
// are written from the domain, not by gorm hooks, so that a ticket and the
// event recorded with it share the same instant.
type MaintenanceTicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Details     string `gorm:"type:text"`
	PriorityID  *uint  `gorm:"index"`
	StatusID    uint   `gorm:"not null;index"`
	CreatedBy   uint   `gorm:"not null;index"`
	AssignedTo  *uint  `gorm:"index"`
	DueDate     *int64
	Remarks     string `gorm:"type:text"`
	CompletedAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:false;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (MaintenanceTicketModel) TableName() string {
	return "tickets"
}

// TicketAttachmentModel is insert-only.
type TicketAttachmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	EventID    *uint  `gorm:"index"`
	UploadedBy uint   `gorm:"not null;index"`
	FilePath   string `gorm:"size:512;not null"`
	FileName   string `gorm:"size:255;not null"`
	FileType   string `gorm:"size:100"`
	FileSize   *int64
	Subfolder  string `gorm:"size:100"`
	UploadedAt int64  `gorm:"not null"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}
