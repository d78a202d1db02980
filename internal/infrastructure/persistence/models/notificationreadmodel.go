package models

// NotificationReadModel marks one feed item as read by one account.
type NotificationReadModel struct {
	ID               uint   `gorm:"primaryKey"`
	AccountID        uint   `gorm:"not null;uniqueIndex:uk_notification_reads,priority:1"`
	NotificationType string `gorm:"size:32;not null;uniqueIndex:uk_notification_reads,priority:2"`
	NotificationID   uint   `gorm:"not null;uniqueIndex:uk_notification_reads,priority:3"`
	ReadAt           int64  `gorm:"not null"`
}

func (NotificationReadModel) TableName() string {
	return "notification_reads"
}
