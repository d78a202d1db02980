package models

// AccountModel maps the columns of the accounts table this service reads.
// Accounts are owned by the identity service; this service never writes them.
type AccountModel struct {
	ID          uint   `gorm:"primaryKey"`
	DisplayName string `gorm:"size:120;not null"`
	Email       string `gorm:"size:255"`
	RoleID      uint8  `gorm:"not null"`
}

func (AccountModel) TableName() string {
	return "accounts"
}
