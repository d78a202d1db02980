package http

import (
	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/domain/notification"
	"github.com/ecobarangay/wasteops/internal/infrastructure/repository"
	"github.com/ecobarangay/wasteops/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	txManager   *db.TransactionManager
	tickets     maintenance.TicketRepository
	events      maintenance.EventRepository
	attachments maintenance.AttachmentRepository
	catalog     maintenance.Catalog
	accounts    maintenance.AccountDirectory
	feed        notification.FeedRepository
}

func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		txManager:   db.NewTransactionManager(gdb),
		tickets:     repository.NewMaintenanceTicketRepository(gdb),
		events:      repository.NewTicketEventRepository(gdb),
		attachments: repository.NewTicketAttachmentRepository(gdb),
		catalog:     repository.NewTicketCatalogRepository(gdb),
		accounts:    repository.NewAccountRepository(gdb),
		feed:        repository.NewNotificationFeedRepository(gdb),
	}
}
