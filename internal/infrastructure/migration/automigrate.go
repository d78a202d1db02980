package migration

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every table owned or read by the service.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.TicketStatusModel{},
		&models.TicketPriorityModel{},
		&models.MaintenanceTicketModel{},
		&models.TicketEventModel{},
		&models.TicketAttachmentModel{},
		&models.NotificationReadModel{},
	}
}

// SeedCatalog inserts the status and priority rows the workflow depends on.
// Existing rows are left alone.
func SeedCatalog(db *gorm.DB) error {
	statuses := make([]models.TicketStatusModel, 0, len(vo.AllStatuses()))
	for _, s := range vo.AllStatuses() {
		statuses = append(statuses, models.TicketStatusModel{ID: uint(s), Name: s.String()})
	}
	priorities := make([]models.TicketPriorityModel, 0, len(vo.AllPriorities()))
	for _, p := range vo.AllPriorities() {
		priorities = append(priorities, models.TicketPriorityModel{ID: uint(p), Name: p.String()})
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&statuses).Error; err != nil {
		return fmt.Errorf("failed to seed ticket statuses: %w", err)
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&priorities).Error; err != nil {
		return fmt.Errorf("failed to seed ticket priorities: %w", err)
	}
	return nil
}
