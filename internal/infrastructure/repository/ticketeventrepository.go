package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/mappers"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
	"github.com/ecobarangay/wasteops/internal/shared/db"
)

var _ maintenance.EventRepository = (*TicketEventRepository)(nil)

type TicketEventRepository struct {
	db     *gorm.DB
	mapper mappers.MaintenanceMapper
}

func NewTicketEventRepository(db *gorm.DB) *TicketEventRepository {
	return &TicketEventRepository{
		db:     db,
		mapper: mappers.NewMaintenanceMapper(),
	}
}

// Append inserts e. Events are never updated.
func (r *TicketEventRepository) Append(ctx context.Context, e *maintenance.Event) error {
	model, err := r.mapper.EventToModel(e)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append ticket event: %w", err)
	}
	e.SetID(model.ID)
	return nil
}

func (r *TicketEventRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*maintenance.Event, error) {
	var rows []models.TicketEventModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket events: %w", err)
	}

	events := make([]*maintenance.Event, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.EventToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
