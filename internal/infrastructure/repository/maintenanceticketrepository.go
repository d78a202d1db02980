package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/mappers"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
	"github.com/ecobarangay/wasteops/internal/shared/db"
)

var _ maintenance.TicketRepository = (*MaintenanceTicketRepository)(nil)

// ticketUpdateColumns are rewritten on every Update; created_by and
// created_at never change.
var ticketUpdateColumns = []string{
	"title", "details", "priority_id", "status_id", "assigned_to",
	"due_date", "remarks", "completed_at", "updated_at",
}

type MaintenanceTicketRepository struct {
	db     *gorm.DB
	mapper mappers.MaintenanceMapper
}

func NewMaintenanceTicketRepository(db *gorm.DB) *MaintenanceTicketRepository {
	return &MaintenanceTicketRepository{
		db:     db,
		mapper: mappers.NewMaintenanceMapper(),
	}
}

func (r *MaintenanceTicketRepository) Create(ctx context.Context, t *maintenance.Ticket) error {
	model := r.mapper.TicketToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *MaintenanceTicketRepository) Update(ctx context.Context, t *maintenance.Ticket) error {
	model := r.mapper.TicketToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.MaintenanceTicketModel{}).
		Where("id = ?", model.ID).
		Select(ticketUpdateColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *MaintenanceTicketRepository) GetByID(ctx context.Context, id uint) (*maintenance.Ticket, error) {
	return r.get(ctx, id, false)
}

func (r *MaintenanceTicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*maintenance.Ticket, error) {
	return r.get(ctx, id, true)
}

func (r *MaintenanceTicketRepository) get(ctx context.Context, id uint, lock bool) (*maintenance.Ticket, error) {
	var model models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if lock {
		tx = tx.Scopes(db.ForUpdate(ctx))
	}

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.TicketToDomain(&model)
}

type ticketListRow struct {
	models.MaintenanceTicketModel `gorm:"embedded"`
	StatusName                    string
	PriorityName                  *string
	AttachmentCount               int64
}

func (r *MaintenanceTicketRepository) List(ctx context.Context, filter maintenance.TicketFilter) ([]*maintenance.TicketView, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := applyTicketFilter(tx.Table("tickets AS t"), filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	if total == 0 {
		return []*maintenance.TicketView{}, 0, nil
	}

	query := applyTicketFilter(tx.Table("tickets AS t"), filter).
		Select("t.*, s.name AS status_name, p.name AS priority_name, " +
			"(SELECT COUNT(*) FROM ticket_attachments a WHERE a.ticket_id = t.id) AS attachment_count").
		Joins("LEFT JOIN ticket_statuses s ON s.id = t.status_id").
		Joins("LEFT JOIN ticket_priorities p ON p.id = t.priority_id").
		Order("t.created_at DESC").
		Order("t.id DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []ticketListRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	views := make([]*maintenance.TicketView, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.TicketToDomain(&rows[i].MaintenanceTicketModel)
		if err != nil {
			return nil, 0, err
		}
		view := &maintenance.TicketView{
			Ticket:          t,
			StatusName:      rows[i].StatusName,
			AttachmentCount: rows[i].AttachmentCount,
		}
		if rows[i].PriorityName != nil {
			view.PriorityName = *rows[i].PriorityName
		}
		views = append(views, view)
	}
	return views, total, nil
}

func applyTicketFilter(q *gorm.DB, filter maintenance.TicketFilter) *gorm.DB {
	if len(filter.Statuses) > 0 {
		ids := make([]uint, len(filter.Statuses))
		for i, s := range filter.Statuses {
			ids[i] = uint(s)
		}
		q = q.Where("t.status_id IN ?", ids)
	}
	if filter.AssignedTo != nil {
		q = q.Where("t.assigned_to = ?", *filter.AssignedTo)
	}
	if filter.CreatedBy != nil {
		q = q.Where("t.created_by = ?", *filter.CreatedBy)
	}
	return q
}
