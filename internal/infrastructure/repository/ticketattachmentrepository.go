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

var _ maintenance.AttachmentRepository = (*TicketAttachmentRepository)(nil)

type TicketAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.MaintenanceMapper
}

func NewTicketAttachmentRepository(db *gorm.DB) *TicketAttachmentRepository {
	return &TicketAttachmentRepository{
		db:     db,
		mapper: mappers.NewMaintenanceMapper(),
	}
}

func (r *TicketAttachmentRepository) Create(ctx context.Context, a *maintenance.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *TicketAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*maintenance.Attachment, error) {
	var rows []models.TicketAttachmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("uploaded_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	out := make([]*maintenance.Attachment, 0, len(rows))
	for i := range rows {
		out = append(out, r.mapper.AttachmentToDomain(&rows[i]))
	}
	return out, nil
}
