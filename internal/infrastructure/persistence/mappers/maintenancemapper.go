package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
)

// MaintenanceMapper converts maintenance aggregates to and from persistence models.
type MaintenanceMapper interface {
	TicketToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel
	TicketToDomain(m *models.MaintenanceTicketModel) (*maintenance.Ticket, error)
	EventToModel(e *maintenance.Event) (*models.TicketEventModel, error)
	EventToDomain(m *models.TicketEventModel) (*maintenance.Event, error)
	AttachmentToModel(a *maintenance.Attachment) *models.TicketAttachmentModel
	AttachmentToDomain(m *models.TicketAttachmentModel) *maintenance.Attachment
}

// MaintenanceMapperImpl is the concrete implementation of MaintenanceMapper.
type MaintenanceMapperImpl struct{}

// NewMaintenanceMapper creates a new MaintenanceMapper.
func NewMaintenanceMapper() MaintenanceMapper {
	return &MaintenanceMapperImpl{}
}

func (m *MaintenanceMapperImpl) TicketToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel {
	model := &models.MaintenanceTicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Details:     t.Details(),
		StatusID:    uint(t.Status()),
		CreatedBy:   t.CreatedBy(),
		AssignedTo:  t.AssignedTo(),
		DueDate:     millisPtr(t.DueDate()),
		Remarks:     t.Remarks(),
		CompletedAt: millisPtr(t.CompletedAt()),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
	if p := t.Priority(); p != nil {
		id := uint(*p)
		model.PriorityID = &id
	}
	return model
}

func (m *MaintenanceMapperImpl) TicketToDomain(model *models.MaintenanceTicketModel) (*maintenance.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	status, err := vo.NewStatus(model.StatusID)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	var priority *vo.Priority
	if model.PriorityID != nil {
		p, err := vo.NewPriority(*model.PriorityID)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
		}
		priority = &p
	}
	return maintenance.ReconstructTicket(
		model.ID,
		model.Title,
		model.Details,
		priority,
		status,
		model.CreatedBy,
		model.AssignedTo,
		timePtr(model.DueDate),
		model.Remarks,
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
		timePtr(model.CompletedAt),
	), nil
}

func (m *MaintenanceMapperImpl) EventToModel(e *maintenance.Event) (*models.TicketEventModel, error) {
	payload, err := json.Marshal(e.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to encode event payload: %w", err)
	}
	model := &models.TicketEventModel{
		ID:         e.ID(),
		TicketID:   e.TicketID(),
		EventType:  e.Type().String(),
		ActorID:    e.ActorID(),
		ToStatusID: uint(e.ToStatus()),
		Payload:    datatypes.JSON(payload),
		CreatedAt:  e.CreatedAt().UnixMilli(),
	}
	if from := e.FromStatus(); from != nil {
		id := uint(*from)
		model.FromStatusID = &id
	}
	return model, nil
}

func (m *MaintenanceMapperImpl) EventToDomain(model *models.TicketEventModel) (*maintenance.Event, error) {
	to, err := vo.NewStatus(model.ToStatusID)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", model.ID, err)
	}
	var from *vo.Status
	if model.FromStatusID != nil {
		s, err := vo.NewStatus(*model.FromStatusID)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", model.ID, err)
		}
		from = &s
	}
	payload := map[string]any{}
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("event %d: failed to decode payload: %w", model.ID, err)
		}
	}
	return maintenance.ReconstructEvent(
		model.ID,
		model.TicketID,
		maintenance.EventType(model.EventType),
		model.ActorID,
		from,
		to,
		payload,
		fromMillis(model.CreatedAt),
	), nil
}

func (m *MaintenanceMapperImpl) AttachmentToModel(a *maintenance.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		EventID:    a.EventID(),
		UploadedBy: a.UploadedBy(),
		FilePath:   a.FilePath(),
		FileName:   a.FileName(),
		FileType:   a.FileType(),
		FileSize:   a.FileSize(),
		Subfolder:  a.Subfolder(),
		UploadedAt: a.UploadedAt().UnixMilli(),
	}
}

func (m *MaintenanceMapperImpl) AttachmentToDomain(model *models.TicketAttachmentModel) *maintenance.Attachment {
	return maintenance.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.EventID,
		model.UploadedBy,
		maintenance.FileRef{
			Path:      model.FilePath,
			Name:      model.FileName,
			Type:      model.FileType,
			Size:      model.FileSize,
			Subfolder: model.Subfolder,
		},
		fromMillis(model.UploadedAt),
	)
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func timePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := fromMillis(*ms)
	return &t
}
