package usecases

import (
	"context"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type BindAttachmentCommand struct {
	TicketID   uint
	UploadedBy uint
	File       maintenance.FileRef
}

// BindAttachmentUseCase records an uploaded file against a ticket outside of
// any workflow action. The attachment has no event.
type BindAttachmentUseCase struct {
	tickets     maintenance.TicketRepository
	attachments maintenance.AttachmentRepository
	logger      logger.Interface
}

func NewBindAttachmentUseCase(
	tickets maintenance.TicketRepository,
	attachments maintenance.AttachmentRepository,
	logger logger.Interface,
) *BindAttachmentUseCase {
	return &BindAttachmentUseCase{
		tickets:     tickets,
		attachments: attachments,
		logger:      logger,
	}
}

func (uc *BindAttachmentUseCase) Execute(ctx context.Context, cmd BindAttachmentCommand) (*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing bind attachment use case",
		"ticket_id", cmd.TicketID,
		"uploaded_by", cmd.UploadedBy,
		"file_name", cmd.File.Name)

	t, err := uc.tickets.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, toAppError(uc.logger, "bind attachment", err, "ticket_id", cmd.TicketID)
	}
	if t == nil {
		return nil, errTicketNotFound()
	}

	a, err := maintenance.NewAttachment(t.ID(), cmd.UploadedBy, cmd.File, nil, biztime.NowUTC())
	if err != nil {
		return nil, toAppError(uc.logger, "bind attachment", err)
	}
	if err := uc.attachments.Create(ctx, a); err != nil {
		return nil, toAppError(uc.logger, "bind attachment", err, "ticket_id", cmd.TicketID)
	}

	uc.logger.Infow("attachment bound successfully",
		"ticket_id", t.ID(),
		"attachment_id", a.ID())

	return dto.ToAttachmentDTO(a), nil
}
