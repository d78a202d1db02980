// Package ticket exposes the maintenance ticket workflow over HTTP.
package ticket

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/storage"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/utils"
)

// FileStore keeps uploaded files. Delete is used to drop an upload whose
// ticket operation failed.
type FileStore interface {
	Save(ctx context.Context, subfolder, originalName string, r io.Reader) (*maintenance.FileRef, error)
	Open(relativePath string) (io.ReadCloser, error)
	Delete(relativePath string) error
}

// ActionObserver counts workflow action outcomes.
type ActionObserver interface {
	ObserveAction(action, outcome string)
}

// UseCases groups the executors the handler dispatches to.
type UseCases struct {
	Create              usecases.CreateTicketExecutor
	Accept              usecases.AcceptTicketExecutor
	MarkOngoing         usecases.TransitionTicketExecutor
	MarkForVerification usecases.TransitionTicketExecutor
	VerifyCompletion    usecases.TransitionTicketExecutor
	Cancel              usecases.TransitionTicketExecutor
	AddRemarks          usecases.AddRemarksExecutor
	List                usecases.ListTicketsExecutor
	Get                 usecases.GetTicketExecutor
	BindAttachment      usecases.BindAttachmentExecutor
}

type TicketHandler struct {
	uc       UseCases
	files    FileStore
	observer ActionObserver
	logger   logger.Interface
}

func NewTicketHandler(uc UseCases, files FileStore, observer ActionObserver, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		uc:       uc,
		files:    files,
		observer: observer,
		logger:   logger,
	}
}

// CreateTicket godoc
// @Summary Create maintenance ticket
// @Description Files a new request. Accepts JSON, or multipart form fields with an optional "file" part.
// @Security Bearer
// @Tags tickets
// @Accept json,mpfd
// @Produce json
// @Param request body CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse{data=dto.TransitionResultDTO} "Ticket created successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := h.saveUpload(c, false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:      actor,
		Title:      req.Title,
		Details:    req.Details,
		Priority:   req.Priority,
		DueDate:    dueDate,
		Attachment: file,
	})
	if err != nil {
		h.discardUpload(file)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets godoc
// @Summary List maintenance tickets
// @Description Newest first. status takes a comma separated list of labels.
// @Security Bearer
// @Tags tickets
// @Produce json
// @Param status query string false "Status labels" example(Requested,On-going)
// @Param assigned_to query int false "Assignee account ID"
// @Param created_by query int false "Creator account ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.TicketDTO}}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var req ListTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	result, err := h.uc.List.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetTicket godoc
// @Summary Get maintenance ticket
// @Description Returns the ticket with rendered details, attachments and event history.
// @Security Bearer
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDetailDTO}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AcceptTicket godoc
// @Summary Accept and assign ticket
// @Description Staff accept a request (or re-assign it) with an assignee, a priority and a due date.
// @Security Bearer
// @Tags tickets
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body AcceptTicketRequest true "Assignment"
// @Success 200 {object} utils.APIResponse{data=dto.TransitionResultDTO} "Ticket accepted"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Failure 409 {object} utils.APIResponse "Transition not allowed from the current status"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /tickets/{id}/accept [post]
func (h *TicketHandler) AcceptTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AcceptTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := h.saveUpload(c, false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Accept.Execute(c.Request.Context(), usecases.AcceptTicketCommand{
		TicketID:   ticketID,
		Actor:      actor,
		AssignTo:   req.AssignTo,
		Priority:   req.Priority,
		DueDate:    dueDate,
		Attachment: file,
	})
	h.observe(maintenance.ActionAccept, err)
	if err != nil {
		h.discardUpload(file)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket accepted", result)
}

// MarkOngoing godoc
// @Summary Mark ticket on-going
// @Security Bearer
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TransitionResultDTO}
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Failure 409 {object} utils.APIResponse "Transition not allowed from the current status"
// @Router /tickets/{id}/ongoing [post]
func (h *TicketHandler) MarkOngoing(c *gin.Context) {
	h.transition(c, maintenance.ActionMarkOngoing, h.uc.MarkOngoing, "Ticket marked on-going")
}

// MarkForVerification godoc
// @Summary Hand ticket over for verification
// @Security Bearer
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TransitionResultDTO}
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Failure 409 {object} utils.APIResponse "Transition not allowed from the current status"
// @Router /tickets/{id}/for-verification [post]
func (h *TicketHandler) MarkForVerification(c *gin.Context) {
	h.transition(c, maintenance.ActionMarkForVerification, h.uc.MarkForVerification, "Ticket marked for verification")
}

// VerifyCompletion godoc
// @Summary Verify ticket completion
// @Security Bearer
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TransitionResultDTO}
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Failure 409 {object} utils.APIResponse "Transition not allowed from the current status"
// @Router /tickets/{id}/complete [post]
func (h *TicketHandler) VerifyCompletion(c *gin.Context) {
	h.transition(c, maintenance.ActionVerifyCompletion, h.uc.VerifyCompletion, "Ticket completed")
}

// CancelTicket godoc
// @Summary Cancel ticket
// @Security Bearer
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TransitionResultDTO}
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Failure 409 {object} utils.APIResponse "Transition not allowed from the current status"
// @Router /tickets/{id}/cancel [post]
func (h *TicketHandler) CancelTicket(c *gin.Context) {
	h.transition(c, maintenance.ActionCancel, h.uc.Cancel, "Ticket cancelled")
}

// AddRemarks godoc
// @Summary Add remarks
// @Description Appends a stamped remark line. Accepts JSON, or multipart with an optional "file" part.
// @Security Bearer
// @Tags tickets
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body AddRemarksRequest true "Remarks"
// @Success 200 {object} utils.APIResponse{data=dto.TransitionResultDTO}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /tickets/{id}/remarks [post]
func (h *TicketHandler) AddRemarks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddRemarksRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	file, err := h.saveUpload(c, false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.AddRemarks.Execute(c.Request.Context(), usecases.AddRemarksCommand{
		TicketID:   ticketID,
		Actor:      actor,
		Remarks:    req.Remarks,
		Attachment: file,
	})
	if err != nil {
		h.discardUpload(file)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Remarks added", result)
}

// UploadAttachment godoc
// @Summary Attach a file to a ticket
// @Security Bearer
// @Tags tickets
// @Accept mpfd
// @Produce json
// @Param id path int true "Ticket ID"
// @Param file formData file true "File to attach"
// @Success 201 {object} utils.APIResponse{data=dto.AttachmentDTO}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /tickets/{id}/attachments [post]
func (h *TicketHandler) UploadAttachment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := h.saveUpload(c, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.BindAttachment.Execute(c.Request.Context(), usecases.BindAttachmentCommand{
		TicketID:   ticketID,
		UploadedBy: actor.AccountID,
		File:       *file,
	})
	if err != nil {
		h.discardUpload(file)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded")
}

func (h *TicketHandler) transition(c *gin.Context, action maintenance.Action, uc usecases.TransitionTicketExecutor, message string) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var result *dto.TransitionResultDTO
	result, err = uc.Execute(c.Request.Context(), usecases.TransitionTicketCommand{TicketID: ticketID, Actor: actor})
	h.observe(action, err)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// DownloadAttachment godoc
// @Summary Download ticket attachment
// @Security Bearer
// @Tags tickets
// @Produce octet-stream
// @Param id path int true "Ticket ID"
// @Param attachmentId path int true "Attachment ID"
// @Success 200 {file} file "Attachment content"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Attachment not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /tickets/{id}/attachments/{attachmentId} [get]
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintID(c.Param("attachmentId"), "attachment id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.uc.Get.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var found *dto.AttachmentDTO
	for i := range detail.Attachments {
		if detail.Attachments[i].ID == attachmentID {
			found = &detail.Attachments[i]
			break
		}
	}
	if found == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment not found"))
		return
	}

	f, err := h.files.Open(found.FilePath)
	if err != nil {
		h.logger.Errorw("failed to open attachment", "error", err, "ticket_id", ticketID, "attachment_id", attachmentID)
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment file not found"))
		return
	}
	defer f.Close()

	contentType := found.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	var size int64 = -1
	if found.FileSize != nil {
		size = *found.FileSize
	}
	c.DataFromReader(http.StatusOK, size, contentType, f, map[string]string{
		"Content-Disposition": `attachment; filename="` + strings.ReplaceAll(found.FileName, `"`, "") + `"`,
	})
}

// saveUpload stores the "file" part of a multipart request. It returns nil
// when the request carries no file and one is not required.
func (h *TicketHandler) saveUpload(c *gin.Context, required bool) (*maintenance.FileRef, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if required {
			return nil, errors.NewValidationError("file is required")
		}
		return nil, nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) && !required {
			return nil, nil
		}
		return nil, errors.NewValidationError("file is required")
	}

	f, err := header.Open()
	if err != nil {
		return nil, errors.NewValidationError("failed to read uploaded file")
	}
	defer f.Close()

	ref, err := h.files.Save(c.Request.Context(), storage.DefaultSubfolder, header.Filename, f)
	if err != nil {
		switch {
		case stderrors.Is(err, storage.ErrFileEmpty),
			stderrors.Is(err, storage.ErrFileTooLarge),
			stderrors.Is(err, storage.ErrTypeNotAllowed),
			stderrors.Is(err, storage.ErrInvalidLocation):
			return nil, errors.NewValidationError(err.Error())
		}
		h.logger.Errorw("failed to store upload", "error", err, "filename", header.Filename)
		return nil, errors.NewStorageError("failed to store file")
	}
	return ref, nil
}

func (h *TicketHandler) discardUpload(file *maintenance.FileRef) {
	if file == nil {
		return
	}
	if err := h.files.Delete(file.Path); err != nil {
		h.logger.Warnw("failed to remove orphaned upload", "error", err, "path", file.Path)
	}
}

func (h *TicketHandler) observe(action maintenance.Action, err error) {
	if h.observer == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if appErr := errors.GetAppError(err); appErr != nil {
			outcome = string(appErr.Type)
		}
	}
	h.observer.ObserveAction(string(action), outcome)
}

func requireActor(c *gin.Context) (authorization.Actor, bool) {
	actor, ok := utils.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return authorization.Actor{}, false
	}
	return actor, true
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseUintID(c.Param("id"), "ticket id")
}
