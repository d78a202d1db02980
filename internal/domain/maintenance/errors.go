package maintenance

import "errors"

// Sentinel errors returned by the maintenance domain. Use cases translate
// them into application errors.
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title exceeds maximum length of 200 characters")
	ErrCreatorRequired    = errors.New("creator is required")
	ErrCreatorRole        = errors.New("role is not allowed to create maintenance tickets")
	ErrDueDateRequired    = errors.New("due date is required")
	ErrAssigneeRequired   = errors.New("assignee is required")
	ErrRemarksRequired    = errors.New("remarks text is required")
	ErrForbidden          = errors.New("actor is not allowed to perform this action")
	ErrInvalidTransition  = errors.New("transition is not permitted from the current status")
	ErrUnknownAction      = errors.New("unknown workflow action")
	ErrInvalidAttachment  = errors.New("attachment requires ticket, uploader, file path and file name")
	ErrEventTicketMissing = errors.New("event requires a ticket")
)
