package usecases

import (
	"errors"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	apperrors "github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

func errTicketNotFound() error {
	return apperrors.NewNotFoundError("ticket not found")
}

// domainError translates a maintenance sentinel into an application error.
// It returns nil for errors the domain does not own.
func domainError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, maintenance.ErrForbidden),
		errors.Is(err, maintenance.ErrCreatorRole):
		return apperrors.NewForbiddenError(err.Error())
	case errors.Is(err, maintenance.ErrInvalidTransition):
		return apperrors.NewConflictError(err.Error())
	case errors.Is(err, maintenance.ErrTitleRequired),
		errors.Is(err, maintenance.ErrTitleTooLong),
		errors.Is(err, maintenance.ErrCreatorRequired),
		errors.Is(err, maintenance.ErrDueDateRequired),
		errors.Is(err, maintenance.ErrAssigneeRequired),
		errors.Is(err, maintenance.ErrRemarksRequired),
		errors.Is(err, maintenance.ErrInvalidAttachment):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, maintenance.ErrUnknownAction),
		errors.Is(err, maintenance.ErrEventTicketMissing):
		return apperrors.NewInternalError(err.Error())
	}
	return nil
}

// toAppError passes application errors through, maps domain sentinels and
// turns anything else into a storage error after logging it.
func toAppError(log logger.Interface, op string, err error, keysAndValues ...interface{}) error {
	if err == nil {
		return nil
	}
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr
	}
	if appErr := domainError(err); appErr != nil {
		return appErr
	}
	log.Errorw("storage failure", append([]interface{}{"operation", op, "error", err}, keysAndValues...)...)
	return apperrors.NewStorageError("failed to " + op)
}
