package usecases

import (
	"errors"

	"github.com/ecobarangay/wasteops/internal/domain/notification"
	apperrors "github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

func parseType(raw string) (notification.Type, error) {
	t, err := notification.ParseType(raw)
	if errors.Is(err, notification.ErrUnsupportedType) {
		return "", apperrors.NewValidationError("unsupported notification type", raw)
	}
	return t, err
}

func storageError(log logger.Interface, op string, err error, keysAndValues ...interface{}) error {
	log.Errorw("storage failure", append([]interface{}{"operation", op, "error", err}, keysAndValues...)...)
	return apperrors.NewStorageError("failed to " + op)
}
