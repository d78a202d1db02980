package usecases

import (
	"context"

	"github.com/ecobarangay/wasteops/internal/domain/notification"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type MarkReadCommand struct {
	AccountID uint
	Type      string
	ID        uint
}

type MarkReadUseCase struct {
	feed   notification.FeedRepository
	logger logger.Interface
}

func NewMarkReadUseCase(feed notification.FeedRepository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{
		feed:   feed,
		logger: logger,
	}
}

// Execute marks one notification as read. Marking it twice is not an error.
func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	t, err := parseType(cmd.Type)
	if err != nil {
		return err
	}

	exists, err := uc.feed.Exists(ctx, t, cmd.ID)
	if err != nil {
		return storageError(uc.logger, "mark notification as read", err, "notification_id", cmd.ID)
	}
	if !exists {
		return errors.NewNotFoundError("notification not found")
	}

	if err := uc.feed.MarkRead(ctx, cmd.AccountID, t, cmd.ID, biztime.NowUTC()); err != nil {
		return storageError(uc.logger, "mark notification as read", err, "notification_id", cmd.ID)
	}

	uc.logger.Infow("notification marked as read",
		"account_id", cmd.AccountID,
		"notification_id", cmd.ID)
	return nil
}
