package usecases

import (
	"context"

	"github.com/ecobarangay/wasteops/internal/application/notification/dto"
	"github.com/ecobarangay/wasteops/internal/domain/notification"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type MarkAllReadCommand struct {
	AccountID uint
	Type      string
}

type MarkAllReadUseCase struct {
	feed   notification.FeedRepository
	logger logger.Interface
}

func NewMarkAllReadUseCase(feed notification.FeedRepository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		feed:   feed,
		logger: logger,
	}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) (*dto.MarkAllReadDTO, error) {
	uc.logger.Infow("executing mark all notifications as read use case", "account_id", cmd.AccountID)

	t, err := parseType(cmd.Type)
	if err != nil {
		return nil, err
	}

	marked, err := uc.feed.MarkAllRead(ctx, cmd.AccountID, t, biztime.NowUTC())
	if err != nil {
		return nil, storageError(uc.logger, "mark all notifications as read", err, "account_id", cmd.AccountID)
	}

	uc.logger.Infow("all notifications marked as read",
		"account_id", cmd.AccountID,
		"marked", marked)
	return &dto.MarkAllReadDTO{Marked: marked}, nil
}
