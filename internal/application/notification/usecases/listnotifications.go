package usecases

import (
	"context"

	"github.com/ecobarangay/wasteops/internal/application/notification/dto"
	"github.com/ecobarangay/wasteops/internal/domain/notification"
	"github.com/ecobarangay/wasteops/internal/shared/constants"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type ListNotificationsQuery struct {
	AccountID  uint
	Type       string
	Limit      int
	Offset     int
	UnreadOnly bool
}

type ListNotificationsUseCase struct {
	feed   notification.FeedRepository
	logger logger.Interface
}

func NewListNotificationsUseCase(feed notification.FeedRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		feed:   feed,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*dto.NotificationListDTO, error) {
	t, err := parseType(query.Type)
	if err != nil {
		return nil, err
	}

	limit, offset := query.Limit, query.Offset
	if limit < 1 {
		limit = constants.DefaultFeedLimit
	}
	if limit > constants.MaxFeedLimit {
		limit = constants.MaxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := uc.feed.List(ctx, notification.FeedQuery{
		AccountID:  query.AccountID,
		Type:       t,
		Limit:      limit,
		Offset:     offset,
		UnreadOnly: query.UnreadOnly,
	})
	if err != nil {
		return nil, storageError(uc.logger, "list notifications", err, "account_id", query.AccountID)
	}

	counts, err := uc.feed.Count(ctx, query.AccountID, t)
	if err != nil {
		return nil, storageError(uc.logger, "count notifications", err, "account_id", query.AccountID)
	}

	return &dto.NotificationListDTO{
		Items:  dto.ToNotificationDTOs(items),
		Total:  counts.Total,
		Unread: counts.Unread,
		Limit:  limit,
		Offset: offset,
	}, nil
}
