package usecases

import (
	"context"

	"github.com/ecobarangay/wasteops/internal/application/notification/dto"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*dto.NotificationListDTO, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) error
}

type MarkAllReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllReadCommand) (*dto.MarkAllReadDTO, error)
}
