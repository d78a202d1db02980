package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecobarangay/wasteops/internal/domain/notification"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
	"github.com/ecobarangay/wasteops/internal/shared/db"
)

var _ notification.FeedRepository = (*NotificationFeedRepository)(nil)

// NotificationFeedRepository projects ticket_events into the maintenance feed
// and stores read markers in notification_reads.
type NotificationFeedRepository struct {
	db *gorm.DB
}

func NewNotificationFeedRepository(db *gorm.DB) *NotificationFeedRepository {
	return &NotificationFeedRepository{db: db}
}

type feedRow struct {
	ID          uint
	TicketID    uint
	EventType   string
	CreatedAt   int64
	TicketTitle *string
	ActorName   *string
	ReadAt      *int64
}

// feedBase joins every maintenance event with its ticket, actor and the
// viewer's read marker.
func (r *NotificationFeedRepository) feedBase(ctx context.Context, accountID uint, t notification.Type) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("ticket_events AS e").
		Joins("LEFT JOIN tickets t ON t.id = e.ticket_id").
		Joins("LEFT JOIN accounts a ON a.id = e.actor_id").
		Joins("LEFT JOIN notification_reads r ON r.notification_id = e.id AND r.account_id = ? AND r.notification_type = ?",
			accountID, t.String())
}

func (r *NotificationFeedRepository) List(ctx context.Context, q notification.FeedQuery) ([]*notification.Item, error) {
	query := r.feedBase(ctx, q.AccountID, q.Type).
		Select("e.id, e.ticket_id, e.event_type, e.created_at, " +
			"t.title AS ticket_title, a.display_name AS actor_name, r.read_at")
	if q.UnreadOnly {
		query = query.Where("r.id IS NULL")
	}

	var rows []feedRow
	err := query.
		Order("e.created_at DESC").
		Order("e.id DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	items := make([]*notification.Item, 0, len(rows))
	for _, row := range rows {
		item := &notification.Item{
			ID:        row.ID,
			Type:      q.Type,
			TicketID:  row.TicketID,
			EventType: row.EventType,
			CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
		}
		if row.TicketTitle != nil {
			item.TicketTitle = *row.TicketTitle
		}
		if row.ActorName != nil {
			item.ActorName = *row.ActorName
		}
		if row.ReadAt != nil {
			readAt := time.UnixMilli(*row.ReadAt).UTC()
			item.ReadAt = &readAt
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *NotificationFeedRepository) Count(ctx context.Context, accountID uint, t notification.Type) (notification.Counts, error) {
	var counts notification.Counts
	err := r.feedBase(ctx, accountID, t).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN r.id IS NULL THEN 1 ELSE 0 END), 0) AS unread").
		Scan(&counts).Error
	if err != nil {
		return notification.Counts{}, fmt.Errorf("failed to count notifications: %w", err)
	}
	return counts, nil
}

func (r *NotificationFeedRepository) Exists(ctx context.Context, t notification.Type, id uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketEventModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check notification: %w", err)
	}
	return count > 0, nil
}

// MarkRead relies on the unique (account, type, id) key: a second call is a no-op.
func (r *NotificationFeedRepository) MarkRead(ctx context.Context, accountID uint, t notification.Type, id uint, at time.Time) error {
	model := &models.NotificationReadModel{
		AccountID:        accountID,
		NotificationType: t.String(),
		NotificationID:   id,
		ReadAt:           at.UnixMilli(),
	}
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

// MarkAllRead inserts every missing marker with a single INSERT ... SELECT so
// the sweep sees one snapshot of ticket_events.
func (r *NotificationFeedRepository) MarkAllRead(ctx context.Context, accountID uint, t notification.Type, at time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	insert, suffix := insertIgnore(tx.Dialector.Name())

	stmt := insert + " INTO notification_reads (account_id, notification_type, notification_id, read_at) " +
		"SELECT ?, ?, e.id, ? FROM ticket_events e " +
		"WHERE NOT EXISTS (SELECT 1 FROM notification_reads r " +
		"WHERE r.account_id = ? AND r.notification_type = ? AND r.notification_id = e.id)" + suffix

	result := tx.Exec(stmt, accountID, t.String(), at.UnixMilli(), accountID, t.String())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// insertIgnore returns the dialect's insert-or-ignore form.
func insertIgnore(dialect string) (prefix, suffix string) {
	switch dialect {
	case "sqlite":
		return "INSERT OR IGNORE", ""
	case "postgres":
		return "INSERT", " ON CONFLICT DO NOTHING"
	default:
		return "INSERT IGNORE", ""
	}
}
