package notification

import (
	"context"
	"time"
)

// FeedQuery selects a window of the feed as seen by AccountID.
type FeedQuery struct {
	AccountID  uint
	Type       Type
	Limit      int
	Offset     int
	UnreadOnly bool
}

// Counts summarizes the feed for one account.
type Counts struct {
	Total  int64
	Unread int64
}

// FeedRepository reads the projected feed and maintains read markers.
type FeedRepository interface {
	List(ctx context.Context, q FeedQuery) ([]*Item, error)
	Count(ctx context.Context, accountID uint, t Type) (Counts, error)
	Exists(ctx context.Context, t Type, id uint) (bool, error)
	// MarkRead inserts a marker unless one exists.
	MarkRead(ctx context.Context, accountID uint, t Type, id uint, at time.Time) error
	// MarkAllRead inserts markers for every unmarked item in one statement
	// and returns how many were added.
	MarkAllRead(ctx context.Context, accountID uint, t Type, at time.Time) (int64, error)
}
