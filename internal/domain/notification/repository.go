package notification

import (
	"context"
	"time"
)

// All reads and writes except Create are scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListRecent(ctx context.Context, userID uint64, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID uint64) (int64, error)
	Get(ctx context.Context, id, userID uint64) (*Notification, error)
	MarkRead(ctx context.Context, id, userID uint64, at time.Time) (bool, error)
	MarkAllRead(ctx context.Context, userID uint64, at time.Time) (int64, error)
	Delete(ctx context.Context, id, userID uint64) (bool, error)
}
