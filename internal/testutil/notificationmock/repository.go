package notificationmock

import (
	"context"
	"time"

	domain "lostfound-backend/internal/domain/notification"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn      func(ctx context.Context, n *domain.Notification) error
	ListRecentFn  func(ctx context.Context, userID uint64, limit int) ([]domain.Notification, error)
	CountUnreadFn func(ctx context.Context, userID uint64) (int64, error)
	GetFn         func(ctx context.Context, id, userID uint64) (*domain.Notification, error)
	MarkReadFn    func(ctx context.Context, id, userID uint64, at time.Time) (bool, error)
	MarkAllReadFn func(ctx context.Context, userID uint64, at time.Time) (int64, error)
	DeleteFn      func(ctx context.Context, id, userID uint64) (bool, error)
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListRecent(ctx context.Context, userID uint64, limit int) ([]domain.Notification, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, userID, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	if m.CountUnreadFn != nil {
		return m.CountUnreadFn(ctx, userID)
	}
	return 0, context.Canceled
}

func (m *Repo) Get(ctx context.Context, id, userID uint64) (*domain.Notification, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) MarkRead(ctx context.Context, id, userID uint64, at time.Time) (bool, error) {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id, userID, at)
	}
	return false, context.Canceled
}

func (m *Repo) MarkAllRead(ctx context.Context, userID uint64, at time.Time) (int64, error) {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID, at)
	}
	return 0, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, id, userID uint64) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}
	return false, context.Canceled
}
