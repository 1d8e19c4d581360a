package mysql

import (
	"context"
	"time"

	notificationDomain "lostfound-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notificationDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListRecent: unread first, then newest.
func (r *NotificationRepository) ListRecent(ctx context.Context, userID uint64, limit int) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("read_at IS NULL DESC, created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&notificationDomain.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&n).Error
	return n, err
}

func (r *NotificationRepository) Get(ctx context.Context, id, userID uint64) (*notificationDomain.Notification, error) {
	var out notificationDomain.Notification
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// MarkRead keeps the first read time; found reports whether the row belongs to userID.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uint64, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&notificationDomain.Notification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", id, userID).
		Update("read_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&notificationDomain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint64, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&notificationDomain.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", at)
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id, userID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&notificationDomain.Notification{})
	return res.RowsAffected > 0, res.Error
}
