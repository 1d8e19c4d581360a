package notification

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound-backend/internal/domain/apperr"
	domain "lostfound-backend/internal/domain/notification"
	"lostfound-backend/internal/infrastructure/metrics"
)

const DefaultLimit = 10

type Service struct {
	repo    domain.Repository
	limit   int
	logger  *zap.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

func NewService(repo domain.Repository, limit int, logger *zap.Logger, rec metrics.Recorder) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{repo: repo, limit: limit, logger: logger.Named("notification"), metrics: rec, now: time.Now}
}

// Notify stores msg for its user. It never fails the caller; false means
// the notification was dropped.
func (s *Service) Notify(ctx context.Context, msg domain.Message) bool {
	n := &domain.Notification{
		UserID:    msg.UserID,
		Type:      msg.Type,
		Title:     msg.Title,
		Message:   msg.Message,
		RelatedID: msg.RelatedID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.metrics.NotificationFailed(string(msg.Type))
		s.logger.Warn("notification dropped",
			zap.Uint64("user_id", msg.UserID),
			zap.String("type", string(msg.Type)),
			zap.Error(&apperr.Error{Kind: apperr.KindNotification, Msg: "notify", Err: err}))
		return false
	}
	s.metrics.NotificationSent(string(msg.Type))
	return true
}

// Recent lists unread first, then newest. limit <= 0 uses the configured one.
func (s *Service) Recent(ctx context.Context, userID uint64, limit int) (*InboxDTO, error) {
	if limit <= 0 {
		limit = s.limit
	}
	items, err := s.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, apperr.Storage("listing notifications", err)
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, apperr.Storage("counting notifications", err)
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return &InboxDTO{Items: items, UnreadCount: unread}, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperr.Storage("counting notifications", err)
	}
	return n, nil
}

func (s *Service) Get(ctx context.Context, id, userID uint64) (*domain.Notification, error) {
	n, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, apperr.Storage("loading notification", err)
	}
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID uint64) error {
	found, err := s.repo.MarkRead(ctx, id, userID, s.now().UTC())
	if err != nil {
		return apperr.Storage("marking notification read", err)
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID, s.now().UTC())
	if err != nil {
		return 0, apperr.Storage("marking notifications read", err)
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id, userID uint64) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return apperr.Storage("deleting notification", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
