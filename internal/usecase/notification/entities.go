package notification

import domain "lostfound-backend/internal/domain/notification"

// InboxDTO is the recent list plus the unread badge.
type InboxDTO struct {
	Items       []domain.Notification `json:"items"`
	UnreadCount int64                 `json:"unread_count"`
}
