package notification

import (
	"time"

	"lostfound-backend/internal/domain/apperr"
)

var ErrNotFound = apperr.NotFound("notification not found")

type Type string

const (
	TypeNewClaim      Type = "new_claim"
	TypeClaimApproved Type = "claim_approved"
	TypeClaimRejected Type = "claim_rejected"
)

// Table: notifications
type Notification struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Type      Type       `gorm:"column:type;size:50;not null" json:"type"`
	Title     string     `gorm:"column:title;size:255;not null" json:"title"`
	Message   string     `gorm:"column:message;type:text" json:"message"`
	RelatedID *uint64    `gorm:"column:related_id" json:"related_id,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) IsRead() bool { return n.ReadAt != nil }

// Message is what a sender hands to the sink.
type Message struct {
	UserID    uint64
	Type      Type
	Title     string
	Message   string
	RelatedID *uint64
}
