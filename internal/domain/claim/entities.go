package claim

import (
	"time"

	"lostfound-backend/internal/domain/apperr"
)

var (
	ErrNotFound            = apperr.NotFound("claim not found")
	ErrNotPending          = apperr.Conflict("invalid claim or already processed")
	ErrOwnItem             = apperr.Conflict("cannot claim your own item")
	ErrDuplicateMatchClaim = apperr.Conflict("you already have a pending claim for this match")
	ErrDuplicateItemClaim  = apperr.Conflict("you already have a pending claim for this item")
	ErrSideLinked          = apperr.Conflict("claim already has that item linked")
	ErrInvalidItem         = apperr.Validation("invalid claim request: item is required")
	ErrJustification       = apperr.Validation("justification is required")
	ErrItemNotInMatch      = apperr.Validation("item does not belong to the match")
	ErrAdminOnly           = apperr.Forbidden("admin role required")
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Table: claims. At least one of LostItemID/FoundItemID is set.
type Claim struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MatchID       *uint64   `gorm:"column:match_id;index" json:"match_id,omitempty"`
	LostItemID    *uint64   `gorm:"column:lost_item_id;index" json:"lost_item_id,omitempty"`
	FoundItemID   *uint64   `gorm:"column:found_item_id;index" json:"found_item_id,omitempty"`
	UserID        uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Status        Status    `gorm:"column:status;size:20;not null;default:'Pending'" json:"status"`
	Justification string    `gorm:"column:justification;type:text" json:"justification"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Claim) TableName() string { return "claims" }

func (c *Claim) IsPending() bool { return c.Status == StatusPending }

type Filter struct {
	// empty means all statuses
	Status Status
}
