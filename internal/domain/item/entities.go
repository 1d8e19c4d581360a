package item

import (
	"strings"
	"time"

	"lostfound-backend/internal/domain/apperr"
)

var (
	ErrNotFound    = apperr.NotFound("item not found")
	ErrInvalidKind = apperr.Validation("item type must be lost or found")
	ErrNameMissing = apperr.Validation("item name is required")
)

type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindLost:
		return KindLost, nil
	case KindFound:
		return KindFound, nil
	}
	return "", ErrInvalidKind
}

type LostStatus string

const (
	LostPending   LostStatus = "pending"
	LostClaimed   LostStatus = "claimed"
	LostRecovered LostStatus = "recovered"
	LostClosed    LostStatus = "closed"
)

type FoundStatus string

const (
	FoundPending  FoundStatus = "pending"
	FoundClaimed  FoundStatus = "claimed"
	FoundReturned FoundStatus = "returned"
)

// Table: lost_items
type LostItem struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Name        string     `gorm:"column:name;size:255;not null" json:"name"`
	Category    string     `gorm:"column:category;size:100" json:"category"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	LastSeen    string     `gorm:"column:last_seen;size:255" json:"last_seen"`
	LastSeenAt  *time.Time `gorm:"column:last_seen_at" json:"last_seen_at,omitempty"`
	Status      LostStatus `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	Photo       string     `gorm:"column:photo;size:255" json:"photo,omitempty"`
	// JSON array of floats; nil until computed
	Embedding  *string   `gorm:"column:embedding;type:longtext" json:"-"`
	ReportedAt time.Time `gorm:"column:reported_at;autoCreateTime" json:"reported_at"`
}

func (LostItem) TableName() string { return "lost_items" }

// Table: found_items
type FoundItem struct {
	ID          uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint64      `gorm:"column:user_id;not null;index" json:"user_id"`
	Name        string      `gorm:"column:name;size:255;not null" json:"name"`
	Category    string      `gorm:"column:category;size:100" json:"category"`
	Description string      `gorm:"column:description;type:text" json:"description"`
	WhereFound  string      `gorm:"column:where_found;size:255" json:"where_found"`
	FoundAt     *time.Time  `gorm:"column:found_at" json:"found_at,omitempty"`
	Status      FoundStatus `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	Photo       string      `gorm:"column:photo;size:255" json:"photo,omitempty"`
	Embedding   *string     `gorm:"column:embedding;type:longtext" json:"-"`
	ReportedAt  time.Time   `gorm:"column:reported_at;autoCreateTime" json:"reported_at"`
}

func (FoundItem) TableName() string { return "found_items" }

// Ref is the addressed-item view the claim flow needs.
type Ref struct {
	Kind    Kind
	ID      uint64
	OwnerID uint64
	Name    string
}
