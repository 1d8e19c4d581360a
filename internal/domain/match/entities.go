package match

import (
	"time"

	"lostfound-backend/internal/domain/apperr"
)

var (
	ErrNotFound = apperr.NotFound("match not found")
)

// Table: matches. Rows are never updated or deleted.
type Match struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LostItemID  uint64    `gorm:"column:lost_item_id;not null;uniqueIndex:ux_matches_pair,priority:1" json:"lost_item_id"`
	FoundItemID uint64    `gorm:"column:found_item_id;not null;uniqueIndex:ux_matches_pair,priority:2;index" json:"found_item_id"`
	Score       float64   `gorm:"column:score;type:decimal(5,2);not null" json:"score"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Match) TableName() string { return "matches" }

// Candidate is a generated pairing not yet persisted. Score is on the 0-100 scale.
type Candidate struct {
	LostItemID  uint64  `json:"lost_item_id"`
	FoundItemID uint64  `json:"found_item_id"`
	Score       float64 `json:"score"`
}

// EmbeddedItem is an item id with its serialized embedding.
type EmbeddedItem struct {
	ID        uint64 `gorm:"column:id"`
	Embedding string `gorm:"column:embedding"`
}

type ItemSummary struct {
	ID          uint64 `json:"id"`
	OwnerID     uint64 `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type ClaimSummary struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// View is a match joined with both items and its latest claim, if any.
type View struct {
	Match
	Lost        ItemSummary   `json:"lost"`
	Found       ItemSummary   `json:"found"`
	LatestClaim *ClaimSummary `json:"latest_claim,omitempty"`
}
