package claim

import (
	"time"

	domain "lostfound-backend/internal/domain/claim"
)

// SubmitInput carries only shape checks; ownership, kind and justification
// are decided by Submit so owner exclusion wins over the other field rules.
type SubmitInput struct {
	ItemID        uint64  `json:"item_id" validate:"required"`
	ItemType      string  `json:"item_type"`
	MatchID       *uint64 `json:"match_id" validate:"omitempty,gt=0"`
	Justification string  `json:"justification"`
}

type RejectInput struct {
	Reason string `json:"reason" validate:"max=1000"`
}

type LinkInput struct {
	ItemType string `json:"item_type"`
	ItemID   uint64 `json:"item_id" validate:"required"`
}

type ClaimDTO struct {
	ID            uint64    `json:"id"`
	MatchID       *uint64   `json:"match_id,omitempty"`
	LostItemID    *uint64   `json:"lost_item_id,omitempty"`
	FoundItemID   *uint64   `json:"found_item_id,omitempty"`
	UserID        uint64    `json:"user_id"`
	Status        string    `json:"status"`
	Justification string    `json:"justification"`
	CreatedAt     time.Time `json:"created_at"`
}

// DecisionDTO is the result of an approve/reject.
type DecisionDTO struct {
	Claim ClaimDTO `json:"claim"`
	// sibling claims rejected by an approval
	CascadeRejected []uint64 `json:"cascade_rejected,omitempty"`
}

func toDTO(c *domain.Claim) ClaimDTO {
	return ClaimDTO{
		ID:            c.ID,
		MatchID:       c.MatchID,
		LostItemID:    c.LostItemID,
		FoundItemID:   c.FoundItemID,
		UserID:        c.UserID,
		Status:        string(c.Status),
		Justification: c.Justification,
		CreatedAt:     c.CreatedAt,
	}
}
