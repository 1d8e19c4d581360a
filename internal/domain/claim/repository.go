package claim

import "context"

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint64) (*Claim, error)

	// Lock the claim row until the surrounding tx ends
	GetByIDForUpdate(ctx context.Context, id uint64) (*Claim, error)

	// Pending claim of userID on matchID
	FindPendingByMatch(ctx context.Context, matchID, userID uint64) (*Claim, error)
	// Pending claim of userID on exactly this (lost, found) pair, nil sides compare equal
	FindPendingByItems(ctx context.Context, userID uint64, lostItemID, foundItemID *uint64) (*Claim, error)

	// Pending claims on matchID other than exceptID
	ListPendingByMatch(ctx context.Context, matchID, exceptID uint64) ([]Claim, error)

	UpdateStatus(ctx context.Context, id uint64, s Status) error
	SetLostItem(ctx context.Context, id, lostItemID uint64) error
	SetFoundItem(ctx context.Context, id, foundItemID uint64) error

	List(ctx context.Context, f Filter) ([]Claim, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
}
