package uow

import (
	"context"

	"lostfound-backend/internal/domain/claim"
	"lostfound-backend/internal/domain/item"
	"lostfound-backend/internal/domain/match"
	"lostfound-backend/internal/domain/user"
)

// Repos bound to one transaction
type Repos struct {
	Items   item.Repository
	Matches match.Repository
	Claims  claim.Repository
	Users   user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the claim row first, then pass it in
	WithinClaimTx(ctx context.Context, claimID uint64, fn func(r Repos, c *claim.Claim) error) error
}
