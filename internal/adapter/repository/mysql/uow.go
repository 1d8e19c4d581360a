package mysql

import (
	"context"

	"lostfound-backend/internal/domain/claim"
	"lostfound-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Items:   &ItemRepository{db: tx},
		Matches: &MatchRepository{db: tx},
		Claims:  &ClaimRepository{db: tx},
		Users:   &UserRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinClaimTx(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the claim row up-front to prevent races
		c, err := r.Claims.GetByIDForUpdate(ctx, claimID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
