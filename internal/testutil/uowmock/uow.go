package uowmock

import (
	"context"
	"errors"

	"lostfound-backend/internal/domain/claim"
	"lostfound-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed uow.UnitOfWork; unfilled funcs return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinClaimTxFn func(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim) error) error
}

func New() *UoW { return &UoW{} }

// Run returns a UoW that hands repos to every tx body and locks nothing.
func Run(repos uow.Repos) *UoW {
	return New().
		WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		}).
		WithWithinClaimTx(func(ctx context.Context, claimID uint64, fn func(uow.Repos, *claim.Claim) error) error {
			c, err := repos.Claims.GetByIDForUpdate(ctx, claimID)
			if err != nil {
				return err
			}
			return fn(repos, c)
		})
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinClaimTx(fn func(context.Context, uint64, func(uow.Repos, *claim.Claim) error) error) *UoW {
	m.WithinClaimTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinClaimTx(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim) error) error {
	if m.WithinClaimTxFn != nil {
		return m.WithinClaimTxFn(ctx, claimID, fn)
	}
	return errUnimplemented
}
