package claimmock

import (
	"context"

	domain "lostfound-backend/internal/domain/claim"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, c *domain.Claim) error
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Claim, error)
	GetByIDForUpdateFn   func(ctx context.Context, id uint64) (*domain.Claim, error)
	FindPendingByMatchFn func(ctx context.Context, matchID, userID uint64) (*domain.Claim, error)
	FindPendingByItemsFn func(ctx context.Context, userID uint64, lostItemID, foundItemID *uint64) (*domain.Claim, error)
	ListPendingByMatchFn func(ctx context.Context, matchID, exceptID uint64) ([]domain.Claim, error)
	UpdateStatusFn       func(ctx context.Context, id uint64, s domain.Status) error
	SetLostItemFn        func(ctx context.Context, id, lostItemID uint64) error
	SetFoundItemFn       func(ctx context.Context, id, foundItemID uint64) error
	ListFn               func(ctx context.Context, f domain.Filter) ([]domain.Claim, error)
	CountByStatusFn      func(ctx context.Context, s domain.Status) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) FindPendingByMatch(ctx context.Context, matchID, userID uint64) (*domain.Claim, error) {
	if m.FindPendingByMatchFn != nil {
		return m.FindPendingByMatchFn(ctx, matchID, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) FindPendingByItems(ctx context.Context, userID uint64, lostItemID, foundItemID *uint64) (*domain.Claim, error) {
	if m.FindPendingByItemsFn != nil {
		return m.FindPendingByItemsFn(ctx, userID, lostItemID, foundItemID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListPendingByMatch(ctx context.Context, matchID, exceptID uint64) ([]domain.Claim, error) {
	if m.ListPendingByMatchFn != nil {
		return m.ListPendingByMatchFn(ctx, matchID, exceptID)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, s domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, s)
	}
	return nil
}

func (m *Repo) SetLostItem(ctx context.Context, id, lostItemID uint64) error {
	if m.SetLostItemFn != nil {
		return m.SetLostItemFn(ctx, id, lostItemID)
	}
	return nil
}

func (m *Repo) SetFoundItem(ctx context.Context, id, foundItemID uint64) error {
	if m.SetFoundItemFn != nil {
		return m.SetFoundItemFn(ctx, id, foundItemID)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Claim, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, context.Canceled
}
