package usermock

import (
	"context"

	domain "lostfound-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.User, error)
	ListIDsByRoleFn func(ctx context.Context, role domain.Role) ([]uint64, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListIDsByRole(ctx context.Context, role domain.Role) ([]uint64, error) {
	if m.ListIDsByRoleFn != nil {
		return m.ListIDsByRoleFn(ctx, role)
	}
	return nil, context.Canceled
}
