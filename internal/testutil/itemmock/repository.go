package itemmock

import (
	"context"

	domain "lostfound-backend/internal/domain/item"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed domain.Repository. Unset writes are no-ops,
// unset reads return context.Canceled.
type Repo struct {
	CreateLostFn           func(ctx context.Context, it *domain.LostItem) error
	CreateFoundFn          func(ctx context.Context, it *domain.FoundItem) error
	GetLostFn              func(ctx context.Context, id uint64) (*domain.LostItem, error)
	GetFoundFn             func(ctx context.Context, id uint64) (*domain.FoundItem, error)
	GetLostByOwnerFn       func(ctx context.Context, id, ownerID uint64) (*domain.LostItem, error)
	GetFoundByOwnerFn      func(ctx context.Context, id, ownerID uint64) (*domain.FoundItem, error)
	ListLostByOwnerFn      func(ctx context.Context, ownerID uint64) ([]domain.LostItem, error)
	ListFoundByOwnerFn     func(ctx context.Context, ownerID uint64) ([]domain.FoundItem, error)
	SaveLostFn             func(ctx context.Context, it *domain.LostItem) error
	SaveFoundFn            func(ctx context.Context, it *domain.FoundItem) error
	UpdateLostStatusFn     func(ctx context.Context, id uint64, s domain.LostStatus) error
	UpdateFoundStatusFn    func(ctx context.Context, id uint64, s domain.FoundStatus) error
	UpdateLostEmbeddingFn  func(ctx context.Context, id uint64, embedding string) error
	UpdateFoundEmbeddingFn func(ctx context.Context, id uint64, embedding string) error
	GetRefFn               func(ctx context.Context, kind domain.Kind, id uint64) (*domain.Ref, error)
}

func (m *Repo) CreateLost(ctx context.Context, it *domain.LostItem) error {
	if m.CreateLostFn != nil {
		return m.CreateLostFn(ctx, it)
	}
	return nil
}

func (m *Repo) CreateFound(ctx context.Context, it *domain.FoundItem) error {
	if m.CreateFoundFn != nil {
		return m.CreateFoundFn(ctx, it)
	}
	return nil
}

func (m *Repo) GetLost(ctx context.Context, id uint64) (*domain.LostItem, error) {
	if m.GetLostFn != nil {
		return m.GetLostFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetFound(ctx context.Context, id uint64) (*domain.FoundItem, error) {
	if m.GetFoundFn != nil {
		return m.GetFoundFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetLostByOwner(ctx context.Context, id, ownerID uint64) (*domain.LostItem, error) {
	if m.GetLostByOwnerFn != nil {
		return m.GetLostByOwnerFn(ctx, id, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetFoundByOwner(ctx context.Context, id, ownerID uint64) (*domain.FoundItem, error) {
	if m.GetFoundByOwnerFn != nil {
		return m.GetFoundByOwnerFn(ctx, id, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListLostByOwner(ctx context.Context, ownerID uint64) ([]domain.LostItem, error) {
	if m.ListLostByOwnerFn != nil {
		return m.ListLostByOwnerFn(ctx, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListFoundByOwner(ctx context.Context, ownerID uint64) ([]domain.FoundItem, error) {
	if m.ListFoundByOwnerFn != nil {
		return m.ListFoundByOwnerFn(ctx, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveLost(ctx context.Context, it *domain.LostItem) error {
	if m.SaveLostFn != nil {
		return m.SaveLostFn(ctx, it)
	}
	return nil
}

func (m *Repo) SaveFound(ctx context.Context, it *domain.FoundItem) error {
	if m.SaveFoundFn != nil {
		return m.SaveFoundFn(ctx, it)
	}
	return nil
}

func (m *Repo) UpdateLostStatus(ctx context.Context, id uint64, s domain.LostStatus) error {
	if m.UpdateLostStatusFn != nil {
		return m.UpdateLostStatusFn(ctx, id, s)
	}
	return nil
}

func (m *Repo) UpdateFoundStatus(ctx context.Context, id uint64, s domain.FoundStatus) error {
	if m.UpdateFoundStatusFn != nil {
		return m.UpdateFoundStatusFn(ctx, id, s)
	}
	return nil
}

func (m *Repo) UpdateLostEmbedding(ctx context.Context, id uint64, embedding string) error {
	if m.UpdateLostEmbeddingFn != nil {
		return m.UpdateLostEmbeddingFn(ctx, id, embedding)
	}
	return nil
}

func (m *Repo) UpdateFoundEmbedding(ctx context.Context, id uint64, embedding string) error {
	if m.UpdateFoundEmbeddingFn != nil {
		return m.UpdateFoundEmbeddingFn(ctx, id, embedding)
	}
	return nil
}

func (m *Repo) GetRef(ctx context.Context, kind domain.Kind, id uint64) (*domain.Ref, error) {
	if m.GetRefFn != nil {
		return m.GetRefFn(ctx, kind, id)
	}
	return nil, context.Canceled
}
