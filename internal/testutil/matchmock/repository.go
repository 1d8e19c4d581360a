package matchmock

import (
	"context"

	domain "lostfound-backend/internal/domain/match"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	ExistsFn                 func(ctx context.Context, lostItemID, foundItemID uint64) (bool, error)
	CreateFn                 func(ctx context.Context, m *domain.Match) (bool, error)
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Match, error)
	ListUnmatchedLostFn      func(ctx context.Context) ([]domain.EmbeddedItem, error)
	ListFoundWithEmbeddingFn func(ctx context.Context) ([]domain.EmbeddedItem, error)
	ListForOwnerFn           func(ctx context.Context, userID uint64) ([]domain.View, error)
}

func (m *Repo) Exists(ctx context.Context, lostItemID, foundItemID uint64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, lostItemID, foundItemID)
	}
	return false, context.Canceled
}

// Create defaults to "inserted".
func (m *Repo) Create(ctx context.Context, mt *domain.Match) (bool, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mt)
	}
	return true, nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Match, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListUnmatchedLost(ctx context.Context) ([]domain.EmbeddedItem, error) {
	if m.ListUnmatchedLostFn != nil {
		return m.ListUnmatchedLostFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListFoundWithEmbedding(ctx context.Context) ([]domain.EmbeddedItem, error) {
	if m.ListFoundWithEmbeddingFn != nil {
		return m.ListFoundWithEmbeddingFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListForOwner(ctx context.Context, userID uint64) ([]domain.View, error) {
	if m.ListForOwnerFn != nil {
		return m.ListForOwnerFn(ctx, userID)
	}
	return nil, context.Canceled
}
