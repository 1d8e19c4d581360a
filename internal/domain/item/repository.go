package item

import "context"

type Repository interface {
	CreateLost(ctx context.Context, it *LostItem) error
	CreateFound(ctx context.Context, it *FoundItem) error

	GetLost(ctx context.Context, id uint64) (*LostItem, error)
	GetFound(ctx context.Context, id uint64) (*FoundItem, error)

	// Owner scoped reads; a foreign item looks like a missing one
	GetLostByOwner(ctx context.Context, id, ownerID uint64) (*LostItem, error)
	GetFoundByOwner(ctx context.Context, id, ownerID uint64) (*FoundItem, error)
	ListLostByOwner(ctx context.Context, ownerID uint64) ([]LostItem, error)
	ListFoundByOwner(ctx context.Context, ownerID uint64) ([]FoundItem, error)

	SaveLost(ctx context.Context, it *LostItem) error
	SaveFound(ctx context.Context, it *FoundItem) error

	UpdateLostStatus(ctx context.Context, id uint64, s LostStatus) error
	UpdateFoundStatus(ctx context.Context, id uint64, s FoundStatus) error

	// embedding is the serialized vector text
	UpdateLostEmbedding(ctx context.Context, id uint64, embedding string) error
	UpdateFoundEmbedding(ctx context.Context, id uint64, embedding string) error

	GetRef(ctx context.Context, kind Kind, id uint64) (*Ref, error)
}
