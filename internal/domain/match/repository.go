package match

import "context"

type Repository interface {
	Exists(ctx context.Context, lostItemID, foundItemID uint64) (bool, error)

	// Create inserts m; inserted is false when the pair already existed.
	Create(ctx context.Context, m *Match) (inserted bool, err error)

	GetByID(ctx context.Context, id uint64) (*Match, error)

	// Lost items with an embedding that are not the lost side of any match
	ListUnmatchedLost(ctx context.Context) ([]EmbeddedItem, error)
	ListFoundWithEmbedding(ctx context.Context) ([]EmbeddedItem, error)

	// Matches where userID owns either side, best score first
	ListForOwner(ctx context.Context, userID uint64) ([]View, error)
}
