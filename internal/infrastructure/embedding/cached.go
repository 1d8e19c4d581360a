package embedding

import (
	"context"

	"go.uber.org/zap"
)

// VectorStore is a lookaside cache for computed vectors.
type VectorStore interface {
	Get(ctx context.Context, text string) ([]float32, bool, error)
	Set(ctx context.Context, text string, vec []float32) error
}

// CachedBackend serves repeated texts from the store. Store errors fall
// through to the wrapped backend.
type CachedBackend struct {
	next   Backend
	store  VectorStore
	logger *zap.Logger
}

func (c *CachedBackend) Embed(ctx context.Context, text string) ([]float32, error) {
	if vec, ok, err := c.store.Get(ctx, text); err != nil {
		c.logger.Warn("embedding cache read failed", zap.Error(err))
	} else if ok {
		return vec, nil
	}

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := c.store.Set(ctx, text, vec); err != nil {
		c.logger.Warn("embedding cache write failed", zap.Error(err))
	}
	return vec, nil
}

// WithCache wraps whatever load returns in a CachedBackend.
func WithCache(load Loader, store VectorStore, logger *zap.Logger) Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context) (Backend, error) {
		b, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return &CachedBackend{next: b, store: store, logger: logger.Named("embedding.cache")}, nil
	}
}
