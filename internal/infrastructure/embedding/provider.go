package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"lostfound-backend/internal/domain/apperr"
	"lostfound-backend/internal/infrastructure/metrics"
)

// Provider owns the process-wide model. The backend is loaded on first use
// (or Warmup) and reused afterwards; a failed load is retried on the next call.
type Provider struct {
	name    string
	load    Loader
	logger  *zap.Logger
	metrics metrics.Recorder

	mu      sync.Mutex
	backend Backend
	dim     int
}

func NewProvider(name string, load Loader, logger *zap.Logger, rec metrics.Recorder) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Provider{name: name, load: load, logger: logger.Named("embedding"), metrics: rec}
}

// Warmup loads the backend now instead of on the first Embed.
func (p *Provider) Warmup(ctx context.Context) error {
	_, err := p.model(ctx)
	return err
}

// Embed returns nil, nil for blank text.
func (p *Provider) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	b, err := p.model(ctx)
	if err != nil {
		p.metrics.EmbeddingFailed(p.name)
		return nil, err
	}

	vec, err := b.Embed(ctx, text)
	if err == nil && len(vec) == 0 {
		err = errEmptyVector
	}
	if err == nil {
		err = p.checkDim(len(vec))
	}
	if err != nil {
		p.metrics.EmbeddingFailed(p.name)
		return nil, apperr.Embedding("computing embedding", err)
	}
	p.metrics.EmbeddingGenerated(p.name)
	return vec, nil
}

func (p *Provider) model(ctx context.Context) (Backend, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.backend != nil {
		return p.backend, nil
	}
	if p.load == nil {
		return nil, apperr.Embedding("loading embedding model", errors.New("no loader configured"))
	}
	b, err := p.load(ctx)
	if err != nil {
		p.logger.Warn("embedding model load failed", zap.String("backend", p.name), zap.Error(err))
		return nil, apperr.Embedding("loading embedding model", err)
	}
	p.backend = b
	p.logger.Info("embedding model loaded", zap.String("backend", p.name))
	return b, nil
}

// checkDim pins the vector length to the first one produced.
func (p *Provider) checkDim(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dim == 0 {
		p.dim = n
		return nil
	}
	if n != p.dim {
		return fmt.Errorf("vector length %d, model produces %d", n, p.dim)
	}
	return nil
}
