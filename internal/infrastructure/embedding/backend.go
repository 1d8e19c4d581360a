package embedding

import "context"

// Backend turns text into a fixed-length vector.
type Backend interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Loader builds a ready Backend; it pays the model initialisation cost.
type Loader func(ctx context.Context) (Backend, error)
