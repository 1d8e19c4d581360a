package embedding

import (
	"context"
	"errors"
	"testing"
)

type mapStore struct {
	m       map[string][]float32
	readErr error
}

func (s *mapStore) Get(_ context.Context, text string) ([]float32, bool, error) {
	if s.readErr != nil {
		return nil, false, s.readErr
	}
	v, ok := s.m[text]
	return v, ok, nil
}

func (s *mapStore) Set(_ context.Context, text string, vec []float32) error {
	s.m[text] = vec
	return nil
}

type countingBackend struct{ calls int }

func (c *countingBackend) Embed(context.Context, string) ([]float32, error) {
	c.calls++
	return []float32{1, 2}, nil
}

func TestWithCache_ServesRepeats(t *testing.T) {
	inner := &countingBackend{}
	store := &mapStore{m: map[string][]float32{}}
	load := WithCache(func(context.Context) (Backend, error) { return inner, nil }, store, nil)

	b, err := load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := b.Embed(context.Background(), "Name: wallet"); err != nil {
			t.Fatalf("Embed: %v", err)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.calls)
	}
}

func TestWithCache_StoreErrorFallsThrough(t *testing.T) {
	inner := &countingBackend{}
	store := &mapStore{m: map[string][]float32{}, readErr: errors.New("redis down")}
	b, _ := WithCache(func(context.Context) (Backend, error) { return inner, nil }, store, nil)(context.Background())

	vec, err := b.Embed(context.Background(), "x")
	if err != nil || len(vec) != 2 {
		t.Fatalf("Embed = %v, %v", vec, err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.calls)
	}
}

func TestWithCache_LoadErrorPropagates(t *testing.T) {
	want := errors.New("no model")
	_, err := WithCache(func(context.Context) (Backend, error) { return nil, want }, &mapStore{}, nil)(context.Background())
	if !errors.Is(err, want) {
		t.Fatalf("want %v, got %v", want, err)
	}
}
