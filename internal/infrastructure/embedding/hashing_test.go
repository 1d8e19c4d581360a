package embedding

import (
	"context"
	"testing"

	"lostfound-backend/pkg/similarity"
)

func TestHashingBackend_Deterministic(t *testing.T) {
	h := HashingBackend{Dim: 64}
	a, err := h.Embed(context.Background(), "Name: Black wallet. Location: cafeteria")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	b, _ := h.Embed(context.Background(), "Name: Black wallet. Location: cafeteria")
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d", i)
		}
	}
	if got := similarity.Cosine(a, b); got < 0.999999 {
		t.Fatalf("self similarity = %v", got)
	}
}

func TestHashingBackend_SimilarTextScoresHigher(t *testing.T) {
	h := HashingBackend{}
	ctx := context.Background()
	lost, _ := h.Embed(ctx, "Name: Black leather wallet. Description: brown stitching, student card inside. Location: cafeteria")
	found, _ := h.Embed(ctx, "Name: Black leather wallet. Description: student card inside. Location: cafeteria table")
	other, _ := h.Embed(ctx, "Name: Red umbrella. Description: folding. Location: gym")

	near := similarity.Cosine(lost, found)
	far := similarity.Cosine(lost, other)
	if near <= far {
		t.Fatalf("want related items closer: near=%v far=%v", near, far)
	}
	if near < 0.5 {
		t.Fatalf("related items should be strongly similar, got %v", near)
	}
}

func TestHashingBackend_OnlyStopwords(t *testing.T) {
	vec, err := HashingBackend{Dim: 8}.Embed(context.Background(), "Name: the")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	for _, v := range vec {
		if v != 0 {
			t.Fatalf("want zero vector, got %v", vec)
		}
	}
}
