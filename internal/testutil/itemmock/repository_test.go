package itemmock

import (
	"context"
	"errors"
	"testing"

	domain "lostfound-backend/internal/domain/item"
)

func TestRepo_CreateLost(t *testing.T) {
	ctx := context.Background()
	it := &domain.LostItem{Name: "Wallet"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateLostFn: func(gotCtx context.Context, got *domain.LostItem) error {
			called = true
			if gotCtx != ctx || got != it {
				t.Fatalf("CreateLost args not forwarded")
			}
			return wantErr
		},
	}
	if err := m.CreateLost(ctx, it); !errors.Is(err, wantErr) {
		t.Fatalf("CreateLost: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateLostFn not called")
	}

	// Default (nil func) → no-op
	m = &Repo{}
	if err := m.CreateLost(ctx, it); err != nil {
		t.Fatalf("CreateLost default: want nil, got %v", err)
	}
}

func TestRepo_GetRef(t *testing.T) {
	ctx := context.Background()
	want := &domain.Ref{Kind: domain.KindFound, ID: 3, OwnerID: 9, Name: "Umbrella"}
	m := &Repo{
		GetRefFn: func(_ context.Context, kind domain.Kind, id uint64) (*domain.Ref, error) {
			if kind != domain.KindFound || id != 3 {
				t.Fatalf("GetRef args mismatch: %s %d", kind, id)
			}
			return want, nil
		},
	}
	got, err := m.GetRef(ctx, domain.KindFound, 3)
	if err != nil || got != want {
		t.Fatalf("GetRef = %+v, %v", got, err)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if got, err := m.GetRef(ctx, domain.KindFound, 3); err != context.Canceled || got != nil {
		t.Fatalf("GetRef default = %+v, %v", got, err)
	}
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if _, err := m.GetLost(ctx, 1); err != context.Canceled {
		t.Fatalf("GetLost default: %v", err)
	}
	if _, err := m.ListFoundByOwner(ctx, 1); err != context.Canceled {
		t.Fatalf("ListFoundByOwner default: %v", err)
	}
	if err := m.UpdateLostStatus(ctx, 1, domain.LostClaimed); err != nil {
		t.Fatalf("UpdateLostStatus default: %v", err)
	}
	if err := m.UpdateFoundEmbedding(ctx, 1, "[1]"); err != nil {
		t.Fatalf("UpdateFoundEmbedding default: %v", err)
	}
}
