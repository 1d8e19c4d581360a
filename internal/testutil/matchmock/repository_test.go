package matchmock

import (
	"context"
	"testing"

	domain "lostfound-backend/internal/domain/match"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	mt := &domain.Match{LostItemID: 1, FoundItemID: 2}

	m := &Repo{}
	inserted, err := m.Create(ctx, mt)
	if err != nil || !inserted {
		t.Fatalf("Create default = %v, %v; want inserted", inserted, err)
	}

	m.CreateFn = func(_ context.Context, got *domain.Match) (bool, error) {
		if got != mt {
			t.Fatalf("Create arg mismatch")
		}
		return false, nil
	}
	if inserted, _ := m.Create(ctx, mt); inserted {
		t.Fatalf("CreateFn result not forwarded")
	}
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if _, err := m.ListUnmatchedLost(ctx); err != context.Canceled {
		t.Fatalf("ListUnmatchedLost default: %v", err)
	}
	if _, err := m.ListForOwner(ctx, 1); err != context.Canceled {
		t.Fatalf("ListForOwner default: %v", err)
	}
	if ok, err := m.Exists(ctx, 1, 2); ok || err != context.Canceled {
		t.Fatalf("Exists default: %v, %v", ok, err)
	}
}
