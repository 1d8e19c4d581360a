package mysql

import (
	"context"
	"errors"
	"testing"

	claimDomain "lostfound-backend/internal/domain/claim"
	userDomain "lostfound-backend/internal/domain/user"

	"gorm.io/gorm"
)

func TestClaimRepository_FindPending(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewClaimRepository(db)

	u := seedUser(t, db, "mira", userDomain.RoleUser, true)
	owner := seedUser(t, db, "nina", userDomain.RoleUser, true)
	lost := seedLost(t, db, owner.ID, "Card", nil)
	found := seedFound(t, db, owner.ID, "Card", nil)
	m := seedMatch(t, db, lost.ID, found.ID, 88)

	byMatch := seedClaim(t, db, &claimDomain.Claim{MatchID: u64(m.ID), LostItemID: u64(lost.ID), FoundItemID: u64(found.ID), UserID: u.ID})
	lostOnly := seedClaim(t, db, &claimDomain.Claim{LostItemID: u64(lost.ID), UserID: u.ID})
	seedClaim(t, db, &claimDomain.Claim{FoundItemID: u64(found.ID), UserID: u.ID, Status: claimDomain.StatusRejected})

	got, err := repo.FindPendingByMatch(ctx, m.ID, u.ID)
	if err != nil || got.ID != byMatch.ID {
		t.Fatalf("FindPendingByMatch = %+v, %v", got, err)
	}
	if _, err := repo.FindPendingByMatch(ctx, m.ID, owner.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("other user: want ErrRecordNotFound, got %v", err)
	}

	tests := []struct {
		name   string
		lost   *uint64
		found  *uint64
		wantID uint64
	}{
		{"both sides", u64(lost.ID), u64(found.ID), byMatch.ID},
		{"lost side only", u64(lost.ID), nil, lostOnly.ID},
		{"rejected is ignored", nil, u64(found.ID), 0},
		{"no sides", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindPendingByItems(ctx, u.ID, tt.lost, tt.found)
			if tt.wantID == 0 {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					t.Fatalf("want ErrRecordNotFound, got %+v, %v", got, err)
				}
				return
			}
			if err != nil || got.ID != tt.wantID {
				t.Fatalf("got %+v, %v; want id %d", got, err, tt.wantID)
			}
		})
	}
}

func TestClaimRepository_ListPendingByMatch(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewClaimRepository(db)

	a := seedUser(t, db, "oki", userDomain.RoleUser, true)
	b := seedUser(t, db, "pia", userDomain.RoleUser, true)
	c := seedUser(t, db, "qori", userDomain.RoleUser, true)
	lost := seedLost(t, db, a.ID, "Ring", nil)
	found := seedFound(t, db, b.ID, "Ring", nil)
	m := seedMatch(t, db, lost.ID, found.ID, 90)

	target := seedClaim(t, db, &claimDomain.Claim{MatchID: u64(m.ID), UserID: a.ID})
	rival := seedClaim(t, db, &claimDomain.Claim{MatchID: u64(m.ID), UserID: c.ID})
	seedClaim(t, db, &claimDomain.Claim{MatchID: u64(m.ID), UserID: b.ID, Status: claimDomain.StatusRejected})

	got, err := repo.ListPendingByMatch(ctx, m.ID, target.ID)
	if err != nil {
		t.Fatalf("ListPendingByMatch: %v", err)
	}
	if len(got) != 1 || got[0].ID != rival.ID {
		t.Fatalf("want only rival, got %+v", got)
	}
}

func TestClaimRepository_StatusAndLinking(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewClaimRepository(db)

	u := seedUser(t, db, "rudi", userDomain.RoleUser, true)
	lost := seedLost(t, db, u.ID, "Bag", nil)
	found := seedFound(t, db, u.ID, "Bag", nil)
	c := seedClaim(t, db, &claimDomain.Claim{LostItemID: u64(lost.ID), UserID: u.ID})

	if err := repo.UpdateStatus(ctx, c.ID, claimDomain.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := repo.SetFoundItem(ctx, c.ID, found.ID); err != nil {
		t.Fatalf("SetFoundItem: %v", err)
	}
	if err := repo.SetFoundItem(ctx, c.ID, found.ID); !errors.Is(err, claimDomain.ErrSideLinked) {
		t.Fatalf("second link: want ErrSideLinked, got %v", err)
	}
	if err := repo.SetLostItem(ctx, c.ID, lost.ID); !errors.Is(err, claimDomain.ErrSideLinked) {
		t.Fatalf("lost already set: want ErrSideLinked, got %v", err)
	}

	got, err := repo.GetByIDForUpdate(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if got.Status != claimDomain.StatusApproved || got.FoundItemID == nil || *got.FoundItemID != found.ID {
		t.Fatalf("unexpected claim: %+v", got)
	}
}

func TestClaimRepository_ListAndCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewClaimRepository(db)

	u := seedUser(t, db, "sari", userDomain.RoleUser, true)
	lost := seedLost(t, db, u.ID, "Pen", nil)
	p1 := seedClaim(t, db, &claimDomain.Claim{LostItemID: u64(lost.ID), UserID: u.ID})
	seedClaim(t, db, &claimDomain.Claim{LostItemID: u64(lost.ID), UserID: u.ID, Status: claimDomain.StatusRejected})
	p2 := seedClaim(t, db, &claimDomain.Claim{LostItemID: u64(lost.ID), UserID: u.ID})

	all, err := repo.List(ctx, claimDomain.Filter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("List all = %d, %v", len(all), err)
	}
	pending, err := repo.List(ctx, claimDomain.Filter{Status: claimDomain.StatusPending})
	if err != nil {
		t.Fatalf("List pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != p2.ID || pending[1].ID != p1.ID {
		t.Fatalf("want newest pending first, got %+v", pending)
	}

	n, err := repo.CountByStatus(ctx, claimDomain.StatusPending)
	if err != nil || n != 2 {
		t.Fatalf("CountByStatus = %d, %v", n, err)
	}
}
