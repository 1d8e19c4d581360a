package mysql

import (
	"context"
	"errors"
	"testing"

	claimDomain "lostfound-backend/internal/domain/claim"
	matchDomain "lostfound-backend/internal/domain/match"
	userDomain "lostfound-backend/internal/domain/user"

	"gorm.io/gorm"
)

func TestMatchRepository_CreateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewMatchRepository(db)

	u := seedUser(t, db, "hana", userDomain.RoleUser, true)
	lost := seedLost(t, db, u.ID, "Wallet", nil)
	found := seedFound(t, db, u.ID, "Wallet", nil)

	inserted, err := repo.Create(ctx, &matchDomain.Match{LostItemID: lost.ID, FoundItemID: found.ID, Score: 91.5})
	if err != nil || !inserted {
		t.Fatalf("first Create: inserted=%v err=%v", inserted, err)
	}
	inserted, err = repo.Create(ctx, &matchDomain.Match{LostItemID: lost.ID, FoundItemID: found.ID, Score: 80})
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if inserted {
		t.Fatalf("duplicate pair must not insert")
	}

	var n int64
	db.Model(&matchDomain.Match{}).Count(&n)
	if n != 1 {
		t.Fatalf("want 1 row, got %d", n)
	}
	ok, err := repo.Exists(ctx, lost.ID, found.ID)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	ok, _ = repo.Exists(ctx, found.ID+10, lost.ID)
	if ok {
		t.Fatalf("unexpected pair exists")
	}
}

func TestMatchRepository_ListUnmatchedLost(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewMatchRepository(db)

	u := seedUser(t, db, "intan", userDomain.RoleUser, true)
	fresh := seedLost(t, db, u.ID, "Headphones", strPtr("[1,0]"))
	matched := seedLost(t, db, u.ID, "Notebook", strPtr("[0,1]"))
	seedLost(t, db, u.ID, "No vector", nil)
	seedLost(t, db, u.ID, "Blank vector", strPtr(""))
	found := seedFound(t, db, u.ID, "Notebook", strPtr("[0,1]"))
	seedFound(t, db, u.ID, "Pending", nil)
	seedMatch(t, db, matched.ID, found.ID, 99)

	lost, err := repo.ListUnmatchedLost(ctx)
	if err != nil {
		t.Fatalf("ListUnmatchedLost: %v", err)
	}
	if len(lost) != 1 || lost[0].ID != fresh.ID || lost[0].Embedding != "[1,0]" {
		t.Fatalf("unexpected lost set: %+v", lost)
	}

	founds, err := repo.ListFoundWithEmbedding(ctx)
	if err != nil {
		t.Fatalf("ListFoundWithEmbedding: %v", err)
	}
	if len(founds) != 1 || founds[0].ID != found.ID {
		t.Fatalf("unexpected found set: %+v", founds)
	}
}

func TestMatchRepository_GetByID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewMatchRepository(db)

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestMatchRepository_ListForOwner(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewMatchRepository(db)

	loser := seedUser(t, db, "joko", userDomain.RoleUser, true)
	finder := seedUser(t, db, "kiki", userDomain.RoleUser, true)
	stranger := seedUser(t, db, "lala", userDomain.RoleUser, true)

	lostA := seedLost(t, db, loser.ID, "Watch", nil)
	lostB := seedLost(t, db, loser.ID, "Scarf", nil)
	found := seedFound(t, db, finder.ID, "Watch", nil)

	low := seedMatch(t, db, lostB.ID, found.ID, 76.1)
	high := seedMatch(t, db, lostA.ID, found.ID, 93.4)

	seedClaim(t, db, &claimDomain.Claim{MatchID: u64(high.ID), LostItemID: u64(lostA.ID), FoundItemID: u64(found.ID), UserID: loser.ID, Status: claimDomain.StatusRejected})
	latest := seedClaim(t, db, &claimDomain.Claim{MatchID: u64(high.ID), LostItemID: u64(lostA.ID), FoundItemID: u64(found.ID), UserID: loser.ID})

	views, err := repo.ListForOwner(ctx, loser.ID)
	if err != nil {
		t.Fatalf("ListForOwner: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("want 2 views, got %d", len(views))
	}
	if views[0].ID != high.ID || views[1].ID != low.ID {
		t.Fatalf("want best score first, got %d,%d", views[0].ID, views[1].ID)
	}
	v := views[0]
	if v.Lost.OwnerID != loser.ID || v.Found.OwnerID != finder.ID || v.Found.Name != "Watch" {
		t.Fatalf("unexpected sides: %+v", v)
	}
	if v.Lost.Description != "Watch desc" || v.Lost.Status != "pending" {
		t.Fatalf("unexpected lost summary: %+v", v.Lost)
	}
	if v.LatestClaim == nil || v.LatestClaim.ID != latest.ID || v.LatestClaim.Status != string(claimDomain.StatusPending) {
		t.Fatalf("latest claim = %+v", v.LatestClaim)
	}
	if views[1].LatestClaim != nil {
		t.Fatalf("unclaimed match must have no claim")
	}

	// the finder sees the same matches from the other side
	views, _ = repo.ListForOwner(ctx, finder.ID)
	if len(views) != 2 {
		t.Fatalf("finder: want 2 views, got %d", len(views))
	}
	views, err = repo.ListForOwner(ctx, stranger.ID)
	if err != nil || len(views) != 0 {
		t.Fatalf("stranger: %v, %v", views, err)
	}
}
