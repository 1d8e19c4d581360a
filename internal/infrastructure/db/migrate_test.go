package db

import (
	"io"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func TestMigrations_Sequence(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("iofs.New: %v", err)
	}
	defer src.Close()

	first, err := src.First()
	if err != nil || first != 1 {
		t.Fatalf("First = %d, %v; want 1", first, err)
	}
	next, err := src.Next(first)
	if err != nil || next != 2 {
		t.Fatalf("Next(1) = %d, %v; want 2", next, err)
	}

	for _, v := range []uint{1, 2} {
		up, _, err := src.ReadUp(v)
		if err != nil {
			t.Fatalf("ReadUp(%d): %v", v, err)
		}
		_ = up.Close()
		down, _, err := src.ReadDown(v)
		if err != nil {
			t.Fatalf("ReadDown(%d): %v", v, err)
		}
		_ = down.Close()
	}
}

func TestMigrations_UniquenessBackstops(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("iofs.New: %v", err)
	}
	defer src.Close()

	read := func(v uint) string {
		r, _, err := src.ReadUp(v)
		if err != nil {
			t.Fatalf("ReadUp(%d): %v", v, err)
		}
		defer r.Close()
		b, _ := io.ReadAll(r)
		return string(b)
	}

	if s := read(1); !strings.Contains(s, "UNIQUE KEY ux_matches_pair (lost_item_id, found_item_id)") {
		t.Fatalf("matches pair uniqueness missing")
	}
	s := read(2)
	for _, want := range []string{"ux_claims_pending_match", "ux_claims_pending_items", "pending_flag"} {
		if !strings.Contains(s, want) {
			t.Fatalf("migration 2 missing %q", want)
		}
	}
}
