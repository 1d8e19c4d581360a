package mysql

import (
	"testing"
	"time"

	claimDomain "lostfound-backend/internal/domain/claim"
	itemDomain "lostfound-backend/internal/domain/item"
	matchDomain "lostfound-backend/internal/domain/match"
	notificationDomain "lostfound-backend/internal/domain/notification"
	userDomain "lostfound-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory schema. One connection, or
// every new conn would see an empty database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&userDomain.User{},
		&itemDomain.LostItem{},
		&itemDomain.FoundItem{},
		&matchDomain.Match{},
		&claimDomain.Claim{},
		&notificationDomain.Notification{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role userDomain.Role, active bool) *userDomain.User {
	t.Helper()
	u := &userDomain.User{Name: name, Email: name + "@campus.test", Role: role, Active: active}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedLost(t *testing.T, db *gorm.DB, ownerID uint64, name string, embedding *string) *itemDomain.LostItem {
	t.Helper()
	it := &itemDomain.LostItem{UserID: ownerID, Name: name, Description: name + " desc", Embedding: embedding}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("seed lost: %v", err)
	}
	return it
}

func seedFound(t *testing.T, db *gorm.DB, ownerID uint64, name string, embedding *string) *itemDomain.FoundItem {
	t.Helper()
	it := &itemDomain.FoundItem{UserID: ownerID, Name: name, Description: name + " desc", Embedding: embedding}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("seed found: %v", err)
	}
	return it
}

func seedMatch(t *testing.T, db *gorm.DB, lostID, foundID uint64, score float64) *matchDomain.Match {
	t.Helper()
	m := &matchDomain.Match{LostItemID: lostID, FoundItemID: foundID, Score: score}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed match: %v", err)
	}
	return m
}

func seedClaim(t *testing.T, db *gorm.DB, c *claimDomain.Claim) *claimDomain.Claim {
	t.Helper()
	if c.Status == "" {
		c.Status = claimDomain.StatusPending
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed claim: %v", err)
	}
	return c
}

func strPtr(s string) *string { return &s }

func u64(v uint64) *uint64 { return &v }

func fixedNow() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
