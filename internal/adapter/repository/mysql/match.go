package mysql

import (
	"context"
	"time"

	claimDomain "lostfound-backend/internal/domain/claim"
	itemDomain "lostfound-backend/internal/domain/item"
	matchDomain "lostfound-backend/internal/domain/match"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchRepository struct{ db *gorm.DB }

func NewMatchRepository(db *gorm.DB) *MatchRepository { return &MatchRepository{db: db} }

func (r *MatchRepository) Exists(ctx context.Context, lostItemID, foundItemID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&matchDomain.Match{}).
		Where("lost_item_id = ? AND found_item_id = ?", lostItemID, foundItemID).
		Count(&n).Error
	return n > 0, err
}

// Create relies on ux_matches_pair; a duplicate pair inserts nothing.
func (r *MatchRepository) Create(ctx context.Context, m *matchDomain.Match) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)
	return res.RowsAffected > 0, res.Error
}

func (r *MatchRepository) GetByID(ctx context.Context, id uint64) (*matchDomain.Match, error) {
	var out matchDomain.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MatchRepository) ListUnmatchedLost(ctx context.Context) ([]matchDomain.EmbeddedItem, error) {
	matched := r.db.Session(&gorm.Session{NewDB: true}).
		Model(&matchDomain.Match{}).
		Select("DISTINCT lost_item_id")

	var out []matchDomain.EmbeddedItem
	err := r.db.WithContext(ctx).Model(&itemDomain.LostItem{}).
		Select("id, embedding").
		Where("embedding IS NOT NULL AND embedding <> ''").
		Where("id NOT IN (?)", matched).
		Order("id").
		Scan(&out).Error
	return out, err
}

func (r *MatchRepository) ListFoundWithEmbedding(ctx context.Context) ([]matchDomain.EmbeddedItem, error) {
	var out []matchDomain.EmbeddedItem
	err := r.db.WithContext(ctx).Model(&itemDomain.FoundItem{}).
		Select("id, embedding").
		Where("embedding IS NOT NULL AND embedding <> ''").
		Order("id").
		Scan(&out).Error
	return out, err
}

type matchViewRow struct {
	ID               uint64
	LostItemID       uint64
	FoundItemID      uint64
	Score            float64
	CreatedAt        time.Time
	LostOwnerID      uint64
	LostName         string
	LostDescription  string
	LostStatus       string
	FoundOwnerID     uint64
	FoundName        string
	FoundDescription string
	FoundStatus      string
}

func (r *MatchRepository) ListForOwner(ctx context.Context, userID uint64) ([]matchDomain.View, error) {
	var rows []matchViewRow
	err := r.db.WithContext(ctx).Table("matches AS m").
		Select(`m.id, m.lost_item_id, m.found_item_id, m.score, m.created_at,
			l.user_id AS lost_owner_id, l.name AS lost_name,
			COALESCE(l.description, '') AS lost_description, l.status AS lost_status,
			f.user_id AS found_owner_id, f.name AS found_name,
			COALESCE(f.description, '') AS found_description, f.status AS found_status`).
		Joins("JOIN lost_items l ON l.id = m.lost_item_id").
		Joins("JOIN found_items f ON f.id = m.found_item_id").
		Where("l.user_id = ? OR f.user_id = ?", userID, userID).
		Order("m.score DESC, m.created_at DESC, m.id DESC").
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	var claims []claimDomain.Claim
	err = r.db.WithContext(ctx).
		Where("match_id IN ?", ids).
		Order("created_at DESC, id DESC").
		Find(&claims).Error
	if err != nil {
		return nil, err
	}
	// first seen per match is the latest
	latest := make(map[uint64]*matchDomain.ClaimSummary, len(claims))
	for _, c := range claims {
		if _, ok := latest[*c.MatchID]; ok {
			continue
		}
		latest[*c.MatchID] = &matchDomain.ClaimSummary{
			ID: c.ID, UserID: c.UserID, Status: string(c.Status), CreatedAt: c.CreatedAt,
		}
	}

	out := make([]matchDomain.View, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchDomain.View{
			Match: matchDomain.Match{
				ID: row.ID, LostItemID: row.LostItemID, FoundItemID: row.FoundItemID,
				Score: row.Score, CreatedAt: row.CreatedAt,
			},
			Lost: matchDomain.ItemSummary{
				ID: row.LostItemID, OwnerID: row.LostOwnerID, Name: row.LostName,
				Description: row.LostDescription, Status: row.LostStatus,
			},
			Found: matchDomain.ItemSummary{
				ID: row.FoundItemID, OwnerID: row.FoundOwnerID, Name: row.FoundName,
				Description: row.FoundDescription, Status: row.FoundStatus,
			},
			LatestClaim: latest[row.ID],
		})
	}
	return out, nil
}
