package mysql

import (
	"context"

	claimDomain "lostfound-backend/internal/domain/claim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ClaimRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ClaimRepository) FindPendingByMatch(ctx context.Context, matchID, userID uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("match_id = ? AND user_id = ? AND status = ?", matchID, userID, claimDomain.StatusPending).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ClaimRepository) FindPendingByItems(ctx context.Context, userID uint64, lostItemID, foundItemID *uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, claimDomain.StatusPending).
		// a missing side only equals another missing side
		Where("COALESCE(lost_item_id, 0) = ? AND COALESCE(found_item_id, 0) = ?", orZero(lostItemID), orZero(foundItemID)).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ClaimRepository) ListPendingByMatch(ctx context.Context, matchID, exceptID uint64) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("match_id = ? AND id <> ? AND status = ?", matchID, exceptID, claimDomain.StatusPending).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *ClaimRepository) UpdateStatus(ctx context.Context, id uint64, s claimDomain.Status) error {
	return r.db.WithContext(ctx).Model(&claimDomain.Claim{}).
		Where("id = ?", id).
		Update("status", s).Error
}

func (r *ClaimRepository) SetLostItem(ctx context.Context, id, lostItemID uint64) error {
	return r.setSide(ctx, id, "lost_item_id", lostItemID)
}

func (r *ClaimRepository) SetFoundItem(ctx context.Context, id, foundItemID uint64) error {
	return r.setSide(ctx, id, "found_item_id", foundItemID)
}

// setSide only fills an empty side.
func (r *ClaimRepository) setSide(ctx context.Context, id uint64, column string, itemID uint64) error {
	res := r.db.WithContext(ctx).Model(&claimDomain.Claim{}).
		Where("id = ? AND "+column+" IS NULL", id).
		Update(column, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return claimDomain.ErrSideLinked
	}
	return nil
}

func (r *ClaimRepository) List(ctx context.Context, f claimDomain.Filter) ([]claimDomain.Claim, error) {
	q := r.db.WithContext(ctx).Model(&claimDomain.Claim{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []claimDomain.Claim
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ClaimRepository) CountByStatus(ctx context.Context, s claimDomain.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&claimDomain.Claim{}).
		Where("status = ?", s).
		Count(&n).Error
	return n, err
}

func orZero(p *uint64) uint64 {
	if p == nil {
		return 0
	}
	return *p
}
