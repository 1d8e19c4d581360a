package mysql

import (
	"context"

	itemDomain "lostfound-backend/internal/domain/item"

	"gorm.io/gorm"
)

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

func (r *ItemRepository) CreateLost(ctx context.Context, it *itemDomain.LostItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItemRepository) CreateFound(ctx context.Context, it *itemDomain.FoundItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItemRepository) GetLost(ctx context.Context, id uint64) (*itemDomain.LostItem, error) {
	var out itemDomain.LostItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ItemRepository) GetFound(ctx context.Context, id uint64) (*itemDomain.FoundItem, error) {
	var out itemDomain.FoundItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ItemRepository) GetLostByOwner(ctx context.Context, id, ownerID uint64) (*itemDomain.LostItem, error) {
	var out itemDomain.LostItem
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ItemRepository) GetFoundByOwner(ctx context.Context, id, ownerID uint64) (*itemDomain.FoundItem, error) {
	var out itemDomain.FoundItem
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ItemRepository) ListLostByOwner(ctx context.Context, ownerID uint64) ([]itemDomain.LostItem, error) {
	var out []itemDomain.LostItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("reported_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ItemRepository) ListFoundByOwner(ctx context.Context, ownerID uint64) ([]itemDomain.FoundItem, error) {
	var out []itemDomain.FoundItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("reported_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ItemRepository) SaveLost(ctx context.Context, it *itemDomain.LostItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *ItemRepository) SaveFound(ctx context.Context, it *itemDomain.FoundItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *ItemRepository) UpdateLostStatus(ctx context.Context, id uint64, s itemDomain.LostStatus) error {
	return r.db.WithContext(ctx).Model(&itemDomain.LostItem{}).
		Where("id = ?", id).
		Update("status", s).Error
}

func (r *ItemRepository) UpdateFoundStatus(ctx context.Context, id uint64, s itemDomain.FoundStatus) error {
	return r.db.WithContext(ctx).Model(&itemDomain.FoundItem{}).
		Where("id = ?", id).
		Update("status", s).Error
}

func (r *ItemRepository) UpdateLostEmbedding(ctx context.Context, id uint64, embedding string) error {
	return r.db.WithContext(ctx).Model(&itemDomain.LostItem{}).
		Where("id = ?", id).
		Update("embedding", embedding).Error
}

func (r *ItemRepository) UpdateFoundEmbedding(ctx context.Context, id uint64, embedding string) error {
	return r.db.WithContext(ctx).Model(&itemDomain.FoundItem{}).
		Where("id = ?", id).
		Update("embedding", embedding).Error
}

type refRow struct {
	ID     uint64
	UserID uint64
	Name   string
}

func (r *ItemRepository) GetRef(ctx context.Context, kind itemDomain.Kind, id uint64) (*itemDomain.Ref, error) {
	var model any
	switch kind {
	case itemDomain.KindLost:
		model = &itemDomain.LostItem{}
	case itemDomain.KindFound:
		model = &itemDomain.FoundItem{}
	default:
		return nil, itemDomain.ErrInvalidKind
	}
	var row refRow
	res := r.db.WithContext(ctx).Model(model).
		Select("id, user_id, name").
		Where("id = ?", id).
		Take(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	return &itemDomain.Ref{Kind: kind, ID: row.ID, OwnerID: row.UserID, Name: row.Name}, nil
}
