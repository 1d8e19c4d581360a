package mysql

import (
	"context"

	userDomain "lostfound-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepository) ListIDsByRole(ctx context.Context, role userDomain.Role) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("role = ? AND active = ?", role, true).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}
