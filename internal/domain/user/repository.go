package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*User, error)
	// ids of active users holding role
	ListIDsByRole(ctx context.Context, role Role) ([]uint64, error)
}
