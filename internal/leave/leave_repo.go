package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	FindApprovedOverlapping(ctx context.Context, from, to time.Time) ([]Leave, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindApprovedOverlapping returns approved leaves whose date range overlaps
// [from, to] inclusive. The creation order keeps downstream folding stable
// when several leaves touch the same employee and day.
func (r *repository) FindApprovedOverlapping(ctx context.Context, from, to time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", StatusApproved).
		Where("start_date <= ?", to).
		Where("end_date >= ?", from).
		Order("created_at, id").
		Find(&leaves).Error
	return leaves, err
}
