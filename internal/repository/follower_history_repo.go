package repository

import (
	"context"
	"time"

	"github.com/hectoorperezz/goviral-backend/internal/model"
	"gorm.io/gorm"
)

type FollowerHistoryRepo interface {
	Create(ctx context.Context, snapshot *model.FollowerHistory) error
	ListSince(ctx context.Context, trackedUserID uint64, since time.Time) ([]*model.FollowerHistory, error)
}

type FollowerHistoryRepoImpl struct {
	db *gorm.DB
}

func NewFollowerHistoryRepository(db *gorm.DB) FollowerHistoryRepo {
	return &FollowerHistoryRepoImpl{
		db: db,
	}
}

func (s FollowerHistoryRepoImpl) Create(ctx context.Context, snapshot *model.FollowerHistory) error {
	return s.db.WithContext(ctx).Create(snapshot).Error
}

// ListSince returns snapshots ordered oldest first.
func (s FollowerHistoryRepoImpl) ListSince(ctx context.Context, trackedUserID uint64, since time.Time) ([]*model.FollowerHistory, error) {
	var history []*model.FollowerHistory
	err := s.db.WithContext(ctx).
		Where("tracked_user_id = ? AND recorded_at >= ?", trackedUserID, since).
		Order("recorded_at ASC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
