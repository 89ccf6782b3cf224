package repository

import (
	"context"
	"errors"

	"github.com/hectoorperezz/goviral-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrackedUserRepo interface {
	GetByUsername(ctx context.Context, username string) (*model.TrackedUser, error)
	Upsert(ctx context.Context, user *model.TrackedUser) error
	ListActive(ctx context.Context) ([]*model.TrackedUser, error)
	Deactivate(ctx context.Context, username string) error
}

type TrackedUserRepoImpl struct {
	db *gorm.DB
}

func NewTrackedUserRepository(db *gorm.DB) TrackedUserRepo {
	return &TrackedUserRepoImpl{
		db: db,
	}
}

func (s TrackedUserRepoImpl) GetByUsername(ctx context.Context, username string) (*model.TrackedUser, error) {
	var user model.TrackedUser
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s TrackedUserRepoImpl) Upsert(ctx context.Context, user *model.TrackedUser) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"instagram_id", "full_name", "profile_pic_url", "is_verified", "is_private",
			"biography", "follower_count", "following_count", "media_count",
			"is_active", "last_updated",
		}),
	}).Create(user).Error
}

func (s TrackedUserRepoImpl) ListActive(ctx context.Context) ([]*model.TrackedUser, error) {
	var users []*model.TrackedUser
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("username").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s TrackedUserRepoImpl) Deactivate(ctx context.Context, username string) error {
	return s.db.WithContext(ctx).Model(&model.TrackedUser{}).
		Where("username = ?", username).
		Update("is_active", false).Error
}
