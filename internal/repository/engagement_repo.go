package repository

import (
	"context"
	"errors"

	"github.com/hectoorperezz/goviral-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepo interface {
	GetProfileByUsername(ctx context.Context, username string) (*model.EngagementProfile, error)
	GetPosts(ctx context.Context, profileID uint64) ([]*model.IndividualPost, error)
	ListMonthly(ctx context.Context, profileID uint64, limit int) ([]*model.MonthlyEngagementHistory, error)
	SaveAnalysis(ctx context.Context, profile *model.EngagementProfile, posts []*model.IndividualPost, monthly *model.MonthlyEngagementHistory) error
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{
		db: db,
	}
}

func (s EngagementRepoImpl) GetProfileByUsername(ctx context.Context, username string) (*model.EngagementProfile, error) {
	var profile model.EngagementProfile
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s EngagementRepoImpl) GetPosts(ctx context.Context, profileID uint64) ([]*model.IndividualPost, error) {
	var posts []*model.IndividualPost
	err := s.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("posted_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s EngagementRepoImpl) ListMonthly(ctx context.Context, profileID uint64, limit int) ([]*model.MonthlyEngagementHistory, error) {
	var history []*model.MonthlyEngagementHistory
	err := s.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("year DESC, month DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// SaveAnalysis persists a full analysis atomically: profile upsert,
// wholesale replacement of the post rows, monthly snapshot upsert.
func (s EngagementRepoImpl) SaveAnalysis(ctx context.Context, profile *model.EngagementProfile, posts []*model.IndividualPost, monthly *model.MonthlyEngagementHistory) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"follower_count", "avg_likes", "avg_comments", "engagement_rate",
				"last_analyzed_at", "cache_expires_at", "updated_at",
			}),
		}).Create(profile).Error; err != nil {
			return err
		}

		if err := tx.Where("profile_id = ?", profile.ID).Delete(&model.IndividualPost{}).Error; err != nil {
			return err
		}
		for i := range posts {
			posts[i].ProfileID = profile.ID
		}
		if len(posts) > 0 {
			if err := tx.Create(posts).Error; err != nil {
				return err
			}
		}

		monthly.ProfileID = profile.ID
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "profile_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"follower_count", "avg_likes", "avg_comments", "engagement_rate", "recorded_at",
			}),
		}).Create(monthly).Error
	})
}
