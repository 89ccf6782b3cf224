package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/model"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/instagram"
	"github.com/hectoorperezz/goviral-backend/internal/repository"
	"github.com/jinzhu/copier"
)

const (
	// EngagementCacheTTL is how long a stored analysis stays authoritative.
	EngagementCacheTTL = 30 * 24 * time.Hour
	// PostSampleSize is how many recent posts feed the aggregate.
	PostSampleSize = 10
	monthlyWindow  = 12
)

type EngagementService interface {
	AnalyzeProfile(ctx context.Context, username string) (*dto.EngagementAnalysis, error)
}

type engagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	api            instagram.API
}

func NewEngagementService(engagementRepo repository.EngagementRepo, api instagram.API) EngagementService {
	return &engagementServiceImpl{
		engagementRepo: engagementRepo,
		api:            api,
	}
}

// AnalyzeProfile returns the cached analysis when the gate is still
// fresh and otherwise runs the full fetch/aggregate/persist pipeline.
// A failure anywhere aborts with nothing persisted.
func (s *engagementServiceImpl) AnalyzeProfile(ctx context.Context, username string) (*dto.EngagementAnalysis, error) {
	profile, err := s.engagementRepo.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if profile != nil && profile.CacheExpiresAt.After(time.Now()) {
		return s.assemble(ctx, profile, true)
	}

	remote, err := s.api.GetProfile(ctx, username)
	if err != nil {
		log.ErrorContext(ctx, "engagement analysis: profile fetch failed", "username", username, "err", err)
		return nil, ErrProviderUnavailable
	}

	posts, err := s.api.GetRecentPosts(ctx, username, PostSampleSize)
	if err != nil {
		log.ErrorContext(ctx, "engagement analysis: posts fetch failed", "username", username, "err", err)
		return nil, ErrProviderUnavailable
	}

	now := time.Now()
	avgLikes, avgComments := averages(posts)
	rate := engagementRate(avgLikes, avgComments, remote.FollowerCount)

	newProfile := &model.EngagementProfile{
		Username:       username,
		FollowerCount:  remote.FollowerCount,
		AvgLikes:       avgLikes,
		AvgComments:    avgComments,
		EngagementRate: rate,
		LastAnalyzedAt: now,
		CacheExpiresAt: now.Add(EngagementCacheTTL),
	}
	if profile != nil {
		newProfile.ID = profile.ID
	}

	postRows := make([]*model.IndividualPost, 0, len(posts))
	for _, p := range posts {
		postRows = append(postRows, &model.IndividualPost{
			PostID:         p.ID,
			PostURL:        p.URL(),
			ImageURL:       p.ThumbnailURL,
			Caption:        p.Caption,
			MediaType:      p.MediaType,
			LikeCount:      p.LikeCount,
			CommentCount:   p.CommentCount,
			EngagementRate: engagementRate(float64(p.LikeCount), float64(p.CommentCount), remote.FollowerCount),
			PostedAt:       p.TakenAt,
		})
	}

	monthly := &model.MonthlyEngagementHistory{
		Month:          int(now.Month()),
		Year:           now.Year(),
		FollowerCount:  remote.FollowerCount,
		AvgLikes:       avgLikes,
		AvgComments:    avgComments,
		EngagementRate: rate,
		RecordedAt:     now,
	}

	if err = s.engagementRepo.SaveAnalysis(ctx, newProfile, postRows, monthly); err != nil {
		log.ErrorContext(ctx, "engagement analysis: persist failed", "username", username, "err", err)
		return nil, err
	}

	return s.assemble(ctx, newProfile, false)
}

func (s *engagementServiceImpl) assemble(ctx context.Context, profile *model.EngagementProfile, fromCache bool) (*dto.EngagementAnalysis, error) {
	posts, err := s.engagementRepo.GetPosts(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	monthly, err := s.engagementRepo.ListMonthly(ctx, profile.ID, monthlyWindow)
	if err != nil {
		return nil, err
	}

	result := &dto.EngagementAnalysis{
		Username:       profile.Username,
		FollowerCount:  profile.FollowerCount,
		AvgLikes:       profile.AvgLikes,
		AvgComments:    profile.AvgComments,
		EngagementRate: profile.EngagementRate,
		LastAnalyzedAt: profile.LastAnalyzedAt,
		FromCache:      fromCache,
	}
	if err = copier.Copy(&result.Posts, &posts); err != nil {
		return nil, err
	}
	if err = copier.Copy(&result.MonthlyHistory, &monthly); err != nil {
		return nil, err
	}
	return result, nil
}

func averages(posts []instagram.Post) (avgLikes float64, avgComments float64) {
	if len(posts) == 0 {
		return 0, 0
	}
	var likes, comments int64
	for _, p := range posts {
		likes += p.LikeCount
		comments += p.CommentCount
	}
	return float64(likes) / float64(len(posts)), float64(comments) / float64(len(posts))
}

// engagementRate is (avg likes + avg comments) / followers * 100.
func engagementRate(avgLikes float64, avgComments float64, followers int64) float64 {
	if followers <= 0 {
		return 0
	}
	return (avgLikes + avgComments) / float64(followers) * 100
}
