package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/model"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/consts"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/instagram"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/redis"
	"github.com/hectoorperezz/goviral-backend/internal/repository"
	"github.com/jinzhu/copier"
	"golang.org/x/time/rate"
)

// GrowthWindow bounds the history used for trend charts and growth stats.
const GrowthWindow = 30 * 24 * time.Hour

type TrackerService interface {
	TrackUser(ctx context.Context, username string) (*dto.TrackedUserInfo, error)
	UpdateUserStats(ctx context.Context, username string, stats *instagram.Profile) error
	GetGrowthStats(ctx context.Context, username string) (*dto.GrowthStats, error)
	GetHistory(ctx context.Context, username string) ([]dto.HistoryPoint, error)
	PerformDailyUpdate(ctx context.Context) (*dto.DailyUpdateSummary, error)
}

type trackerServiceImpl struct {
	userRepo    repository.TrackedUserRepo
	historyRepo repository.FollowerHistoryRepo
	api         instagram.API
	limiter     *rate.Limiter
}

func NewTrackerService(
	userRepo repository.TrackedUserRepo,
	historyRepo repository.FollowerHistoryRepo,
	api instagram.API,
	ratePerSecond float64,
) TrackerService {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &trackerServiceImpl{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		api:         api,
		limiter:     rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

// TrackUser registers a handle on first sight and records the initial
// snapshot. Re-tracking an inactive user reactivates it.
func (s *trackerServiceImpl) TrackUser(ctx context.Context, username string) (*dto.TrackedUserInfo, error) {
	remote, err := s.api.GetProfile(ctx, username)
	if err != nil {
		log.ErrorContext(ctx, "tracker: profile fetch failed", "username", username, "err", err)
		return nil, ErrProviderUnavailable
	}

	if err = s.applyStats(ctx, username, remote); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	info := &dto.TrackedUserInfo{}
	if err = copier.Copy(info, user); err != nil {
		return nil, err
	}
	return info, nil
}

// UpdateUserStats refreshes the current-state row and appends a snapshot.
func (s *trackerServiceImpl) UpdateUserStats(ctx context.Context, username string, stats *instagram.Profile) error {
	return s.applyStats(ctx, username, stats)
}

func (s *trackerServiceImpl) applyStats(ctx context.Context, username string, stats *instagram.Profile) error {
	now := time.Now()
	user := &model.TrackedUser{
		Username:       username,
		InstagramID:    stats.ID,
		FullName:       stats.FullName,
		ProfilePicURL:  stats.ProfilePicURL,
		IsVerified:     stats.IsVerified,
		IsPrivate:      stats.IsPrivate,
		Biography:      stats.Biography,
		FollowerCount:  stats.FollowerCount,
		FollowingCount: stats.FollowingCount,
		MediaCount:     stats.MediaCount,
		IsActive:       true,
		LastUpdated:    now,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return err
	}

	stored, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	return s.historyRepo.Create(ctx, &model.FollowerHistory{
		TrackedUserID:  stored.ID,
		FollowerCount:  stats.FollowerCount,
		FollowingCount: stats.FollowingCount,
		MediaCount:     stats.MediaCount,
		RecordedAt:     now,
	})
}

// GetGrowthStats derives daily/total change and growth rate from the
// oldest and two newest snapshots in the trailing window.
func (s *trackerServiceImpl) GetGrowthStats(ctx context.Context, username string) (*dto.GrowthStats, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotTracked
	}

	history, err := s.historyRepo.ListSince(ctx, user.ID, time.Now().Add(-GrowthWindow))
	if err != nil {
		return nil, err
	}
	if len(history) < 2 {
		return nil, ErrNotEnoughHistory
	}

	oldest := history[0]
	previous := history[len(history)-2]
	latest := history[len(history)-1]

	totalChange := latest.FollowerCount - oldest.FollowerCount
	var growthRate float64
	if oldest.FollowerCount > 0 {
		growthRate = float64(totalChange) / float64(oldest.FollowerCount) * 100
	}

	return &dto.GrowthStats{
		Username:         username,
		CurrentFollowers: latest.FollowerCount,
		DailyChange:      latest.FollowerCount - previous.FollowerCount,
		TotalChange:      totalChange,
		GrowthRate:       growthRate,
		SnapshotCount:    len(history),
	}, nil
}

func (s *trackerServiceImpl) GetHistory(ctx context.Context, username string) ([]dto.HistoryPoint, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotTracked
	}

	history, err := s.historyRepo.ListSince(ctx, user.ID, time.Now().Add(-GrowthWindow))
	if err != nil {
		return nil, err
	}

	points := make([]dto.HistoryPoint, 0, len(history))
	for _, h := range history {
		points = append(points, dto.HistoryPoint{
			FollowerCount:  h.FollowerCount,
			FollowingCount: h.FollowingCount,
			MediaCount:     h.MediaCount,
			RecordedAt:     h.RecordedAt,
		})
	}
	return points, nil
}

// PerformDailyUpdate refreshes every active tracked user sequentially,
// pacing calls through the limiter. A failing user is counted and
// logged but never aborts the batch.
func (s *trackerServiceImpl) PerformDailyUpdate(ctx context.Context) (*dto.DailyUpdateSummary, error) {
	token := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.DailyUpdateLock, token, time.Hour, 1)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrBatchInProgress
	}
	defer redis.UnLock(ctx, consts.DailyUpdateLock, token)

	return s.runDailyUpdate(ctx)
}

func (s *trackerServiceImpl) runDailyUpdate(ctx context.Context) (*dto.DailyUpdateSummary, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.DailyUpdateSummary{Total: len(users)}
	for _, user := range users {
		if err = s.limiter.Wait(ctx); err != nil {
			return summary, err
		}

		remote, err := s.api.GetProfile(ctx, user.Username)
		if err != nil {
			log.ErrorContext(ctx, "daily update: profile fetch failed", "username", user.Username, "err", err)
			summary.Errors++
			summary.FailedUsers = append(summary.FailedUsers, user.Username)
			continue
		}

		if err = s.applyStats(ctx, user.Username, remote); err != nil {
			log.ErrorContext(ctx, "daily update: persist failed", "username", user.Username, "err", err)
			summary.Errors++
			summary.FailedUsers = append(summary.FailedUsers, user.Username)
			continue
		}
		summary.Updated++
	}

	log.InfoContext(ctx, "daily follower update finished",
		"total", summary.Total, "updated", summary.Updated, "errors", summary.Errors)
	return summary, nil
}
