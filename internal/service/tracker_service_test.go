package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/hectoorperezz/goviral-backend/internal/model"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/instagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeTrackedUserRepo struct {
	users  map[string]*model.TrackedUser
	nextID uint64
}

func newFakeTrackedUserRepo() *fakeTrackedUserRepo {
	return &fakeTrackedUserRepo{users: map[string]*model.TrackedUser{}}
}

func (s *fakeTrackedUserRepo) GetByUsername(_ context.Context, username string) (*model.TrackedUser, error) {
	return s.users[username], nil
}

func (s *fakeTrackedUserRepo) Upsert(_ context.Context, user *model.TrackedUser) error {
	if existing, ok := s.users[user.Username]; ok {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	} else {
		s.nextID++
		user.ID = s.nextID
	}
	s.users[user.Username] = user
	return nil
}

func (s *fakeTrackedUserRepo) ListActive(_ context.Context) ([]*model.TrackedUser, error) {
	var out []*model.TrackedUser
	for _, u := range s.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *fakeTrackedUserRepo) Deactivate(_ context.Context, username string) error {
	if u, ok := s.users[username]; ok {
		u.IsActive = false
	}
	return nil
}

type fakeHistoryRepo struct {
	rows []*model.FollowerHistory
}

func (s *fakeHistoryRepo) Create(_ context.Context, snapshot *model.FollowerHistory) error {
	s.rows = append(s.rows, snapshot)
	return nil
}

func (s *fakeHistoryRepo) ListSince(_ context.Context, trackedUserID uint64, since time.Time) ([]*model.FollowerHistory, error) {
	var out []*model.FollowerHistory
	for _, r := range s.rows {
		if r.TrackedUserID == trackedUserID && !r.RecordedAt.Before(since) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.Before(out[j].RecordedAt) })
	return out, nil
}

func (s *fakeHistoryRepo) seed(userID uint64, age time.Duration, followers int64) {
	s.rows = append(s.rows, &model.FollowerHistory{
		TrackedUserID: userID,
		FollowerCount: followers,
		RecordedAt:    time.Now().Add(-age),
	})
}

func newTrackerForTest(userRepo *fakeTrackedUserRepo, historyRepo *fakeHistoryRepo, api *fakeAPI) *trackerServiceImpl {
	return &trackerServiceImpl{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		api:         api,
		limiter:     rate.NewLimiter(rate.Inf, 1),
	}
}

func TestTrackUserCreatesInitialSnapshot(t *testing.T) {
	userRepo := newFakeTrackedUserRepo()
	historyRepo := &fakeHistoryRepo{}
	api := newFakeAPI()
	api.profiles["nasa"] = &instagram.Profile{
		ID:            "1234",
		Username:      "nasa",
		FullName:      "NASA",
		FollowerCount: 96000000,
		MediaCount:    4000,
	}

	svc := newTrackerForTest(userRepo, historyRepo, api)
	info, err := svc.TrackUser(context.Background(), "nasa")
	require.NoError(t, err)

	assert.Equal(t, "nasa", info.Username)
	assert.Equal(t, int64(96000000), info.FollowerCount)

	stored := userRepo.users["nasa"]
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
	assert.Equal(t, "1234", stored.InstagramID)

	require.Len(t, historyRepo.rows, 1)
	assert.Equal(t, stored.ID, historyRepo.rows[0].TrackedUserID)
	assert.Equal(t, int64(96000000), historyRepo.rows[0].FollowerCount)
}

func TestTrackUserReactivates(t *testing.T) {
	userRepo := newFakeTrackedUserRepo()
	historyRepo := &fakeHistoryRepo{}
	api := newFakeAPI()
	api.profiles["nasa"] = &instagram.Profile{Username: "nasa", FollowerCount: 100}

	svc := newTrackerForTest(userRepo, historyRepo, api)
	_, err := svc.TrackUser(context.Background(), "nasa")
	require.NoError(t, err)

	require.NoError(t, userRepo.Deactivate(context.Background(), "nasa"))

	_, err = svc.TrackUser(context.Background(), "nasa")
	require.NoError(t, err)
	assert.True(t, userRepo.users["nasa"].IsActive)
}

func TestGetGrowthStats(t *testing.T) {
	userRepo := newFakeTrackedUserRepo()
	require.NoError(t, userRepo.Upsert(context.Background(), &model.TrackedUser{Username: "nasa", IsActive: true}))
	userID := userRepo.users["nasa"].ID

	historyRepo := &fakeHistoryRepo{}
	historyRepo.seed(userID, 72*time.Hour, 100)
	historyRepo.seed(userID, 48*time.Hour, 110)
	historyRepo.seed(userID, 24*time.Hour, 125)

	svc := newTrackerForTest(userRepo, historyRepo, newFakeAPI())
	stats, err := svc.GetGrowthStats(context.Background(), "nasa")
	require.NoError(t, err)

	assert.Equal(t, int64(125), stats.CurrentFollowers)
	assert.Equal(t, int64(15), stats.DailyChange)
	assert.Equal(t, int64(25), stats.TotalChange)
	assert.InDelta(t, 25.0, stats.GrowthRate, 1e-9)
	assert.Equal(t, 3, stats.SnapshotCount)
}

func TestGetGrowthStatsIgnoresSnapshotsOutsideWindow(t *testing.T) {
	userRepo := newFakeTrackedUserRepo()
	require.NoError(t, userRepo.Upsert(context.Background(), &model.TrackedUser{Username: "nasa", IsActive: true}))
	userID := userRepo.users["nasa"].ID

	historyRepo := &fakeHistoryRepo{}
	historyRepo.seed(userID, 40*24*time.Hour, 50)
	historyRepo.seed(userID, 48*time.Hour, 100)
	historyRepo.seed(userID, 24*time.Hour, 110)

	svc := newTrackerForTest(userRepo, historyRepo, newFakeAPI())
	stats, err := svc.GetGrowthStats(context.Background(), "nasa")
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalChange)
	assert.Equal(t, 2, stats.SnapshotCount)
}

func TestGetGrowthStatsRequiresTwoSnapshots(t *testing.T) {
	userRepo := newFakeTrackedUserRepo()
	require.NoError(t, userRepo.Upsert(context.Background(), &model.TrackedUser{Username: "nasa", IsActive: true}))

	historyRepo := &fakeHistoryRepo{}
	historyRepo.seed(userRepo.users["nasa"].ID, 24*time.Hour, 100)

	svc := newTrackerForTest(userRepo, historyRepo, newFakeAPI())
	_, err := svc.GetGrowthStats(context.Background(), "nasa")
	require.ErrorIs(t, err, ErrNotEnoughHistory)
}

func TestGetGrowthStatsUntrackedUser(t *testing.T) {
	svc := newTrackerForTest(newFakeTrackedUserRepo(), &fakeHistoryRepo{}, newFakeAPI())
	_, err := svc.GetGrowthStats(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotTracked)
}

func TestRunDailyUpdateCountsFailures(t *testing.T) {
	userRepo := newFakeTrackedUserRepo()
	historyRepo := &fakeHistoryRepo{}
	api := newFakeAPI()

	for _, name := range []string{"alpha", "bravo", "charlie"} {
		require.NoError(t, userRepo.Upsert(context.Background(), &model.TrackedUser{Username: name, IsActive: true}))
		api.profiles[name] = &instagram.Profile{Username: name, FollowerCount: 100}
	}
	api.profileErr["bravo"] = errors.New("rate limited")

	svc := newTrackerForTest(userRepo, historyRepo, api)
	summary, err := svc.runDailyUpdate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, []string{"bravo"}, summary.FailedUsers)
	assert.Len(t, historyRepo.rows, 2)
}

func TestRunDailyUpdateSkipsInactive(t *testing.T) {
	userRepo := newFakeTrackedUserRepo()
	api := newFakeAPI()
	require.NoError(t, userRepo.Upsert(context.Background(), &model.TrackedUser{Username: "alpha", IsActive: true}))
	require.NoError(t, userRepo.Upsert(context.Background(), &model.TrackedUser{Username: "gone", IsActive: false}))
	api.profiles["alpha"] = &instagram.Profile{Username: "alpha", FollowerCount: 100}

	svc := newTrackerForTest(userRepo, &fakeHistoryRepo{}, api)
	summary, err := svc.runDailyUpdate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Updated)
}
