package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hectoorperezz/goviral-backend/internal/model"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/instagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngagementRepo struct {
	profiles map[string]*model.EngagementProfile
	posts    map[uint64][]*model.IndividualPost
	monthly  map[uint64]map[[2]int]*model.MonthlyEngagementHistory
	nextID   uint64
	saves    int
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{
		profiles: map[string]*model.EngagementProfile{},
		posts:    map[uint64][]*model.IndividualPost{},
		monthly:  map[uint64]map[[2]int]*model.MonthlyEngagementHistory{},
	}
}

func (s *fakeEngagementRepo) GetProfileByUsername(_ context.Context, username string) (*model.EngagementProfile, error) {
	return s.profiles[username], nil
}

func (s *fakeEngagementRepo) GetPosts(_ context.Context, profileID uint64) ([]*model.IndividualPost, error) {
	return s.posts[profileID], nil
}

func (s *fakeEngagementRepo) ListMonthly(_ context.Context, profileID uint64, limit int) ([]*model.MonthlyEngagementHistory, error) {
	var out []*model.MonthlyEngagementHistory
	for _, m := range s.monthly[profileID] {
		if len(out) == limit {
			break
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *fakeEngagementRepo) SaveAnalysis(_ context.Context, profile *model.EngagementProfile, posts []*model.IndividualPost, monthly *model.MonthlyEngagementHistory) error {
	s.saves++
	if existing, ok := s.profiles[profile.Username]; ok {
		profile.ID = existing.ID
	} else if profile.ID == 0 {
		s.nextID++
		profile.ID = s.nextID
	}
	s.profiles[profile.Username] = profile

	for i := range posts {
		posts[i].ProfileID = profile.ID
	}
	s.posts[profile.ID] = posts

	monthly.ProfileID = profile.ID
	if s.monthly[profile.ID] == nil {
		s.monthly[profile.ID] = map[[2]int]*model.MonthlyEngagementHistory{}
	}
	s.monthly[profile.ID][[2]int{monthly.Month, monthly.Year}] = monthly
	return nil
}

func TestAnalyzeProfileServesFreshCache(t *testing.T) {
	repo := newFakeEngagementRepo()
	repo.profiles["nasa"] = &model.EngagementProfile{
		ID:             7,
		Username:       "nasa",
		FollowerCount:  1000,
		AvgLikes:       150,
		AvgComments:    15,
		EngagementRate: 16.5,
		CacheExpiresAt: time.Now().Add(time.Hour),
	}
	repo.posts[7] = []*model.IndividualPost{{ProfileID: 7, PostID: "p1", LikeCount: 100}}
	api := newFakeAPI()

	svc := NewEngagementService(repo, api)
	result, err := svc.AnalyzeProfile(context.Background(), "nasa")
	require.NoError(t, err)

	assert.True(t, result.FromCache)
	assert.Equal(t, 16.5, result.EngagementRate)
	assert.Len(t, result.Posts, 1)
	assert.Zero(t, api.profileCalls)
	assert.Zero(t, api.postCalls)
	assert.Zero(t, repo.saves)
}

func TestAnalyzeProfileRefreshesExpiredCache(t *testing.T) {
	repo := newFakeEngagementRepo()
	repo.profiles["nasa"] = &model.EngagementProfile{
		ID:             7,
		Username:       "nasa",
		CacheExpiresAt: time.Now().Add(-time.Minute),
	}
	api := newFakeAPI()
	api.profiles["nasa"] = &instagram.Profile{Username: "nasa", FollowerCount: 1000}
	api.posts["nasa"] = []instagram.Post{
		{ID: "p1", Code: "abc", LikeCount: 100, CommentCount: 10},
		{ID: "p2", Code: "def", LikeCount: 200, CommentCount: 20},
	}

	svc := NewEngagementService(repo, api)
	result, err := svc.AnalyzeProfile(context.Background(), "nasa")
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, 1, api.profileCalls)
	assert.Equal(t, 1, api.postCalls)
	assert.Equal(t, 1, repo.saves)

	assert.Equal(t, int64(1000), result.FollowerCount)
	assert.Equal(t, 150.0, result.AvgLikes)
	assert.Equal(t, 15.0, result.AvgComments)
	assert.InDelta(t, 16.5, result.EngagementRate, 1e-9)

	// re-analysis keeps the profile row, replaces its posts
	stored := repo.profiles["nasa"]
	assert.Equal(t, uint64(7), stored.ID)
	assert.True(t, stored.CacheExpiresAt.After(time.Now().Add(29*24*time.Hour)))
	require.Len(t, repo.posts[7], 2)
	assert.InDelta(t, 11.0, repo.posts[7][0].EngagementRate, 1e-9)
}

func TestAnalyzeProfileFirstRun(t *testing.T) {
	repo := newFakeEngagementRepo()
	api := newFakeAPI()
	api.profiles["newbie"] = &instagram.Profile{Username: "newbie", FollowerCount: 200}
	api.posts["newbie"] = []instagram.Post{{ID: "p1", Code: "abc", LikeCount: 10, CommentCount: 2}}

	svc := NewEngagementService(repo, api)
	result, err := svc.AnalyzeProfile(context.Background(), "newbie")
	require.NoError(t, err)

	assert.InDelta(t, 6.0, result.EngagementRate, 1e-9)
	require.Len(t, result.MonthlyHistory, 1)

	now := time.Now()
	key := [2]int{int(now.Month()), now.Year()}
	profile := repo.profiles["newbie"]
	require.NotNil(t, profile)
	require.Contains(t, repo.monthly[profile.ID], key)
}

func TestAnalyzeProfileUpsertsMonthlySnapshot(t *testing.T) {
	repo := newFakeEngagementRepo()
	api := newFakeAPI()
	api.profiles["nasa"] = &instagram.Profile{Username: "nasa", FollowerCount: 1000}
	api.posts["nasa"] = []instagram.Post{{ID: "p1", Code: "abc", LikeCount: 50, CommentCount: 5}}

	svc := NewEngagementService(repo, api)
	_, err := svc.AnalyzeProfile(context.Background(), "nasa")
	require.NoError(t, err)

	// force a refresh within the same month
	repo.profiles["nasa"].CacheExpiresAt = time.Now().Add(-time.Minute)
	api.profiles["nasa"].FollowerCount = 1100

	_, err = svc.AnalyzeProfile(context.Background(), "nasa")
	require.NoError(t, err)

	profile := repo.profiles["nasa"]
	require.Len(t, repo.monthly[profile.ID], 1)
	now := time.Now()
	snapshot := repo.monthly[profile.ID][[2]int{int(now.Month()), now.Year()}]
	assert.Equal(t, int64(1100), snapshot.FollowerCount)
}

func TestAnalyzeProfileProviderFailureAborts(t *testing.T) {
	repo := newFakeEngagementRepo()
	api := newFakeAPI()
	api.profileErr["ghost"] = errors.New("upstream 502")

	svc := NewEngagementService(repo, api)
	_, err := svc.AnalyzeProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Zero(t, repo.saves)
}

func TestEngagementRateGuardsZeroFollowers(t *testing.T) {
	assert.Zero(t, engagementRate(100, 10, 0))
	assert.Zero(t, engagementRate(100, 10, -5))
}
