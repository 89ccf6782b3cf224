package service

import (
	"context"
	log "log/slog"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/consts"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/instagram"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/redis"
)

const (
	hashtagCacheTTL = 6 * time.Hour
	topPostCount    = 5
)

// ProgressFunc receives coarse pipeline progress for SSE streaming.
type ProgressFunc func(stage string, percent int)

type HashtagService interface {
	Analyze(ctx context.Context, tag string, progress ProgressFunc) (*dto.HashtagAnalysis, error)
}

type hashtagServiceImpl struct {
	api instagram.API
}

func NewHashtagService(api instagram.API) HashtagService {
	return &hashtagServiceImpl{
		api: api,
	}
}

// Analyze fetches recent posts for the hashtag and computes aggregate
// stats, serving from the redis cache when a fresh result exists.
func (s *hashtagServiceImpl) Analyze(ctx context.Context, tag string, progress ProgressFunc) (*dto.HashtagAnalysis, error) {
	tag = strings.ToLower(strings.TrimPrefix(tag, "#"))
	if tag == "" {
		return nil, ErrParamInvalid
	}
	if progress == nil {
		progress = func(string, int) {}
	}

	progress("checking cache", 10)
	cacheKey := consts.HashtagCacheKey + tag
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var analysis dto.HashtagAnalysis
		if err = json.Unmarshal([]byte(cached), &analysis); err == nil {
			progress("done", 100)
			return &analysis, nil
		}
	}

	progress("fetching posts", 30)
	posts, err := s.api.GetHashtagPosts(ctx, tag)
	if err != nil {
		log.ErrorContext(ctx, "hashtag analysis: fetch failed", "tag", tag, "err", err)
		return nil, ErrProviderUnavailable
	}

	progress("aggregating", 70)
	analysis := aggregateHashtag(tag, posts)

	if data, err := json.Marshal(analysis); err == nil {
		if err = redis.SetWithExpiration(ctx, cacheKey, data, hashtagCacheTTL); err != nil {
			log.WarnContext(ctx, "hashtag analysis: cache write failed", "tag", tag, "err", err)
		}
	}

	progress("done", 100)
	return analysis, nil
}

func aggregateHashtag(tag string, posts []instagram.Post) *dto.HashtagAnalysis {
	analysis := &dto.HashtagAnalysis{
		Tag:        tag,
		PostCount:  len(posts),
		AnalyzedAt: time.Now(),
	}
	if len(posts) == 0 {
		return analysis
	}

	var likes, comments int64
	for _, p := range posts {
		likes += p.LikeCount
		comments += p.CommentCount
	}
	analysis.AvgLikes = float64(likes) / float64(len(posts))
	analysis.AvgComments = float64(comments) / float64(len(posts))

	sorted := make([]instagram.Post, len(posts))
	copy(sorted, posts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LikeCount > sorted[j].LikeCount
	})
	if len(sorted) > topPostCount {
		sorted = sorted[:topPostCount]
	}
	for _, p := range sorted {
		analysis.TopPosts = append(analysis.TopPosts, dto.HashtagPost{
			PostURL:      p.URL(),
			ImageURL:     p.ThumbnailURL,
			Caption:      p.Caption,
			LikeCount:    p.LikeCount,
			CommentCount: p.CommentCount,
		})
	}
	return analysis
}
