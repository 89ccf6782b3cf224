package instagram

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/pkg/errors"
)

// API is the subset of the social data provider the services depend on.
type API interface {
	GetProfile(ctx context.Context, username string) (*Profile, error)
	GetRecentPosts(ctx context.Context, username string, limit int) ([]Post, error)
	GetHashtagPosts(ctx context.Context, tag string) ([]Post, error)
}

// Client talks to the third-party Instagram REST API, keyed by an API
// key header. No retries: any failure is terminal for the request.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.SocialAPIConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout == 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("x-api-key", cfg.ApiKey).
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}

func (s *Client) GetProfile(ctx context.Context, username string) (*Profile, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("username_or_id_or_url", username).
		Get("/v1/info")
	if err != nil {
		return nil, errors.Wrapf(err, "instagram: info request for %s failed", username)
	}
	if resp.IsError() {
		return nil, errors.Errorf("instagram: info request for %s returned %s", username, resp.Status())
	}

	var envelope infoEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, errors.Wrap(err, "instagram: failed to decode info response")
	}
	if envelope.Data == nil || envelope.Data.Username == "" {
		return nil, errors.Errorf("instagram: info response for %s is missing the data envelope", username)
	}

	raw := envelope.Data
	return &Profile{
		ID:             raw.ID,
		Username:       raw.Username,
		FullName:       raw.FullName,
		ProfilePicURL:  raw.ProfilePicURL,
		IsVerified:     raw.IsVerified,
		IsPrivate:      raw.IsPrivate,
		Biography:      raw.Biography,
		FollowerCount:  raw.FollowerCount,
		FollowingCount: raw.FollowingCount,
		MediaCount:     raw.MediaCount,
	}, nil
}

func (s *Client) GetRecentPosts(ctx context.Context, username string, limit int) ([]Post, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("username_or_id_or_url", username).
		SetQueryParam("count", strconv.Itoa(limit)).
		Get("/v1/posts")
	if err != nil {
		return nil, errors.Wrapf(err, "instagram: posts request for %s failed", username)
	}
	if resp.IsError() {
		return nil, errors.Errorf("instagram: posts request for %s returned %s", username, resp.Status())
	}

	posts, err := decodePosts(resp.Body())
	if err != nil {
		return nil, errors.Wrapf(err, "instagram: posts response for %s", username)
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (s *Client) GetHashtagPosts(ctx context.Context, tag string) ([]Post, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("hashtag", tag).
		Get("/v1/hashtag")
	if err != nil {
		return nil, errors.Wrapf(err, "instagram: hashtag request for %s failed", tag)
	}
	if resp.IsError() {
		return nil, errors.Errorf("instagram: hashtag request for %s returned %s", tag, resp.Status())
	}

	posts, err := decodePosts(resp.Body())
	if err != nil {
		return nil, errors.Wrapf(err, "instagram: hashtag response for %s", tag)
	}
	return posts, nil
}

func decodePosts(body []byte) ([]Post, error) {
	var envelope postsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode")
	}
	if envelope.Data == nil {
		return nil, errors.New("response is missing the data envelope")
	}

	posts := make([]Post, 0, len(envelope.Data.Items))
	for _, item := range envelope.Data.Items {
		posts = append(posts, item.toPost())
	}
	return posts, nil
}
