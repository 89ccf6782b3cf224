package instagram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.SocialAPIConfig{
		BaseURL: server.URL,
		ApiKey:  "test-key",
		Timeout: 5,
	})
}

func TestGetProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/info", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "goviral", r.URL.Query().Get("username_or_id_or_url"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"123","username":"goviral","full_name":"GoViral","follower_count":5000,"following_count":100,"media_count":42,"is_verified":true}}`))
	})

	profile, err := client.GetProfile(context.Background(), "goviral")
	require.NoError(t, err)
	assert.Equal(t, "goviral", profile.Username)
	assert.Equal(t, int64(5000), profile.FollowerCount)
	assert.True(t, profile.IsVerified)
}

func TestGetProfileMissingEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	_, err := client.GetProfile(context.Background(), "goviral")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing the data envelope")
}

func TestGetProfileHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetProfile(context.Background(), "goviral")
	assert.Error(t, err)
}

func TestGetRecentPosts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/posts", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"items":[
			{"id":"p1","code":"abc","caption":{"text":"hello"},"like_count":100,"comment_count":10,"media_name":"post","taken_at":1700000000},
			{"id":"p2","code":"def","like_count":50,"comment_count":5}
		]}}`))
	})

	posts, err := client.GetRecentPosts(context.Background(), "goviral", 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "hello", posts[0].Caption)
	assert.Equal(t, "https://www.instagram.com/p/abc/", posts[0].URL())
	assert.Equal(t, int64(100), posts[0].LikeCount)
	assert.False(t, posts[0].TakenAt.IsZero())
	assert.Empty(t, posts[1].Caption)
}

func TestGetRecentPostsTruncatesToLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"items":[
			{"id":"p1","code":"a"},{"id":"p2","code":"b"},{"id":"p3","code":"c"}
		]}}`))
	})

	posts, err := client.GetRecentPosts(context.Background(), "goviral", 2)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
