package service

import (
	"context"
	"errors"

	"github.com/hectoorperezz/goviral-backend/internal/pkg/instagram"
)

// fakeAPI is an in-memory instagram.API used across the service tests.
type fakeAPI struct {
	profiles   map[string]*instagram.Profile
	posts      map[string][]instagram.Post
	hashtags   map[string][]instagram.Post
	profileErr map[string]error

	profileCalls int
	postCalls    int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		profiles:   map[string]*instagram.Profile{},
		posts:      map[string][]instagram.Post{},
		hashtags:   map[string][]instagram.Post{},
		profileErr: map[string]error{},
	}
}

func (s *fakeAPI) GetProfile(_ context.Context, username string) (*instagram.Profile, error) {
	s.profileCalls++
	if err := s.profileErr[username]; err != nil {
		return nil, err
	}
	profile, ok := s.profiles[username]
	if !ok {
		return nil, errors.New("fake: unknown profile")
	}
	return profile, nil
}

func (s *fakeAPI) GetRecentPosts(_ context.Context, username string, limit int) ([]instagram.Post, error) {
	s.postCalls++
	posts := s.posts[username]
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (s *fakeAPI) GetHashtagPosts(_ context.Context, tag string) ([]instagram.Post, error) {
	return s.hashtags[tag], nil
}
