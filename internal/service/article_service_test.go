package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hectoorperezz/goviral-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	responses []string
	calls     int
	failAt    int
	imageURL  string
	imageErr  error
}

func (s *fakeGenerator) Complete(_ context.Context, _ string, _ string, _ float64) (string, error) {
	s.calls++
	if s.failAt > 0 && s.calls == s.failAt {
		return "", errors.New("model overloaded")
	}
	if s.calls > len(s.responses) {
		return "", errors.New("fake: no response configured")
	}
	return s.responses[s.calls-1], nil
}

func (s *fakeGenerator) GenerateImage(_ context.Context, _ string) (string, error) {
	if s.imageErr != nil {
		return "", s.imageErr
	}
	if s.imageURL == "" {
		return "https://cdn.example.com/header.png", nil
	}
	return s.imageURL, nil
}

func stageResponses() []string {
	return []string{
		`{"primary_keyword":"instagram growth","secondary_keywords":["reels","engagement"],"search_intent":"informational"}`,
		"```json\n{\"title\":\"How to Grow on Instagram\",\"meta_title\":\"Grow on Instagram\",\"meta_description\":\"A practical guide.\",\"sections\":[{\"heading\":\"Post consistently\",\"points\":[\"schedule\"]}]}\n```",
		`{"excerpt":"A practical guide.","content":"## Post consistently\nShip reels every day."}`,
	}
}

func newArticleForTest(repo *fakeBlogRepo, gen *fakeGenerator) *articleServiceImpl {
	return &articleServiceImpl{
		blogSvc:       NewBlogService(repo),
		blogRepo:      repo,
		generator:     gen,
		keywordPrompt: "keyword prompt",
		outlinePrompt: "outline prompt",
		articlePrompt: "article prompt",
		batchPause:    0,
	}
}

func TestGenerateArticle(t *testing.T) {
	repo := &fakeBlogRepo{categories: []*model.BlogCategory{{ID: 3, Name: "Growth", Slug: "growth"}}}
	gen := &fakeGenerator{responses: stageResponses()}
	svc := newArticleForTest(repo, gen)

	slug, err := svc.GenerateArticle(context.Background(), "growing on instagram", "growth")
	require.NoError(t, err)

	assert.Equal(t, "how-to-grow-on-instagram", slug)
	assert.Equal(t, 3, gen.calls)

	require.Len(t, repo.posts, 1)
	post := repo.posts[0]
	assert.Equal(t, "How to Grow on Instagram", post.Title)
	assert.Equal(t, uint64(3), post.CategoryID)
	assert.Equal(t, "https://cdn.example.com/header.png", post.FeaturedImage)
	assert.Equal(t, "instagram growth, reels, engagement", post.Keywords)
	assert.True(t, post.Published)
	require.NotNil(t, post.PublishedAt)
}

func TestGenerateArticleUnknownCategory(t *testing.T) {
	svc := newArticleForTest(&fakeBlogRepo{}, &fakeGenerator{})
	_, err := svc.GenerateArticle(context.Background(), "topic", "missing")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestGenerateArticleStageFailureAborts(t *testing.T) {
	repo := &fakeBlogRepo{categories: []*model.BlogCategory{{ID: 3, Slug: "growth"}}}
	gen := &fakeGenerator{responses: stageResponses(), failAt: 2}
	svc := newArticleForTest(repo, gen)

	_, err := svc.GenerateArticle(context.Background(), "topic", "growth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outline stage")
	assert.Empty(t, repo.posts)
}

func TestGenerateArticleMalformedStageOutput(t *testing.T) {
	repo := &fakeBlogRepo{categories: []*model.BlogCategory{{ID: 3, Slug: "growth"}}}
	gen := &fakeGenerator{responses: []string{"I cannot answer that."}}
	svc := newArticleForTest(repo, gen)

	_, err := svc.GenerateArticle(context.Background(), "topic", "growth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword research stage")
	assert.Empty(t, repo.posts)
}

func TestGenerateArticleImageFailureAborts(t *testing.T) {
	repo := &fakeBlogRepo{categories: []*model.BlogCategory{{ID: 3, Slug: "growth"}}}
	gen := &fakeGenerator{responses: stageResponses(), imageErr: errors.New("image provider down")}
	svc := newArticleForTest(repo, gen)

	_, err := svc.GenerateArticle(context.Background(), "topic", "growth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image stage")
	assert.Empty(t, repo.posts)
}

func TestRunBatchContinuesPastFailures(t *testing.T) {
	repo := &fakeBlogRepo{categories: []*model.BlogCategory{{ID: 3, Slug: "growth"}}}
	// first topic consumes all three stage responses, the rest fail
	gen := &fakeGenerator{responses: stageResponses()}
	svc := newArticleForTest(repo, gen)

	result, err := svc.runBatch(context.Background(), []string{"topic a", "topic b"}, "growth")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "how-to-grow-on-instagram", result.Results[0].Slug)
	assert.NotEmpty(t, result.Results[1].Error)
	assert.Len(t, repo.posts, 1)
}

func TestRunBatchStopsOnCancel(t *testing.T) {
	repo := &fakeBlogRepo{categories: []*model.BlogCategory{{ID: 3, Slug: "growth"}}}
	gen := &fakeGenerator{responses: stageResponses()}
	svc := newArticleForTest(repo, gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.runBatch(ctx, []string{"topic a", "topic b"}, "growth")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, len(result.Results))
}
