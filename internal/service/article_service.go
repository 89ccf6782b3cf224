package service

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/model"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/consts"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/llm"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/redis"
	"github.com/hectoorperezz/goviral-backend/internal/repository"
)

// ArticleBatchPause spaces out topics so the LLM provider is never hammered.
const ArticleBatchPause = 30 * time.Second

type ArticleService interface {
	GenerateArticle(ctx context.Context, topic string, categorySlug string) (string, error)
	GenerateBatch(ctx context.Context, topics []string, categorySlug string) (*dto.ArticleBatchResult, error)
}

type articleServiceImpl struct {
	blogSvc   BlogService
	blogRepo  repository.BlogRepo
	generator llm.Generator

	keywordPrompt string
	outlinePrompt string
	articlePrompt string
	batchPause    time.Duration
}

func NewArticleService(blogSvc BlogService, blogRepo repository.BlogRepo, generator llm.Generator, prompts config.PromptPathConfig) ArticleService {
	return &articleServiceImpl{
		blogSvc:       blogSvc,
		blogRepo:      blogRepo,
		generator:     generator,
		keywordPrompt: llm.ReadPrompt(prompts.KeywordResearch),
		outlinePrompt: llm.ReadPrompt(prompts.Outline),
		articlePrompt: llm.ReadPrompt(prompts.Article),
		batchPause:    ArticleBatchPause,
	}
}

type keywordResearch struct {
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	SearchIntent      string   `json:"search_intent"`
}

type articleOutline struct {
	Title           string `json:"title"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	Sections        []struct {
		Heading string   `json:"heading"`
		Points  []string `json:"points"`
	} `json:"sections"`
}

type articleBody struct {
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// GenerateArticle chains keyword research, outline and full article,
// then attaches a generated featured image and stores the post.
// Any stage failing aborts the whole topic.
func (s *articleServiceImpl) GenerateArticle(ctx context.Context, topic string, categorySlug string) (string, error) {
	category, err := s.blogRepo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", ErrCategoryNotFound
	}

	var research keywordResearch
	if err = s.stage(ctx, s.keywordPrompt, topic, 0.3, &research); err != nil {
		return "", fmt.Errorf("keyword research stage: %w", err)
	}

	outlineInput := fmt.Sprintf("Topic: %s\nPrimary keyword: %s\nSecondary keywords: %s\nSearch intent: %s",
		topic, research.PrimaryKeyword, strings.Join(research.SecondaryKeywords, ", "), research.SearchIntent)
	var outline articleOutline
	if err = s.stage(ctx, s.outlinePrompt, outlineInput, 0.5, &outline); err != nil {
		return "", fmt.Errorf("outline stage: %w", err)
	}
	if outline.Title == "" {
		return "", fmt.Errorf("outline stage: model returned an empty title")
	}

	var headings []string
	for _, section := range outline.Sections {
		headings = append(headings, section.Heading)
	}
	articleInput := fmt.Sprintf("Title: %s\nPrimary keyword: %s\nOutline:\n- %s",
		outline.Title, research.PrimaryKeyword, strings.Join(headings, "\n- "))
	var body articleBody
	if err = s.stage(ctx, s.articlePrompt, articleInput, 0.7, &body); err != nil {
		return "", fmt.Errorf("article stage: %w", err)
	}
	if body.Content == "" {
		return "", fmt.Errorf("article stage: model returned empty content")
	}

	imageURL, err := s.generator.GenerateImage(ctx,
		fmt.Sprintf("Editorial blog header illustration, no text, about: %s", outline.Title))
	if err != nil {
		return "", fmt.Errorf("image stage: %w", err)
	}

	keywords := append([]string{research.PrimaryKeyword}, research.SecondaryKeywords...)
	post := &model.BlogPost{
		Title:           outline.Title,
		Excerpt:         body.Excerpt,
		Content:         body.Content,
		FeaturedImage:   imageURL,
		MetaTitle:       outline.MetaTitle,
		MetaDescription: outline.MetaDescription,
		Keywords:        strings.Join(keywords, ", "),
		CategoryID:      category.ID,
		Published:       true,
	}
	if err = s.blogSvc.CreatePost(ctx, post); err != nil {
		return "", err
	}

	log.InfoContext(ctx, "generated article", "topic", topic, "slug", post.Slug)
	return post.Slug, nil
}

func (s *articleServiceImpl) stage(ctx context.Context, systemPrompt string, input string, temp float64, out interface{}) error {
	raw, err := s.generator.Complete(ctx, systemPrompt, input, temp)
	if err != nil {
		return err
	}
	return llm.ExtractJSON(raw, out)
}

// GenerateBatch runs topics sequentially with a fixed pause between
// them; one topic failing is recorded and the batch continues.
func (s *articleServiceImpl) GenerateBatch(ctx context.Context, topics []string, categorySlug string) (*dto.ArticleBatchResult, error) {
	token := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.ArticleBatchLock, token, time.Hour, 1)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrBatchInProgress
	}
	defer redis.UnLock(ctx, consts.ArticleBatchLock, token)

	return s.runBatch(ctx, topics, categorySlug)
}

func (s *articleServiceImpl) runBatch(ctx context.Context, topics []string, categorySlug string) (*dto.ArticleBatchResult, error) {
	result := &dto.ArticleBatchResult{}
	for i, topic := range topics {
		if i > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(s.batchPause):
			}
		}

		slug, err := s.GenerateArticle(ctx, topic, categorySlug)
		if err != nil {
			log.ErrorContext(ctx, "article generation failed", "topic", topic, "err", err)
			result.Failed++
			result.Results = append(result.Results, dto.ArticleResult{Topic: topic, Error: err.Error()})
			continue
		}
		result.Succeeded++
		result.Results = append(result.Results, dto.ArticleResult{Topic: topic, Slug: slug})
	}
	return result, nil
}
