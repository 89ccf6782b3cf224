package service

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/model"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/util"
	"github.com/hectoorperezz/goviral-backend/internal/repository"
	"github.com/jinzhu/copier"
)

const defaultPageSize = 12

type BlogService interface {
	ListPosts(ctx context.Context, categorySlug string, page int, size int) (*dto.BlogPostList, error)
	GetPostBySlug(ctx context.Context, slug string) (*dto.BlogPostDetail, error)
	ListCategories(ctx context.Context) ([]dto.BlogCategoryInfo, error)
	CreatePost(ctx context.Context, post *model.BlogPost) error
}

type blogServiceImpl struct {
	blogRepo repository.BlogRepo
}

func NewBlogService(blogRepo repository.BlogRepo) BlogService {
	return &blogServiceImpl{
		blogRepo: blogRepo,
	}
}

func (s *blogServiceImpl) ListPosts(ctx context.Context, categorySlug string, page int, size int) (*dto.BlogPostList, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = defaultPageSize
	}

	posts, total, err := s.blogRepo.ListPublished(ctx, categorySlug, page, size)
	if err != nil {
		return nil, err
	}

	list := &dto.BlogPostList{
		Posts: make([]dto.BlogPostSummary, 0, len(posts)),
		Total: total,
		Page:  page,
		Size:  size,
	}
	for _, post := range posts {
		var summary dto.BlogPostSummary
		if err = copier.Copy(&summary, post); err != nil {
			return nil, err
		}
		summary.Category = post.Category.Name
		list.Posts = append(list.Posts, summary)
	}
	return list, nil
}

// GetPostBySlug returns a post and bumps its view counter. The counter
// update is best-effort and never fails the read.
func (s *blogServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*dto.BlogPostDetail, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published {
		return nil, ErrPostNotFound
	}

	if err = s.blogRepo.IncrementViews(ctx, post.ID); err != nil {
		log.WarnContext(ctx, "failed to increment view count", "slug", slug, "err", err)
	}

	var detail dto.BlogPostDetail
	if err = copier.Copy(&detail, post); err != nil {
		return nil, err
	}
	detail.Category = post.Category.Name
	detail.ViewCount = post.ViewCount + 1
	return &detail, nil
}

func (s *blogServiceImpl) ListCategories(ctx context.Context) ([]dto.BlogCategoryInfo, error) {
	categories, err := s.blogRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.BlogCategoryInfo, 0, len(categories))
	for _, c := range categories {
		infos = append(infos, dto.BlogCategoryInfo{
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
		})
	}
	return infos, nil
}

// CreatePost assigns a unique slug derived from the title and stamps
// the publish time when the post goes out published.
func (s *blogServiceImpl) CreatePost(ctx context.Context, post *model.BlogPost) error {
	if post.Title == "" {
		return ErrParamInvalid
	}

	slug, err := s.uniqueSlug(ctx, util.Slugify(post.Title))
	if err != nil {
		return err
	}
	post.Slug = slug

	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return s.blogRepo.Create(ctx, post)
}

func (s *blogServiceImpl) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "post"
	}
	slug := base
	for i := 2; ; i++ {
		exists, err := s.blogRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
