package repository

import (
	"context"
	"errors"

	"github.com/hectoorperezz/goviral-backend/internal/model"
	"gorm.io/gorm"
)

type BlogRepo interface {
	ListPublished(ctx context.Context, categorySlug string, page int, size int) ([]*model.BlogPost, int64, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post *model.BlogPost) error
	IncrementViews(ctx context.Context, id uint64) error
	ListCategories(ctx context.Context) ([]*model.BlogCategory, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.BlogCategory, error)
}

type BlogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepo {
	return &BlogRepoImpl{
		db: db,
	}
}

func (s BlogRepoImpl) ListPublished(ctx context.Context, categorySlug string, page int, size int) ([]*model.BlogPost, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.BlogPost{}).Where("published = ?", true)
	if categorySlug != "" {
		query = query.Joins("JOIN blog_categories ON blog_categories.id = blog_posts.category_id").
			Where("blog_categories.slug = ?", categorySlug)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.BlogPost
	err := query.Preload("Category").
		Order("published_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s BlogRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := s.db.WithContext(ctx).Preload("Category").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s BlogRepoImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s BlogRepoImpl) Create(ctx context.Context, post *model.BlogPost) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s BlogRepoImpl) IncrementViews(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (s BlogRepoImpl) ListCategories(ctx context.Context) ([]*model.BlogCategory, error) {
	var categories []*model.BlogCategory
	err := s.db.WithContext(ctx).Order("name").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s BlogRepoImpl) GetCategoryBySlug(ctx context.Context, slug string) (*model.BlogCategory, error) {
	var category model.BlogCategory
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
