package dto

import "time"

type BlogPostSummary struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	Category      string     `json:"category"`
	ViewCount     int64      `json:"view_count"`
	PublishedAt   *time.Time `json:"published_at"`
}

type BlogPostDetail struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	Keywords        string     `json:"keywords"`
	Category        string     `json:"category"`
	ViewCount       int64      `json:"view_count"`
	PublishedAt     *time.Time `json:"published_at"`
}

type BlogPostList struct {
	Posts []BlogPostSummary `json:"posts"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

type BlogCategoryInfo struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
