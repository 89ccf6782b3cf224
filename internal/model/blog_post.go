package model

import "time"

type BlogPost struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug            string     `gorm:"type:varchar(200);not null;uniqueIndex:idx_blog_slug" json:"slug"`
	Excerpt         string     `gorm:"type:text" json:"excerpt"`
	Content         string     `gorm:"not null" json:"content"`
	FeaturedImage   string     `gorm:"type:text" json:"featured_image"`
	MetaTitle       string     `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string     `gorm:"type:text" json:"meta_description"`
	Keywords        string     `gorm:"type:text" json:"keywords"`
	CategoryID      uint64     `gorm:"index:idx_blog_category" json:"category_id"`
	ViewCount       int64      `gorm:"not null;default:0" json:"view_count"`
	Published       bool       `gorm:"not null;default:false" json:"published"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Category BlogCategory `gorm:"foreignKey:CategoryID;references:ID" json:"category"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
