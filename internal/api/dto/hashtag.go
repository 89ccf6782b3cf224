package dto

import "time"

type HashtagAnalysis struct {
	Tag         string        `json:"tag"`
	PostCount   int           `json:"post_count"`
	AvgLikes    float64       `json:"avg_likes"`
	AvgComments float64       `json:"avg_comments"`
	TopPosts    []HashtagPost `json:"top_posts"`
	AnalyzedAt  time.Time     `json:"analyzed_at"`
}

type HashtagPost struct {
	PostURL      string `json:"post_url"`
	ImageURL     string `json:"image_url"`
	Caption      string `json:"caption"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}
