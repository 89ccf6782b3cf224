package dto

import "time"

type EngagementAnalyzeRequest struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
}

// EngagementAnalysis is the assembled response joining the profile row,
// its analyzed posts and the monthly trend.
type EngagementAnalysis struct {
	Username       string            `json:"username"`
	FollowerCount  int64             `json:"follower_count"`
	AvgLikes       float64           `json:"avg_likes"`
	AvgComments    float64           `json:"avg_comments"`
	EngagementRate float64           `json:"engagement_rate"`
	LastAnalyzedAt time.Time         `json:"last_analyzed_at"`
	FromCache      bool              `json:"from_cache"`
	Posts          []AnalyzedPost    `json:"posts"`
	MonthlyHistory []MonthlySnapshot `json:"monthly_history"`
}

type AnalyzedPost struct {
	PostID         string    `json:"post_id"`
	PostURL        string    `json:"post_url"`
	ImageURL       string    `json:"image_url"`
	Caption        string    `json:"caption"`
	MediaType      string    `json:"media_type"`
	LikeCount      int64     `json:"like_count"`
	CommentCount   int64     `json:"comment_count"`
	EngagementRate float64   `json:"engagement_rate"`
	PostedAt       time.Time `json:"posted_at"`
}

type MonthlySnapshot struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	FollowerCount  int64   `json:"follower_count"`
	AvgLikes       float64 `json:"avg_likes"`
	AvgComments    float64 `json:"avg_comments"`
	EngagementRate float64 `json:"engagement_rate"`
}
