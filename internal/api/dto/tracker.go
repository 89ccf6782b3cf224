package dto

import "time"

type TrackRequest struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
}

type TrackedUserInfo struct {
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	ProfilePicURL  string    `json:"profile_pic_url"`
	IsVerified     bool      `json:"is_verified"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	MediaCount     int64     `json:"media_count"`
	LastUpdated    time.Time `json:"last_updated"`
}

// GrowthStats is derived from the trailing 30-day history window.
type GrowthStats struct {
	Username         string  `json:"username"`
	CurrentFollowers int64   `json:"current_followers"`
	DailyChange      int64   `json:"daily_change"`
	TotalChange      int64   `json:"total_change"`
	GrowthRate       float64 `json:"growth_rate"`
	SnapshotCount    int     `json:"snapshot_count"`
}

type HistoryPoint struct {
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	MediaCount     int64     `json:"media_count"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// DailyUpdateSummary reports the batch outcome; one user failing never
// aborts the rest.
type DailyUpdateSummary struct {
	Total       int      `json:"total"`
	Updated     int      `json:"updated"`
	Errors      int      `json:"errors"`
	FailedUsers []string `json:"failed_users,omitempty"`
}
