package model

import "time"

// EngagementProfile holds the latest full analysis for a username and
// doubles as the cache gate via CacheExpiresAt.
type EngagementProfile struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_engagement_username" json:"username"`
	FollowerCount  int64     `gorm:"not null;default:0" json:"follower_count"`
	AvgLikes       float64   `gorm:"not null;default:0" json:"avg_likes"`
	AvgComments    float64   `gorm:"not null;default:0" json:"avg_comments"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	LastAnalyzedAt time.Time `gorm:"not null" json:"last_analyzed_at"`
	CacheExpiresAt time.Time `gorm:"not null;index:idx_engagement_expiry" json:"cache_expires_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (EngagementProfile) TableName() string {
	return "engagement_profiles"
}
