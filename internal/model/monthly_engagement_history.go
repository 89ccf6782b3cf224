package model

import "time"

// MonthlyEngagementHistory is a monthly snapshot of the aggregate
// engagement metrics, unique per (profile, month, year).
type MonthlyEngagementHistory struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ProfileID      uint64    `gorm:"not null;uniqueIndex:idx_monthly_profile_month,priority:1" json:"profile_id"`
	Month          int       `gorm:"not null;uniqueIndex:idx_monthly_profile_month,priority:2" json:"month"`
	Year           int       `gorm:"not null;uniqueIndex:idx_monthly_profile_month,priority:3" json:"year"`
	FollowerCount  int64     `gorm:"not null;default:0" json:"follower_count"`
	AvgLikes       float64   `gorm:"not null;default:0" json:"avg_likes"`
	AvgComments    float64   `gorm:"not null;default:0" json:"avg_comments"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	RecordedAt     time.Time `gorm:"not null" json:"recorded_at"`

	Profile EngagementProfile `gorm:"foreignKey:ProfileID;references:ID" json:"-"`
}

func (MonthlyEngagementHistory) TableName() string {
	return "monthly_engagement_history"
}
