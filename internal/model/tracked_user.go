package model

import "time"

// TrackedUser is the current-state row for a monitored Instagram handle.
// Rows are never hard-deleted, only flipped inactive.
type TrackedUser struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_tracked_username" json:"username"`
	InstagramID    string    `gorm:"type:varchar(64)" json:"instagram_id"`
	FullName       string    `gorm:"type:varchar(255)" json:"full_name"`
	ProfilePicURL  string    `gorm:"type:text" json:"profile_pic_url"`
	IsVerified     bool      `gorm:"not null;default:false" json:"is_verified"`
	IsPrivate      bool      `gorm:"not null;default:false" json:"is_private"`
	Biography      string    `gorm:"type:text" json:"biography"`
	FollowerCount  int64     `gorm:"not null;default:0" json:"follower_count"`
	FollowingCount int64     `gorm:"not null;default:0" json:"following_count"`
	MediaCount     int64     `gorm:"not null;default:0" json:"media_count"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	LastUpdated    time.Time `gorm:"not null" json:"last_updated"`
	CreatedAt      time.Time `json:"created_at"`
}

func (TrackedUser) TableName() string {
	return "tracked_users"
}
