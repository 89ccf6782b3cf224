package model

import "time"

// FollowerHistory is an append-only snapshot taken on every refresh of
// a TrackedUser. Rows are immutable once written.
type FollowerHistory struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	TrackedUserID  uint64    `gorm:"not null;index:idx_history_user" json:"tracked_user_id"`
	FollowerCount  int64     `gorm:"not null;default:0" json:"follower_count"`
	FollowingCount int64     `gorm:"not null;default:0" json:"following_count"`
	MediaCount     int64     `gorm:"not null;default:0" json:"media_count"`
	RecordedAt     time.Time `gorm:"not null;index:idx_history_recorded" json:"recorded_at"`

	TrackedUser TrackedUser `gorm:"foreignKey:TrackedUserID;references:ID" json:"-"`
}

func (FollowerHistory) TableName() string {
	return "follower_history"
}
