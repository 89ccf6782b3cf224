package model

import "time"

// IndividualPost is a child row of an EngagementProfile, one per
// analyzed post. The set is replaced wholesale on every re-analysis.
type IndividualPost struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ProfileID      uint64    `gorm:"not null;index:idx_post_profile" json:"profile_id"`
	PostID         string    `gorm:"type:varchar(64);not null" json:"post_id"`
	PostURL        string    `gorm:"type:text" json:"post_url"`
	ImageURL       string    `gorm:"type:text" json:"image_url"`
	Caption        string    `gorm:"type:text" json:"caption"`
	MediaType      string    `gorm:"type:varchar(32)" json:"media_type"`
	LikeCount      int64     `gorm:"not null;default:0" json:"like_count"`
	CommentCount   int64     `gorm:"not null;default:0" json:"comment_count"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	PostedAt       time.Time `json:"posted_at"`

	Profile EngagementProfile `gorm:"foreignKey:ProfileID;references:ID" json:"-"`
}

func (IndividualPost) TableName() string {
	return "individual_posts"
}
