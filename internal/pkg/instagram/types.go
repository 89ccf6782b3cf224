package instagram

import "time"

// Profile is the provider-independent view of an Instagram account.
type Profile struct {
	ID             string
	Username       string
	FullName       string
	ProfilePicURL  string
	IsVerified     bool
	IsPrivate      bool
	Biography      string
	FollowerCount  int64
	FollowingCount int64
	MediaCount     int64
}

// Post carries the per-post counts already embedded by the provider.
type Post struct {
	ID           string
	Code         string
	Caption      string
	ThumbnailURL string
	MediaType    string
	LikeCount    int64
	CommentCount int64
	TakenAt      time.Time
}

// URL returns the canonical post permalink.
func (p Post) URL() string {
	return "https://www.instagram.com/p/" + p.Code + "/"
}

// Wire envelopes. The provider serves exactly one schema per endpoint;
// a missing data field fails the call instead of probing alternatives.

type infoEnvelope struct {
	Data *rawProfile `json:"data"`
}

type rawProfile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	ProfilePicURL  string `json:"profile_pic_url"`
	IsVerified     bool   `json:"is_verified"`
	IsPrivate      bool   `json:"is_private"`
	Biography      string `json:"biography"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
	MediaCount     int64  `json:"media_count"`
}

type postsEnvelope struct {
	Data *struct {
		Items []rawPost `json:"items"`
	} `json:"data"`
}

type rawPost struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Caption *struct {
		Text string `json:"text"`
	} `json:"caption"`
	ThumbnailURL string `json:"thumbnail_url"`
	MediaName    string `json:"media_name"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	TakenAt      int64  `json:"taken_at"`
}

func (r rawPost) toPost() Post {
	p := Post{
		ID:           r.ID,
		Code:         r.Code,
		ThumbnailURL: r.ThumbnailURL,
		MediaType:    r.MediaName,
		LikeCount:    r.LikeCount,
		CommentCount: r.CommentCount,
	}
	if r.Caption != nil {
		p.Caption = r.Caption.Text
	}
	if r.TakenAt > 0 {
		p.TakenAt = time.Unix(r.TakenAt, 0).UTC()
	}
	return p
}
