package models

import "time"

type ContentItem struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Title        string    `db:"title" json:"title"`
	Creator      string    `db:"creator" json:"creator"`
	Description  string    `db:"description" json:"description,omitempty"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnail_url"`
	ContentURL   string    `db:"content_url" json:"content_url"`
	LikeCount    int       `db:"like_count" json:"like_count"`
	ViewsCount   *int      `db:"views_count" json:"views_count,omitempty"`
	Duration     string    `db:"duration" json:"duration,omitempty"`
	ReadTime     string    `db:"read_time" json:"read_time,omitempty"`
	Category     string    `db:"category" json:"category,omitempty"`
	IsPremium    bool      `db:"is_premium" json:"is_premium"`
	Type         string    `db:"type" json:"type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

const (
	ContentTypeMovie      = "movie"
	ContentTypeMusicVideo = "music-video"
	ContentTypeAudioMusic = "audio-music"
	ContentTypeBlog       = "blog"
	ContentTypeImage      = "image"
	ContentTypeDocument   = "document"
)

// IsVideoLike reports whether the item plays through the video pipeline
// and therefore carries a playback duration.
func (c *ContentItem) IsVideoLike() bool {
	switch c.Type {
	case ContentTypeMovie, ContentTypeMusicVideo, ContentTypeAudioMusic:
		return true
	}
	return false
}
