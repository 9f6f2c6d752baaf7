package models

import "time"

type Like struct {
	UserID    string    `db:"user_id" json:"user_id"`
	ContentID string    `db:"content_id" json:"content_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Follow is keyed by the creator's display name, not an id. Two creators
// sharing a display name would collide; the schema keeps this shape on
// purpose so its semantics stay compatible with the content rows, which
// also carry only the display name.
type Follow struct {
	FollowerID  string    `db:"follower_id" json:"follower_id"`
	CreatorName string    `db:"creator_name" json:"creator_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
