package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	ChannelContent = "media_page_content"
	ChannelLikes   = "media_page_likes"
)

// Event is one validated row-change notification. The raw notification
// payloads are loosely typed JSON; they are parsed and checked here, at the
// boundary, before anything applies them to typed state.
type Event interface {
	Channel() string
}

// ContentUpdated carries the reconciled like counter for a single content
// row.
type ContentUpdated struct {
	ID        string `json:"id"`
	LikeCount int    `json:"like_count"`
}

func (ContentUpdated) Channel() string { return ChannelContent }

// LikeChanged signals that some like relation changed; subscribers re-fetch
// their interaction sets rather than patching incrementally.
type LikeChanged struct {
	UserID    string `json:"user_id"`
	ContentID string `json:"content_id"`
}

func (LikeChanged) Channel() string { return ChannelLikes }

// ParseNotification validates a raw notification payload into its event
// type. Malformed payloads are rejected here so they never reach local
// state.
func ParseNotification(channel, payload string) (Event, error) {
	switch channel {
	case ChannelContent:
		var ev ContentUpdated
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return nil, fmt.Errorf("invalid content notification: %w", err)
		}
		if ev.ID == "" {
			return nil, errors.New("content notification has no id")
		}
		return ev, nil

	case ChannelLikes:
		var ev LikeChanged
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &ev); err != nil {
				return nil, fmt.Errorf("invalid like notification: %w", err)
			}
		}
		return ev, nil
	}

	return nil, fmt.Errorf("unknown notification channel %q", channel)
}
