package transfer

type ToggleLikeRequest struct {
	ContentID string `json:"content_id"`
	Liked     bool   `json:"liked"`
}

type ToggleFollowRequest struct {
	CreatorName string `json:"creator_name"`
	Following   bool   `json:"following"`
}

type Interactions struct {
	LikedContentIDs  []string `json:"liked_content_ids"`
	FollowedCreators []string `json:"followed_creators"`
}

type RemoveContentRequest struct {
	ContentID   string `json:"content_id"`
	Destination string `json:"destination"`
}

type ContentIDRequest struct {
	ContentID string `json:"content_id"`
}
