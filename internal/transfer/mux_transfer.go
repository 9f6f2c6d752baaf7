package transfer

type MuxAssetRequest struct {
	Input          MuxInput `json:"input"`
	PlaybackPolicy []string `json:"playback_policy"`
}

type MuxInput struct {
	URL string `json:"url"`
}

type MuxAssetResponse struct {
	Data  MuxAsset  `json:"data"`
	Error *MuxError `json:"error,omitempty"`
}

type MuxAsset struct {
	ID          string           `json:"id"`
	Status      string           `json:"status"`
	Duration    float64          `json:"duration"`
	PlaybackIDs []MuxPlaybackID `json:"playback_ids"`
	Errors      *MuxAssetErrors `json:"errors,omitempty"`
}

type MuxPlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

type MuxAssetErrors struct {
	Type     string   `json:"type"`
	Messages []string `json:"messages"`
}

type MuxError struct {
	Type     string   `json:"type"`
	Messages []string `json:"messages"`
}
