package mediaview

import (
	"strings"

	"github.com/celebrateug/media-api/internal/models"
)

const (
	TabStream    = "stream"
	TabListen    = "listen"
	TabBlog      = "blog"
	TabGallery   = "gallery"
	TabResources = "resources"
)

const CategoryAll = "all"

var Tabs = []string{TabStream, TabListen, TabBlog, TabGallery, TabResources}

// Categories lists the selectable category filters per tab, "all" first.
var Categories = map[string][]string{
	TabStream:    {CategoryAll, "movie", "music-video", "documentaries", "lifesyle", "Go Live"},
	TabListen:    {CategoryAll, "greatest-of-all-time", "latest-release", "new-talent", "DJ-mixtapes", "UG-Unscripted", "Afrobeat", "hip-hop", "RnB", "Others"},
	TabBlog:      {CategoryAll, "interviews", "lifestyle", "product-reviews", "others"},
	TabGallery:   {CategoryAll, "design", "photography", "art", "others"},
	TabResources: {CategoryAll, "templates", "ebooks", "software", "presets"},
}

// TabForType maps a content type onto the tab it is shown under. Unmapped
// types belong to no tab and are excluded everywhere.
func TabForType(contentType string) (string, bool) {
	switch contentType {
	case models.ContentTypeMusicVideo, models.ContentTypeMovie:
		return TabStream, true
	case models.ContentTypeAudioMusic:
		return TabListen, true
	case models.ContentTypeBlog:
		return TabBlog, true
	case models.ContentTypeImage:
		return TabGallery, true
	case models.ContentTypeDocument:
		return TabResources, true
	}
	return "", false
}

// Filter is a pure function of its inputs: the same item list, tab,
// category, and query always produce the same result list, in input order.
func Filter(items []models.ContentItem, tab, category, query string) []models.ContentItem {
	q := strings.ToLower(query)

	var out []models.ContentItem
	for _, item := range items {
		itemTab, ok := TabForType(item.Type)
		if !ok || itemTab != tab {
			continue
		}

		if category != CategoryAll && item.Type != category && item.Category != category {
			continue
		}

		if q != "" &&
			!strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Creator), q) {
			continue
		}

		out = append(out, item)
	}

	return out
}
