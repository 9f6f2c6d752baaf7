package queue

import (
	"github.com/celebrateug/media-api/internal/service"
)

type Queue struct {
	cs service.ContentService
}

func NewQueue(cs service.ContentService) *Queue {
	return &Queue{
		cs: cs,
	}
}

const TaskTypeDurationBackfill = "duration:backfill"

type DurationBackfillPayload struct {
	ContentID string `json:"content_id"`
}
