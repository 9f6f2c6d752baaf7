package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

func (j *Queue) HandleDurationBackfillTask(ctx context.Context, task *asynq.Task) error {
	var payload DurationBackfillPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	duration, err := j.cs.BackfillDuration(ctx, payload.ContentID)
	if err != nil {
		// best-effort side effect, swallowed after logging
		log.Printf("Failed to backfill duration for %s: %v", payload.ContentID, err)
		return nil
	}

	log.Printf("Backfilled duration for %s: %s", payload.ContentID, duration)
	return nil
}
