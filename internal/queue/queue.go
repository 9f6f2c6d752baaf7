package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// EnqueueDurationBackfill schedules a single fire-and-forget backfill.
// MaxRetry(0) keeps it best-effort: a failed probe is logged by the worker
// and never retried.
func EnqueueDurationBackfill(asynqClient *asynq.Client, payload DurationBackfillPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeDurationBackfill, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.MaxRetry(0))
	if err != nil {
		return err
	}

	log.Printf("Task scheduled: %+v", payload)
	return nil
}
