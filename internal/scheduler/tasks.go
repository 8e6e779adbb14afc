// Package scheduler runs batch underwriting work through an asynq queue
// backed by Redis. The API enqueues, a separate worker process consumes.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskRescoreApplication = "underwriting:rescore"

type RescorePayload struct {
	ApplicationID int64 `json:"applicationId"`
}

func NewRescoreTask(payload RescorePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRescoreApplication, data), nil
}

func ParseRescorePayload(task *asynq.Task) (RescorePayload, error) {
	var payload RescorePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return RescorePayload{}, err
	}
	return payload, nil
}
