package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/phonecustody/internal/lib/email"
)

// TaskCustodyRecorded notifies an owner that they hold a phone.
const TaskCustodyRecorded = "email:custody_recorded"

// NewCustodyRecordedTask builds the task: three retries on the default
// queue, 30s per attempt.
func NewCustodyRecordedTask(n email.CustodyRecorded) (*asynq.Task, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskCustodyRecorded,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
