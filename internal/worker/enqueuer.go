package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// AsynqEnqueuer is responsible for enqueuing tasks to an Asynq queue with specific configurations for retries and timeouts.
type AsynqEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

// NewAsynqEnqueuer creates a new AsynqEnqueuer with the given client, retry limit, and task timeout duration.
func NewAsynqEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
	}
}

// EnqueueForecastImport enqueues a forecast:import task and returns its task ID.
func (e *AsynqEnqueuer) EnqueueForecastImport(ctx context.Context, payload ForecastImportPayload) (string, error) {
	return e.enqueue(ctx, TaskTypeImportForecast, payload)
}

// EnqueueSettlementImport enqueues a settlement:import task and returns its task ID.
func (e *AsynqEnqueuer) EnqueueSettlementImport(ctx context.Context, payload SettlementImportPayload) (string, error) {
	return e.enqueue(ctx, TaskTypeImportSettlements, payload)
}

func (e *AsynqEnqueuer) enqueue(ctx context.Context, taskType string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	task := asynq.NewTask(taskType, data,
		asynq.TaskID(uuid.NewString()),
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
	)

	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	return info.ID, nil
}

// RegisterWarmUp schedules the dayahead:warm task on cronspec.
func RegisterWarmUp(scheduler *asynq.Scheduler, cronspec string, maxRetry int, timeout time.Duration) (string, error) {
	task := asynq.NewTask(TaskTypeWarmDayAhead, nil,
		asynq.MaxRetry(maxRetry),
		asynq.Timeout(timeout),
	)
	entryID, err := scheduler.Register(cronspec, task)
	if err != nil {
		return "", fmt.Errorf("register %s on %q: %w", TaskTypeWarmDayAhead, cronspec, err)
	}
	return entryID, nil
}
