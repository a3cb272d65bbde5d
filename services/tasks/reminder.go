package tasks

import (
	"encoding/json"
	"time"

	"craftly/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler queues service-date reminders on redis. It satisfies
// the booking ledger's ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler(redisOpts asynq.RedisClientOpt) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts)}
}

func (s *AsynqReminderScheduler) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
