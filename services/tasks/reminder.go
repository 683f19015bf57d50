package tasks

import (
	"encoding/json"

	"slotify/models"

	"github.com/hibiken/asynq"
)

// Task types processed by the reminder worker.
const (
	TypeReminderScan         = "reminder:scan"
	TypeReminderScanBusiness = "reminder:scan_business"
	TypeReminderSend         = "reminder:send"
)

// NewScanTask builds the parameterless hourly scan task. The scheduler
// enqueues it on the configured cadence.
func NewScanTask() *asynq.Task {
	return asynq.NewTask(TypeReminderScan, nil)
}

// NewBusinessScanTask builds the per-business fan-out task of one scan pass.
func NewBusinessScanTask(payload models.ScanPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReminderScanBusiness, b), nil
}

// NewReminderTask builds the dispatch task for one (booking, bucket) reminder.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReminderSend, b), nil
}
