package models

import "time"

// ReminderPayload is the task payload carried through the reminder queue,
// from scan to dispatch.
type ReminderPayload struct {
	BookingID     string    `json:"bookingId"`
	BusinessID    string    `json:"businessId"`
	Bucket        string    `json:"bucket"` // "48h" | "24h" | "3h"
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	ServiceID     string    `json:"serviceId"`
	ScheduledAt   time.Time `json:"scheduledAt"`
}

// ScanPayload names one business to scan for due reminders.
type ScanPayload struct {
	BusinessID string `json:"businessId"`
	RunID      string `json:"runId"` // correlates all log lines of one pass
}
