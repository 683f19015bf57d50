package models

import "time"

// Booking statuses. Cancelled, completed and no-show bookings are terminal:
// they no longer block slots and never receive reminders.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

// Booking is one scheduled appointment. The Reminders map is the per-booking
// reminder ledger: bucket name ("48h"/"24h"/"3h") to the instant it was sent.
// The scan job only ever adds keys to Reminders; it never touches Status.
type Booking struct {
	ID              string               `bson:"id" json:"id"`
	BusinessID      string               `bson:"business_id" json:"businessId"`
	ProfessionalID  string               `bson:"professional_id,omitempty" json:"professionalId,omitempty"`
	ServiceID       string               `bson:"service_id" json:"serviceId"`
	CustomerName    string               `bson:"customer_name" json:"customerName"`
	CustomerPhone   string               `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	CustomerEmail   string               `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	ScheduledAt     time.Time            `bson:"scheduled_at" json:"scheduledAt"`
	DurationMinutes int                  `bson:"duration_minutes" json:"durationMinutes"`
	Status          string               `bson:"status" json:"status"`
	Reminders       map[string]time.Time `bson:"reminders,omitempty" json:"reminders,omitempty"`
	CreatedAt       time.Time            `bson:"created_at" json:"createdAt"`
}

// End returns the instant the appointment finishes.
func (b Booking) End() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsTerminal reports whether the booking can no longer change.
func (b Booking) IsTerminal() bool {
	switch b.Status {
	case BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

// IsActive reports whether the booking still occupies its slot and is
// eligible for reminders.
func (b Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// Overlaps reports whether the booking intersects [start, end). Half-open, so
// back-to-back bookings do not conflict.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.ScheduledAt.Before(end) && b.End().After(start)
}
