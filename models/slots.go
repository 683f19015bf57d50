package models

import "time"

// Slot is a candidate bookable interval for one query. Slots are never
// persisted; they are recomputed on every availability request.
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// DayWindow is the resolved open interval for one calendar date, after
// working hours, holidays and full-day closures have been applied.
type DayWindow struct {
	Open   time.Time `json:"open"`
	Close  time.Time `json:"close"`
	Closed bool      `json:"closed"`
}
