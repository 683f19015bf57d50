package models

import "time"

// Service is one bookable offering (haircut, consultation, table sitting).
type Service struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"business_id" json:"businessId"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	BufferMinutes   int       `bson:"buffer_minutes,omitempty" json:"bufferMinutes,omitempty"` // padding after each slot before the next may start
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
