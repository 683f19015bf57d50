package models

import "time"

// Block types. Closures that cover the whole day shut the business down for
// that date; breaks and unavailable windows only mark overlapping slots as taken.
const (
	BlockClosure     = "closure"
	BlockBreak       = "break"
	BlockUnavailable = "unavailable"
)

// Block is an ad-hoc interval of unavailability not derived from the weekly
// schedule. A block without a professional ID applies business-wide.
type Block struct {
	ID             string    `bson:"id" json:"id"`
	BusinessID     string    `bson:"business_id" json:"businessId"`
	ProfessionalID string    `bson:"professional_id,omitempty" json:"professionalId,omitempty"`
	Start          time.Time `bson:"start" json:"start"`
	End            time.Time `bson:"end" json:"end"`
	Type           string    `bson:"type" json:"type"` // closure | break | unavailable
	Reason         string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Overlaps reports whether the block intersects [start, end). Touching
// boundaries do not count as overlap.
func (b Block) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// CoversDay reports whether the block spans the entire civil day
// [dayStart, dayEnd).
func (b Block) CoversDay(dayStart, dayEnd time.Time) bool {
	return !b.Start.After(dayStart) && !b.End.Before(dayEnd)
}
