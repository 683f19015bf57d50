package reminder

import "time"

// Bucket is one of the three fixed reminder lead-time windows.
type Bucket string

const (
	Bucket48h Bucket = "48h"
	Bucket24h Bucket = "24h"
	Bucket3h  Bucket = "3h"
)

// Tolerance is the width of each classification band. The scan runs hourly,
// so the band must be wide enough that some run always lands inside it, yet
// narrow enough that one run never sees the same booking in the band twice.
const Tolerance = 30 * time.Minute

// evaluation order: nearest lead time first.
var buckets = []Bucket{Bucket3h, Bucket24h, Bucket48h}

// Lead returns the bucket's nominal lead time before the appointment.
func (b Bucket) Lead() time.Duration {
	switch b {
	case Bucket48h:
		return 48 * time.Hour
	case Bucket24h:
		return 24 * time.Hour
	case Bucket3h:
		return 3 * time.Hour
	}
	return 0
}

func (b Bucket) String() string { return string(b) }
