package reminder

import "time"

// Classify maps (now, scheduledAt) to the reminder bucket that is due, or
// reports none. Each bucket owns the half-open band (lead - Tolerance, lead]
// of time remaining until the appointment; the bands are disjoint, so at most
// one can match. A bucket whose key already appears in alreadySent is never
// returned, which is what makes the hourly scan idempotent.
func Classify(now, scheduledAt time.Time, alreadySent map[string]time.Time) (Bucket, bool) {
	until := scheduledAt.Sub(now)

	for _, b := range buckets {
		lead := b.Lead()
		if until > lead-Tolerance && until <= lead {
			if _, sent := alreadySent[string(b)]; sent {
				return "", false
			}
			return b, true
		}
	}
	return "", false
}
