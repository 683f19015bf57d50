// File: database/repository/booking/reminders.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"slotify/models"
)

// MarkReminderSent performs the conditional reminder-ledger write. The filter
// requires the bucket key to be absent, so two overlapping scan passes cannot
// both claim the same (booking, bucket): the second writer matches zero
// documents and gets ok = false.
func (r *mongoBookingRepo) MarkReminderSent(ctx context.Context, bookingID, bucket string, sentAt time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	field := "reminders." + bucket
	filter := bson.M{
		"id":     bookingID,
		"status": bson.M{"$in": []string{models.BookingPending, models.BookingConfirmed}},
		field:    bson.M{"$exists": false},
	}
	update := bson.M{
		"$set": bson.M{field: sentAt},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder %s for booking %s: %w", bucket, bookingID, err)
	}
	return res.MatchedCount > 0, nil
}
