// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoBookingRepo) ListActiveInRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"status":      bson.M{"$in": []string{models.BookingPending, models.BookingConfirmed}},
		"scheduled_at": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for business %s: %w", businessID, err)
	}
	return bookings, nil
}
