// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"slotify/database"
	"slotify/models"
	"slotify/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookingRepository defines methods to interact with booking records.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListActiveInRange returns pending/confirmed bookings for one business
	// whose scheduled instant falls in [from, to).
	ListActiveInRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Booking, error)
	// MarkReminderSent records reminders[bucket] = sentAt, but only if the
	// bucket key is still absent and the booking is still active. Returns
	// false when another pass already claimed the bucket.
	MarkReminderSent(ctx context.Context, bookingID, bucket string, sentAt time.Time) (bool, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure booking indexes", zap.Error(err))
	}
	return repo
}
