// File: services/reminder/scan.go
package reminder

import (
	"context"
	"time"

	bookingRepoPkg "slotify/database/repository/booking"
	businessRepoPkg "slotify/database/repository/business"
	"slotify/models"
	"slotify/services/tasks"
	"slotify/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer is the slice of asynq.Client the scan needs. Narrowed to an
// interface so the scan can be unit-tested against a fake queue.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ScanService drives one reminder pass: fan out over businesses, classify
// each upcoming booking, initiate dispatch and record the ledger entry.
type ScanService interface {
	EnqueueBusinessScans(ctx context.Context) (int, error)
	ScanBusiness(ctx context.Context, businessID, runID string, now time.Time) error
}

// DefaultScanService is the production implementation.
type DefaultScanService struct {
	BusinessRepo businessRepoPkg.BusinessRepository
	BookingRepo  bookingRepoPkg.BookingRepository
	Queue        TaskEnqueuer
}

// EnqueueBusinessScans lists every business and enqueues one scan task per
// business. Each task is processed independently by the worker pool, so one
// slow or failing tenant never stalls the others. Returns how many scans were
// enqueued.
func (s *DefaultScanService) EnqueueBusinessScans(ctx context.Context) (int, error) {
	logger := utils.GetLogger()
	runID := uuid.New().String()

	ids, err := s.BusinessRepo.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	enqueued := 0
	for _, businessID := range ids {
		task, err := tasks.NewBusinessScanTask(models.ScanPayload{BusinessID: businessID, RunID: runID})
		if err != nil {
			logger.Error("failed to build business scan task",
				zap.String("runId", runID), zap.String("businessId", businessID), zap.Error(err))
			continue
		}
		if _, err := s.Queue.Enqueue(task); err != nil {
			logger.Error("failed to enqueue business scan",
				zap.String("runId", runID), zap.String("businessId", businessID), zap.Error(err))
			continue
		}
		enqueued++
	}

	logger.Info("reminder scan pass enqueued",
		zap.String("runId", runID), zap.Int("businesses", enqueued), zap.Int("total", len(ids)))
	return enqueued, nil
}

// ScanBusiness classifies every active booking of one business scheduled in
// the next 48 hours. For each due (booking, bucket) it enqueues the dispatch
// task and then conditionally records reminders[bucket] = now. The record is
// written only after dispatch was successfully initiated; an enqueue failure
// is logged and the booking is retried naturally on the next pass while its
// band is still open.
func (s *DefaultScanService) ScanBusiness(ctx context.Context, businessID, runID string, now time.Time) error {
	logger := utils.GetLogger().With(zap.String("runId", runID), zap.String("businessId", businessID))

	bookings, err := s.BookingRepo.ListActiveInRange(ctx, businessID, now, now.Add(48*time.Hour))
	if err != nil {
		return err
	}

	dispatched := 0
	for _, booking := range bookings {
		if booking.IsTerminal() {
			continue
		}
		bucket, ok := Classify(now, booking.ScheduledAt, booking.Reminders)
		if !ok {
			continue
		}

		payload := models.ReminderPayload{
			BookingID:     booking.ID,
			BusinessID:    booking.BusinessID,
			Bucket:        bucket.String(),
			CustomerName:  booking.CustomerName,
			CustomerPhone: booking.CustomerPhone,
			CustomerEmail: booking.CustomerEmail,
			ServiceID:     booking.ServiceID,
			ScheduledAt:   booking.ScheduledAt,
		}

		task, err := tasks.NewReminderTask(payload)
		if err != nil {
			logger.Error("failed to build reminder task",
				zap.String("bookingId", booking.ID), zap.String("bucket", bucket.String()), zap.Error(err))
			continue
		}
		// No retries on dispatch: a provider failure is logged and dropped
		// once the band closes, matching the band-bounded retry policy.
		if _, err := s.Queue.Enqueue(task, asynq.MaxRetry(0)); err != nil {
			// Dispatch was not initiated, so the bucket stays unmarked and the
			// next hourly pass retries while the band is open.
			logger.Error("failed to enqueue reminder dispatch",
				zap.String("bookingId", booking.ID), zap.String("bucket", bucket.String()), zap.Error(err))
			continue
		}

		claimed, err := s.BookingRepo.MarkReminderSent(ctx, booking.ID, bucket.String(), now)
		if err != nil {
			logger.Error("failed to record reminder ledger entry",
				zap.String("bookingId", booking.ID), zap.String("bucket", bucket.String()), zap.Error(err))
			continue
		}
		if !claimed {
			// An overlapping pass got there first; the dispatch guard in the
			// notification layer swallows the duplicate send.
			logger.Debug("reminder bucket already claimed",
				zap.String("bookingId", booking.ID), zap.String("bucket", bucket.String()))
			continue
		}
		dispatched++
	}

	if dispatched > 0 {
		logger.Info("reminders dispatched", zap.Int("count", dispatched), zap.Int("scanned", len(bookings)))
	}
	return nil
}
