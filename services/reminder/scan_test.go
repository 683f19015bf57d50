package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	bookingRepoPkg "slotify/database/repository/booking"
	"slotify/models"
	"slotify/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func (f *fakeEnqueuer) byType(taskType string) []*asynq.Task {
	var out []*asynq.Task
	for _, t := range f.tasks {
		if t.Type() == taskType {
			out = append(out, t)
		}
	}
	return out
}

type scanBusinessRepo struct {
	ids []string
	err error
}

func (r *scanBusinessRepo) Create(ctx context.Context, b *models.Business) error { return nil }
func (r *scanBusinessRepo) Update(ctx context.Context, b *models.Business) error { return nil }
func (r *scanBusinessRepo) Delete(ctx context.Context, id string) error          { return nil }
func (r *scanBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	return nil, nil
}
func (r *scanBusinessRepo) ListIDs(ctx context.Context) ([]string, error) { return r.ids, r.err }

type markCall struct {
	bookingID string
	bucket    string
}

type scanBookingRepo struct {
	bookings []models.Booking
	listErr  error
	claimed  bool
	markErr  error
	marks    []markCall
}

func (r *scanBookingRepo) Create(ctx context.Context, b *models.Booking) error { return nil }
func (r *scanBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, bookingRepoPkg.ErrBookingNotFound
}
func (r *scanBookingRepo) ListActiveInRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Booking, error) {
	return r.bookings, r.listErr
}
func (r *scanBookingRepo) MarkReminderSent(ctx context.Context, bookingID, bucket string, sentAt time.Time) (bool, error) {
	if r.markErr != nil {
		return false, r.markErr
	}
	r.marks = append(r.marks, markCall{bookingID: bookingID, bucket: bucket})
	return r.claimed, nil
}

func scanBooking(id string, until time.Duration) models.Booking {
	return models.Booking{
		ID:              id,
		BusinessID:      "biz-1",
		ServiceID:       "svc-1",
		CustomerName:    "Ada",
		CustomerPhone:   "+15550100",
		ScheduledAt:     scanTime.Add(until),
		DurationMinutes: 60,
		Status:          models.BookingConfirmed,
	}
}

func TestScanBusiness_DispatchesAndMarksDueBooking(t *testing.T) {
	queue := &fakeEnqueuer{}
	bookings := &scanBookingRepo{
		bookings: []models.Booking{scanBooking("bk-1", 47*time.Hour+40*time.Minute)},
		claimed:  true,
	}
	svc := &DefaultScanService{BookingRepo: bookings, Queue: queue}

	err := svc.ScanBusiness(context.Background(), "biz-1", "run-1", scanTime)

	require.NoError(t, err)
	sent := queue.byType(tasks.TypeReminderSend)
	require.Len(t, sent, 1)

	var payload models.ReminderPayload
	require.NoError(t, json.Unmarshal(sent[0].Payload(), &payload))
	assert.Equal(t, "bk-1", payload.BookingID)
	assert.Equal(t, "48h", payload.Bucket)
	assert.Equal(t, "Ada", payload.CustomerName)

	require.Len(t, bookings.marks, 1)
	assert.Equal(t, markCall{bookingID: "bk-1", bucket: "48h"}, bookings.marks[0])
}

func TestScanBusiness_SentBucketNotDispatchedAgain(t *testing.T) {
	queue := &fakeEnqueuer{}
	done := scanBooking("bk-1", 47*time.Hour+10*time.Minute)
	done.Reminders = map[string]time.Time{"48h": scanTime.Add(-time.Hour)}
	bookings := &scanBookingRepo{bookings: []models.Booking{done}, claimed: true}
	svc := &DefaultScanService{BookingRepo: bookings, Queue: queue}

	err := svc.ScanBusiness(context.Background(), "biz-1", "run-1", scanTime)

	require.NoError(t, err)
	assert.Empty(t, queue.tasks)
	assert.Empty(t, bookings.marks)
}

func TestScanBusiness_SkipsTerminalBookings(t *testing.T) {
	queue := &fakeEnqueuer{}
	cancelled := scanBooking("bk-1", 24*time.Hour)
	cancelled.Status = models.BookingCancelled
	bookings := &scanBookingRepo{bookings: []models.Booking{cancelled}, claimed: true}
	svc := &DefaultScanService{BookingRepo: bookings, Queue: queue}

	err := svc.ScanBusiness(context.Background(), "biz-1", "run-1", scanTime)

	require.NoError(t, err)
	assert.Empty(t, queue.tasks)
}

func TestScanBusiness_EnqueueFailureLeavesBucketUnmarked(t *testing.T) {
	queue := &fakeEnqueuer{err: errors.New("redis down")}
	bookings := &scanBookingRepo{
		bookings: []models.Booking{scanBooking("bk-1", 24*time.Hour)},
		claimed:  true,
	}
	svc := &DefaultScanService{BookingRepo: bookings, Queue: queue}

	err := svc.ScanBusiness(context.Background(), "biz-1", "run-1", scanTime)

	require.NoError(t, err)
	assert.Empty(t, bookings.marks, "the ledger is written only after dispatch is initiated")
}

func TestScanBusiness_OutOfBandBookingsIgnored(t *testing.T) {
	queue := &fakeEnqueuer{}
	bookings := &scanBookingRepo{
		bookings: []models.Booking{
			scanBooking("bk-mid", 30*time.Hour),
			scanBooking("bk-soon", 90*time.Minute),
		},
		claimed: true,
	}
	svc := &DefaultScanService{BookingRepo: bookings, Queue: queue}

	err := svc.ScanBusiness(context.Background(), "biz-1", "run-1", scanTime)

	require.NoError(t, err)
	assert.Empty(t, queue.tasks)
}

func TestScanBusiness_ListErrorPropagates(t *testing.T) {
	listErr := errors.New("mongo timeout")
	svc := &DefaultScanService{
		BookingRepo: &scanBookingRepo{listErr: listErr},
		Queue:       &fakeEnqueuer{},
	}

	err := svc.ScanBusiness(context.Background(), "biz-1", "run-1", scanTime)
	assert.ErrorIs(t, err, listErr)
}

func TestEnqueueBusinessScans_OneTaskPerBusiness(t *testing.T) {
	queue := &fakeEnqueuer{}
	svc := &DefaultScanService{
		BusinessRepo: &scanBusinessRepo{ids: []string{"biz-1", "biz-2", "biz-3"}},
		BookingRepo:  &scanBookingRepo{},
		Queue:        queue,
	}

	count, err := svc.EnqueueBusinessScans(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)

	scans := queue.byType(tasks.TypeReminderScanBusiness)
	require.Len(t, scans, 3)

	var payload models.ScanPayload
	require.NoError(t, json.Unmarshal(scans[0].Payload(), &payload))
	assert.Equal(t, "biz-1", payload.BusinessID)
	assert.NotEmpty(t, payload.RunID)

	var second models.ScanPayload
	require.NoError(t, json.Unmarshal(scans[1].Payload(), &second))
	assert.Equal(t, payload.RunID, second.RunID, "all tasks of one pass share a run id")
}

func TestEnqueueBusinessScans_ListErrorPropagates(t *testing.T) {
	listErr := errors.New("mongo timeout")
	svc := &DefaultScanService{
		BusinessRepo: &scanBusinessRepo{err: listErr},
		Queue:        &fakeEnqueuer{},
	}

	count, err := svc.EnqueueBusinessScans(context.Background())
	assert.ErrorIs(t, err, listErr)
	assert.Zero(t, count)
}
