package notification

import (
	"context"
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBusinessRepo struct {
	business *models.Business
	err      error
}

func (r *stubBusinessRepo) Create(ctx context.Context, b *models.Business) error { return nil }
func (r *stubBusinessRepo) Update(ctx context.Context, b *models.Business) error { return nil }
func (r *stubBusinessRepo) Delete(ctx context.Context, id string) error          { return nil }
func (r *stubBusinessRepo) ListIDs(ctx context.Context) ([]string, error)        { return nil, nil }
func (r *stubBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	return r.business, r.err
}

type recordingWhatsApp struct {
	to   string
	body string
	err  error
}

func (w *recordingWhatsApp) Send(ctx context.Context, settings models.WhatsAppSettings, to, body string) error {
	w.to, w.body = to, body
	return w.err
}

type recordingEmail struct {
	to      string
	subject string
	body    string
	err     error
}

func (e *recordingEmail) Send(ctx context.Context, settings models.EmailSettings, to, subject, body string) error {
	e.to, e.subject, e.body = to, subject, body
	return e.err
}

func reminderPayload(bucket string) models.ReminderPayload {
	return models.ReminderPayload{
		BookingID:     "bk-1",
		BusinessID:    "biz-1",
		Bucket:        bucket,
		CustomerName:  "Ada",
		CustomerPhone: "+15550100",
		CustomerEmail: "ada@example.com",
		ScheduledAt:   time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC),
	}
}

func TestComposeReminder_BucketPhrasing(t *testing.T) {
	business := &models.Business{Name: "Shear Genius"}

	cases := map[string]string{
		"48h": "in 2 days",
		"24h": "tomorrow",
		"3h":  "in 3 hours",
	}
	for bucket, phrase := range cases {
		subject, body := composeReminder(reminderPayload(bucket), business)
		assert.Contains(t, subject, "Shear Genius")
		assert.Contains(t, body, phrase, "bucket %s", bucket)
		assert.Contains(t, body, "Ada")
	}
}

func TestComposeReminder_BusinessTimezone(t *testing.T) {
	business := &models.Business{Name: "Shear Genius", Timezone: "Europe/Berlin"}

	// 14:00 UTC on 2026-03-04 is 15:00 in Berlin (CET).
	_, body := composeReminder(reminderPayload("24h"), business)
	assert.Contains(t, body, "15:00")
}

func TestSendReminder_RoutesToWhatsApp(t *testing.T) {
	wa := &recordingWhatsApp{}
	email := &recordingEmail{}
	svc, err := NewDefaultService(&stubBusinessRepo{business: &models.Business{
		ID:   "biz-1",
		Name: "Shear Genius",
		Settings: models.BusinessSettings{
			WhatsApp: models.WhatsAppSettings{Enabled: true, PhoneID: "pn-1"},
			Email:    models.EmailSettings{Enabled: true},
		},
	}}, wa, email, nil)
	require.NoError(t, err)

	require.NoError(t, svc.SendReminder(context.Background(), reminderPayload("3h")))
	assert.Equal(t, "+15550100", wa.to)
	assert.Empty(t, email.to, "email must not fire when whatsapp handled the reminder")
}

func TestSendReminder_FallsBackToEmail(t *testing.T) {
	wa := &recordingWhatsApp{}
	email := &recordingEmail{}
	svc, err := NewDefaultService(&stubBusinessRepo{business: &models.Business{
		ID:   "biz-1",
		Name: "Shear Genius",
		Settings: models.BusinessSettings{
			Email: models.EmailSettings{Enabled: true},
		},
	}}, wa, email, nil)
	require.NoError(t, err)

	require.NoError(t, svc.SendReminder(context.Background(), reminderPayload("24h")))
	assert.Equal(t, "ada@example.com", email.to)
	assert.Empty(t, wa.to)
}

func TestSendReminder_NoChannelConfigured(t *testing.T) {
	svc, err := NewDefaultService(&stubBusinessRepo{business: &models.Business{ID: "biz-1"}},
		&recordingWhatsApp{}, &recordingEmail{}, nil)
	require.NoError(t, err)

	err = svc.SendReminder(context.Background(), reminderPayload("24h"))
	assert.Error(t, err)
}

func TestNewDefaultService_RequiresBusinessRepo(t *testing.T) {
	_, err := NewDefaultService(nil, nil, nil, nil)
	assert.Error(t, err)
}
