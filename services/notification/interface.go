package notification

import (
	"context"
	"fmt"

	businessRepoPkg "slotify/database/repository/business"
	"slotify/models"
	"slotify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service defines methods for delivering booking reminders through the
// business's configured messaging channel.
type Service interface {
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultService is the production implementation. It resolves the channel
// from the business's settings: WhatsApp when enabled and the customer left a
// phone number, otherwise email.
type DefaultService struct {
	BusinessRepo businessRepoPkg.BusinessRepository
	WhatsApp     WhatsAppSender
	Email        EmailSender
	Guard        *redis.Client // optional dispatch dedup, keyed on (bookingId, bucket)
}

func NewDefaultService(businessRepo businessRepoPkg.BusinessRepository, wa WhatsAppSender, email EmailSender, guard *redis.Client) (*DefaultService, error) {
	if businessRepo == nil {
		return nil, fmt.Errorf("notification service initialization error: business repository is nil")
	}
	return &DefaultService{
		BusinessRepo: businessRepo,
		WhatsApp:     wa,
		Email:        email,
		Guard:        guard,
	}, nil
}

// SendReminder delivers one reminder. A redis SETNX guard keyed on
// (bookingId, bucket) swallows duplicate dispatches from overlapping scan
// passes; guard errors are ignored because the conditional ledger write is
// the primary at-most-once mechanism.
func (s *DefaultService) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	logger := utils.GetLogger()

	if s.Guard != nil {
		key := utils.ReminderGuardPrefix + payload.BookingID + ":" + payload.Bucket
		set, err := s.Guard.SetNX(ctx, key, 1, utils.ReminderGuardTTL).Result()
		if err != nil {
			logger.Warn("reminder dispatch guard unavailable",
				zap.String("bookingId", payload.BookingID), zap.Error(err))
		} else if !set {
			logger.Debug("duplicate reminder dispatch suppressed",
				zap.String("bookingId", payload.BookingID), zap.String("bucket", payload.Bucket))
			return nil
		}
	}

	business, err := s.BusinessRepo.GetByID(ctx, payload.BusinessID)
	if err != nil {
		return fmt.Errorf("SendReminder: could not load business %s: %w", payload.BusinessID, err)
	}

	subject, body := composeReminder(payload, business)

	settings := business.Settings
	switch {
	case settings.WhatsApp.Enabled && payload.CustomerPhone != "" && s.WhatsApp != nil:
		return s.WhatsApp.Send(ctx, settings.WhatsApp, payload.CustomerPhone, body)
	case settings.Email.Enabled && payload.CustomerEmail != "" && s.Email != nil:
		return s.Email.Send(ctx, settings.Email, payload.CustomerEmail, subject, body)
	}
	return fmt.Errorf("SendReminder: no reminder channel configured for business %s", payload.BusinessID)
}
