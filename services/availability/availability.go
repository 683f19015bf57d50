// File: services/availability/availability.go
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotify/config"
	blockRepoPkg "slotify/database/repository/block"
	bookingRepoPkg "slotify/database/repository/booking"
	businessRepoPkg "slotify/database/repository/business"
	serviceRepoPkg "slotify/database/repository/service"
	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// DefaultServiceDurationMinutes applies when the query names no service or the
// named service does not exist.
const DefaultServiceDurationMinutes = 60

// Service computes bookable slots. It performs no writes: calling it twice
// with identical inputs and unchanged data returns identical output, and
// concurrent callers need no coordination.
type Service interface {
	GetAvailability(ctx context.Context, businessID, date, professionalID, serviceID string) ([]models.Slot, error)
}

// DefaultService is the production implementation, reading through the
// injected repositories.
type DefaultService struct {
	BusinessRepo businessRepoPkg.BusinessRepository
	ServiceRepo  serviceRepoPkg.ServiceRepository
	BookingRepo  bookingRepoPkg.BookingRepository
	BlockRepo    blockRepoPkg.BlockRepository
}

// GetAvailability returns the ordered candidate slots for one business and
// date, each flagged available or not. The date is a "YYYY-MM-DD" civil date
// interpreted in the business's timezone.
func (s *DefaultService) GetAvailability(ctx context.Context, businessID, date, professionalID, serviceID string) ([]models.Slot, error) {
	logger := utils.GetLogger()

	business, err := s.BusinessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepoPkg.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to load business %s: %w", businessID, err)
	}

	loc := businessLocation(business)
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dayStart := day
	dayEnd := dayStart.AddDate(0, 0, 1)

	durationMin, bufferMin := s.resolveServiceTiming(ctx, business, serviceID)

	blocks, err := s.BlockRepo.ListInRange(ctx, businessID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocks for business %s: %w", businessID, err)
	}

	window := ResolveDayWindow(day, business.WorkingHours, business.Holidays, blocks)
	slots := GenerateSlots(window, durationMin, bufferMin)
	if len(slots) == 0 {
		return slots, nil
	}

	bookings, err := s.BookingRepo.ListActiveInRange(ctx, businessID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for business %s: %w", businessID, err)
	}

	slots = MarkConflicts(slots, bookings, blocks, professionalID)

	logger.Debug("computed availability",
		zap.String("businessId", businessID),
		zap.String("date", date),
		zap.String("professionalId", professionalID),
		zap.Int("slots", len(slots)))

	return slots, nil
}

// resolveServiceTiming picks the slot duration and buffer for the query. An
// unknown or omitted service falls back to the 60-minute default and the
// business's own buffer setting.
func (s *DefaultService) resolveServiceTiming(ctx context.Context, business *models.Business, serviceID string) (int, int) {
	durationMin := DefaultServiceDurationMinutes
	bufferMin := business.Settings.SlotBufferMinutes

	if serviceID == "" {
		return durationMin, bufferMin
	}

	svc, err := s.ServiceRepo.GetByID(ctx, business.ID, serviceID)
	if err != nil {
		if !errors.Is(err, serviceRepoPkg.ErrServiceNotFound) {
			utils.GetLogger().Warn("service lookup failed, using default duration",
				zap.String("serviceId", serviceID), zap.Error(err))
		}
		return durationMin, bufferMin
	}

	if svc.DurationMinutes > 0 {
		durationMin = svc.DurationMinutes
	}
	if svc.BufferMinutes > 0 {
		bufferMin = svc.BufferMinutes
	}
	return durationMin, bufferMin
}

func businessLocation(b *models.Business) *time.Location {
	if loc := b.Location(); loc != nil {
		return loc
	}
	if name := config.AppConfig.DefaultTimezone; name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}
