package availability

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func booking(prof string, start time.Time, durationMin int, status string) models.Booking {
	return models.Booking{
		ID:              "bk-" + start.Format("1504"),
		ProfessionalID:  prof,
		ScheduledAt:     start,
		DurationMinutes: durationMin,
		Status:          status,
	}
}

func TestMarkConflicts_OverlappingBookingFlagsSlot(t *testing.T) {
	slots := GenerateSlots(openWindow(9, 18), 60, 0)
	bookings := []models.Booking{booking("", at(10, 0), 60, models.BookingConfirmed)}

	slots = MarkConflicts(slots, bookings, nil, "")

	require.Len(t, slots, 9)
	for _, s := range slots {
		if s.Start.Equal(at(10, 0)) {
			assert.False(t, s.Available, "10:00 slot must be taken")
		} else {
			assert.True(t, s.Available, "slot %s must be free", s.Start.Format("15:04"))
		}
	}
}

func TestMarkConflicts_BackToBackBookingsDoNotConflict(t *testing.T) {
	slots := []models.Slot{{Start: at(11, 0), End: at(12, 0), Available: true}}
	bookings := []models.Booking{
		booking("", at(10, 0), 60, models.BookingConfirmed), // ends exactly at 11:00
		booking("", at(12, 0), 60, models.BookingConfirmed), // starts exactly at 12:00
	}

	slots = MarkConflicts(slots, bookings, nil, "")
	assert.True(t, slots[0].Available)
}

func TestMarkConflicts_TerminalBookingsIgnored(t *testing.T) {
	slots := []models.Slot{{Start: at(10, 0), End: at(11, 0), Available: true}}
	bookings := []models.Booking{
		booking("", at(10, 0), 60, models.BookingCancelled),
		booking("", at(10, 0), 60, models.BookingCompleted),
		booking("", at(10, 0), 60, models.BookingNoShow),
	}

	slots = MarkConflicts(slots, bookings, nil, "")
	assert.True(t, slots[0].Available)
}

func TestMarkConflicts_ProfessionalScoping(t *testing.T) {
	slots := []models.Slot{{Start: at(10, 0), End: at(11, 0), Available: true}}
	otherPro := []models.Booking{booking("pro-2", at(10, 0), 60, models.BookingConfirmed)}

	// Query scoped to pro-1: pro-2's booking does not constrain.
	got := MarkConflicts([]models.Slot{slots[0]}, otherPro, nil, "pro-1")
	assert.True(t, got[0].Available)

	// Unscoped query: every professional's booking constrains.
	got = MarkConflicts([]models.Slot{slots[0]}, otherPro, nil, "")
	assert.False(t, got[0].Available)

	// Business-wide booking constrains a scoped query.
	businessWide := []models.Booking{booking("", at(10, 0), 60, models.BookingPending)}
	got = MarkConflicts([]models.Slot{slots[0]}, businessWide, nil, "pro-1")
	assert.False(t, got[0].Available)
}

func TestMarkConflicts_BlocksFlagSlots(t *testing.T) {
	slots := GenerateSlots(openWindow(9, 12), 60, 0)
	blocks := []models.Block{{
		Type:  models.BlockBreak,
		Start: at(10, 30),
		End:   at(11, 30),
	}}

	slots = MarkConflicts(slots, nil, blocks, "")

	require.Len(t, slots, 3)
	assert.True(t, slots[0].Available)  // 09:00-10:00
	assert.False(t, slots[1].Available) // 10:00-11:00 overlaps 10:30
	assert.False(t, slots[2].Available) // 11:00-12:00 overlaps until 11:30
}

func TestMarkConflicts_ProfessionalBlockScoping(t *testing.T) {
	slots := []models.Slot{{Start: at(10, 0), End: at(11, 0), Available: true}}
	blocks := []models.Block{{
		Type:           models.BlockUnavailable,
		ProfessionalID: "pro-2",
		Start:          at(9, 0),
		End:            at(18, 0),
	}}

	got := MarkConflicts([]models.Slot{slots[0]}, nil, blocks, "pro-1")
	assert.True(t, got[0].Available)

	got = MarkConflicts([]models.Slot{slots[0]}, nil, blocks, "pro-2")
	assert.False(t, got[0].Available)
}

func TestMarkConflicts_OverlappingBlocksAllHonored(t *testing.T) {
	slots := GenerateSlots(openWindow(9, 12), 60, 0)
	blocks := []models.Block{
		{Type: models.BlockBreak, Start: at(9, 0), End: at(10, 0)},
		{Type: models.BlockUnavailable, Start: at(9, 30), End: at(11, 0)},
	}

	slots = MarkConflicts(slots, nil, blocks, "")

	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestMarkConflicts_NeverRemovesSlots(t *testing.T) {
	slots := GenerateSlots(openWindow(9, 18), 60, 0)
	bookings := []models.Booking{
		booking("", at(9, 0), 540, models.BookingConfirmed), // blocks the whole day
	}

	got := MarkConflicts(slots, bookings, nil, "")

	require.Len(t, got, 9)
	for _, s := range got {
		assert.False(t, s.Available)
	}
}
