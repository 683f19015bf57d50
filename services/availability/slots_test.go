package availability

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openWindow(openHour, closeHour int) models.DayWindow {
	return models.DayWindow{
		Open:  time.Date(2026, 3, 2, openHour, 0, 0, 0, time.UTC),
		Close: time.Date(2026, 3, 2, closeHour, 0, 0, 0, time.UTC),
	}
}

func TestGenerateSlots_FullDayGrid(t *testing.T) {
	slots := GenerateSlots(openWindow(9, 18), 60, 0)

	require.Len(t, slots, 9)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), slots[8].Start)
	for _, s := range slots {
		assert.Equal(t, s.Start.Add(60*time.Minute), s.End)
		assert.True(t, s.Available)
	}
}

func TestGenerateSlots_BufferSpacesConsecutiveStarts(t *testing.T) {
	slots := GenerateSlots(openWindow(9, 12), 45, 15)

	// 09:00-09:45, 10:00-10:45, 11:00-11:45.
	require.Len(t, slots, 3)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 60*time.Minute, slots[i].Start.Sub(slots[i-1].Start))
	}
}

func TestGenerateSlots_PartialRemainderDiscarded(t *testing.T) {
	// 09:00-10:30 with 60m slots: only 09:00 fits; the trailing 30m is dropped.
	win := models.DayWindow{
		Open:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Close: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
	}
	slots := GenerateSlots(win, 60, 0)

	require.Len(t, slots, 1)
	assert.Equal(t, win.Open, slots[0].Start)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	slots := GenerateSlots(models.DayWindow{Closed: true}, 60, 0)
	assert.Empty(t, slots)
}

func TestGenerateSlots_WindowShorterThanService(t *testing.T) {
	win := models.DayWindow{
		Open:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Close: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}
	slots := GenerateSlots(win, 60, 0)
	assert.Empty(t, slots)
}

func TestGenerateSlots_LastSlotEndsExactlyAtClose(t *testing.T) {
	slots := GenerateSlots(openWindow(9, 10), 60, 0)
	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), slots[0].End)
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(openWindow(9, 18), 0, 0))
	assert.Empty(t, GenerateSlots(openWindow(9, 18), -30, 0))
}
