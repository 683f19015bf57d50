package availability

import (
	"time"

	"slotify/models"
)

// GenerateSlots produces the full candidate grid for a resolved day window:
// slots of length duration starting at open, open+(duration+buffer),
// open+2*(duration+buffer), ... while the slot still ends at or before close.
// A trailing remainder shorter than the service duration is discarded.
//
// Every slot starts out available; the conflict filter flips the flag.
func GenerateSlots(win models.DayWindow, durationMinutes, bufferMinutes int) []models.Slot {
	slots := []models.Slot{}
	if win.Closed || durationMinutes <= 0 {
		return slots
	}
	if bufferMinutes < 0 {
		bufferMinutes = 0
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(durationMinutes+bufferMinutes) * time.Minute
	if step < time.Minute {
		step = time.Minute
	}

	for start := win.Open; !start.Add(duration).After(win.Close); start = start.Add(step) {
		slots = append(slots, models.Slot{
			Start:     start,
			End:       start.Add(duration),
			Available: true,
		})
	}
	return slots
}
