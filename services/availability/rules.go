package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// ResolveDayWindow turns the weekly working-hours table, the holiday list and
// any full-day closure blocks into the concrete open/closed interval for one
// calendar date. The date must be midnight in the business's location.
//
// A holiday or a closure block covering the whole civil day always wins over a
// normally-open weekday. There is no partial-holiday concept: a holiday closes
// the entire day.
func ResolveDayWindow(date time.Time, wh models.WorkingHours, holidays []models.Holiday, blocks []models.Block) models.DayWindow {
	dayStart := date
	dayEnd := dayStart.AddDate(0, 0, 1)
	closed := models.DayWindow{Closed: true}

	entry := wh.ForWeekday(date.Weekday())
	if entry.Closed {
		return closed
	}

	for _, h := range holidays {
		if h.Matches(date) {
			return closed
		}
	}

	for _, b := range blocks {
		if b.Type == models.BlockClosure && b.ProfessionalID == "" && b.CoversDay(dayStart, dayEnd) {
			return closed
		}
	}

	open, err := clockOn(date, entry.Open)
	if err != nil {
		utils.GetLogger().Warn("unparseable opening time, treating day as closed",
			zap.String("open", entry.Open), zap.Error(err))
		return closed
	}
	close, err := clockOn(date, entry.Close)
	if err != nil {
		utils.GetLogger().Warn("unparseable closing time, treating day as closed",
			zap.String("close", entry.Close), zap.Error(err))
		return closed
	}

	// open >= close after resolution is a configuration error, never fatal.
	if !open.Before(close) {
		utils.GetLogger().Warn("working hours resolve to an empty interval, treating day as closed",
			zap.String("open", entry.Open), zap.String("close", entry.Close),
			zap.String("date", date.Format("2006-01-02")))
		return closed
	}

	return models.DayWindow{Open: open, Close: close}
}

// clockOn anchors an "HH:MM" clock time onto the given date, in its location.
func clockOn(date time.Time, clock string) (time.Time, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("malformed clock time %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("bad hour in clock time %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("bad minute in clock time %q", clock)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
