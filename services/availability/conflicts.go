package availability

import (
	"slotify/models"
)

// MarkConflicts flags every candidate slot that overlaps a non-terminal
// booking or a block. Slots are never removed, only flagged, so callers can
// render taken slots distinctly from slots outside business hours.
//
// Scoping: when professionalID is set, bookings and blocks pinned to a
// different professional do not constrain the result; business-wide records
// (no professional) always do. Overlap is half-open, so back-to-back
// appointments never conflict.
func MarkConflicts(slots []models.Slot, bookings []models.Booking, blocks []models.Block, professionalID string) []models.Slot {
	for i := range slots {
		if !slots[i].Available {
			continue
		}
		if hasBookingConflict(slots[i], bookings, professionalID) || hasBlockConflict(slots[i], blocks, professionalID) {
			slots[i].Available = false
		}
	}
	return slots
}

func hasBookingConflict(slot models.Slot, bookings []models.Booking, professionalID string) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if !inScope(b.ProfessionalID, professionalID) {
			continue
		}
		if b.Overlaps(slot.Start, slot.End) {
			return true
		}
	}
	return false
}

func hasBlockConflict(slot models.Slot, blocks []models.Block, professionalID string) bool {
	for _, blk := range blocks {
		// Every block type excludes time. Full-day closures already shut the
		// day during rules resolution; a partial closure lands here.
		if !inScope(blk.ProfessionalID, professionalID) {
			continue
		}
		if blk.Overlaps(slot.Start, slot.End) {
			return true
		}
	}
	return false
}

// inScope reports whether a record scoped to recordProf constrains a query
// scoped to queryProf. Unscoped records constrain everyone; an unscoped query
// is constrained by everything.
func inScope(recordProf, queryProf string) bool {
	if recordProf == "" || queryProf == "" {
		return true
	}
	return recordProf == queryProf
}
