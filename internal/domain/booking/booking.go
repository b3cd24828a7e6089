package booking

import (
	"strings"

	"booking-intake/internal/domain/document"
)

const (
	FieldPreferredDate   = "preferredDate"
	FieldPreferredTime   = "preferredTime"
	FieldStatus          = "status"
	FieldStatusUpdatedAt = "statusUpdatedAt"
	FieldFirstName       = "firstName"
	FieldLessonType      = "lessonType"
)

// Slot is the (date, time) pair a booking asks to occupy exclusively.
type Slot struct {
	Date string
	Time string
}

// SlotOf returns the booking's slot; ok is false unless both parts are present.
func SlotOf(r document.Record) (Slot, bool) {
	s := Slot{
		Date: r.String(FieldPreferredDate),
		Time: r.String(FieldPreferredTime),
	}
	return s, s.Date != "" && s.Time != ""
}

// StatusOf returns the stored status, defaulting to pending when missing.
// Unknown stored values are returned lowercased as-is and treated as slot holders.
func StatusOf(r document.Record) Status {
	raw := strings.ToLower(strings.TrimSpace(r.String(FieldStatus)))
	if raw == "" {
		return StatusPending
	}
	return Status(raw)
}

// FindConflict returns the index of the first booking other than skip that holds slot,
// or -1 when the slot is free. Pass skip < 0 to consider every booking.
func FindConflict(bookings []document.Record, slot Slot, skip int) int {
	for i, b := range bookings {
		if i == skip {
			continue
		}
		other, ok := SlotOf(b)
		if !ok || other != slot {
			continue
		}
		if StatusOf(b).HoldsSlot() {
			return i
		}
	}
	return -1
}

// Prepare fills in the fields the store owns on a new booking.
func Prepare(r document.Record, id func() string, now string) {
	if r.ID() == "" {
		r[document.FieldID] = id()
	}
	r.SetDefault(FieldStatus, string(StatusPending))
	r[FieldStatusUpdatedAt] = now
}

// Transition applies next to the booking and returns the status it replaced.
func Transition(r document.Record, next Status, now string) Status {
	prev := StatusOf(r)
	r[FieldStatus] = string(next)
	r[FieldStatusUpdatedAt] = now
	return prev
}
