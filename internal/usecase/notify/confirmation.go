package notify

import (
	"fmt"
	"strings"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/document"
)

const confirmationSubject = "Booking Confirmed"

// ConfirmationJob builds the customer confirmation for a booking.
// ok is false when the booking has no email address to send to.
func ConfirmationJob(rec document.Record) (Job, bool) {
	to := rec.Email()
	if to == "" {
		return Job{}, false
	}

	name := strings.TrimSpace(rec.String(booking.FieldFirstName))
	if name == "" {
		name = "there"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", name)
	body.WriteString("Good news! Your booking has been confirmed.\n\n")
	fmt.Fprintf(&body, "Date: %s\n", orNA(rec.String(booking.FieldPreferredDate)))
	fmt.Fprintf(&body, "Time: %s\n", orNA(rec.String(booking.FieldPreferredTime)))
	if lesson := strings.TrimSpace(rec.String(booking.FieldLessonType)); lesson != "" {
		fmt.Fprintf(&body, "Lesson: %s\n", lesson)
	}
	body.WriteString("\nIf you need to change anything, just reply to this email.\n\nSee you soon!\n")

	return Job{
		Kind:      KindBookingConfirmed,
		BookingID: rec.ID(),
		To:        to,
		Subject:   confirmationSubject,
		Body:      body.String(),
	}, true
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
