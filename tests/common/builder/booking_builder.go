//go:build unit

package builder

import (
	"booking-intake/internal/domain/document"
)

type BookingBuilder struct {
	ID            string
	FirstName     string
	Email         string
	PreferredDate string
	PreferredTime string
	LessonType    string
	Status        string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		FirstName:     "Ana",
		Email:         "ana@example.com",
		PreferredDate: "2024-06-01",
		PreferredTime: "10:00",
		LessonType:    "Private lesson",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildSubmission returns the body a client posts to the save endpoint.
func (b *BookingBuilder) BuildSubmission() document.Record {
	rec := document.Record{
		"type":          "booking",
		"firstName":     b.FirstName,
		"email":         b.Email,
		"preferredDate": b.PreferredDate,
		"preferredTime": b.PreferredTime,
		"lessonType":    b.LessonType,
	}
	if b.ID != "" {
		rec["id"] = b.ID
	}
	if b.Status != "" {
		rec["status"] = b.Status
	}
	return rec
}

// BuildStored returns the booking as it sits in the document after intake.
func (b *BookingBuilder) BuildStored() document.Record {
	rec := b.BuildSubmission()
	rec.SetDefault("id", "booking-1")
	rec.SetDefault("status", "pending")
	rec.SetDefault("timestamp", "2024-05-01T09:00:00.000000")
	rec.SetDefault("statusUpdatedAt", "2024-05-01T09:00:00.000000")
	return rec
}
