//go:build unit

package notify_test

import (
	"testing"

	"booking-intake/internal/domain/document"
	"booking-intake/internal/usecase/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationJob(t *testing.T) {
	t.Run("full booking", func(t *testing.T) {
		job, ok := notify.ConfirmationJob(document.Record{
			"id":            "b1",
			"email":         " ana@example.com ",
			"firstName":     "Ana",
			"preferredDate": "2024-06-01",
			"preferredTime": "10:00",
			"lessonType":    "Private lesson",
		})
		require.True(t, ok)

		assert.Equal(t, notify.KindBookingConfirmed, job.Kind)
		assert.Equal(t, "b1", job.BookingID)
		assert.Equal(t, "ana@example.com", job.To)
		assert.Equal(t, "Booking Confirmed", job.Subject)
		assert.Contains(t, job.Body, "Hi Ana,")
		assert.Contains(t, job.Body, "Date: 2024-06-01")
		assert.Contains(t, job.Body, "Time: 10:00")
		assert.Contains(t, job.Body, "Lesson: Private lesson")
	})

	t.Run("sparse booking", func(t *testing.T) {
		job, ok := notify.ConfirmationJob(document.Record{"email": "x@example.com"})
		require.True(t, ok)
		assert.Contains(t, job.Body, "Hi there,")
		assert.Contains(t, job.Body, "Date: N/A")
		assert.NotContains(t, job.Body, "Lesson:")
	})

	t.Run("no email", func(t *testing.T) {
		_, ok := notify.ConfirmationJob(document.Record{"firstName": "Ana", "email": "  "})
		assert.False(t, ok)
	})
}
