package commands

import (
	"context"
	"log/slog"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/contact"
	"booking-intake/internal/domain/document"
	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/errs"
)

const (
	TypeContact = "contact"
	TypeBooking = "booking"
)

type SubmitResult struct {
	// Collection is the key the record was appended to, empty when the type was not recognised.
	Collection string
	Record     document.Record
}

type submissionCommandsImpl struct {
	store  DocumentStore
	newID  IDGenerator
	clock  clock.Clock
	logger *slog.Logger
}

func NewSubmissionCommands(store DocumentStore, newID IDGenerator, clk clock.Clock, logger *slog.Logger) SubmissionCommands {
	return &submissionCommandsImpl{
		store:  store,
		newID:  newID,
		clock:  clk,
		logger: logger,
	}
}

func (s *submissionCommandsImpl) Submit(ctx context.Context, rec document.Record) (*SubmitResult, error) {
	if rec == nil {
		return nil, errs.Mark(ErrInvalidSubmission, errs.ErrValidation)
	}

	now := clock.Timestamp(s.clock)
	rec.SetIfAbsent(document.FieldTimestamp, now)

	result := &SubmitResult{Record: rec}
	err := s.store.Update(ctx, func(doc *document.Document) error {
		switch rec.Type() {
		case TypeContact:
			contact.Prepare(rec, s.newID)
			doc.Contacts = append(doc.Contacts, rec)
			result.Collection = document.KeyContacts

		case TypeBooking:
			if slot, ok := booking.SlotOf(rec); ok {
				if booking.FindConflict(doc.Bookings, slot, -1) >= 0 {
					return errs.Mark(ErrSlotTaken, errs.ErrConflict)
				}
			}
			if st, err := booking.ParseStatus(rec.String(booking.FieldStatus)); err == nil {
				rec[booking.FieldStatus] = st.String()
			} else {
				delete(rec, booking.FieldStatus)
			}
			booking.Prepare(rec, s.newID, now)
			doc.Bookings = append(doc.Bookings, rec)
			result.Collection = document.KeyBookings

		default:
			s.logger.Warn("submission with unknown type accepted but not stored", "type", rec.Type())
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrConflict) {
			slot, _ := booking.SlotOf(rec)
			s.logger.Info("booking rejected: slot taken", "date", slot.Date, "time", slot.Time)
			return nil, err
		}
		return nil, storageFailure(err)
	}

	return result, nil
}
