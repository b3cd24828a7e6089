package commands

import (
	"context"
	"log/slog"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/document"
	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/notify"
)

type bookingCommandsImpl struct {
	store    DocumentStore
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingCommands(store DocumentStore, notifier Notifier, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		store:    store,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, id, status string) (document.Record, error) {
	next, err := booking.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(ErrInvalidStatus, errs.ErrValidation)
	}

	var (
		updated document.Record
		prev    booking.Status
	)
	err = b.store.Update(ctx, func(doc *document.Document) error {
		i := document.IndexOf(doc.Bookings, id)
		if i < 0 {
			return errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
		}
		rec := doc.Bookings[i]

		if next.HoldsSlot() {
			if slot, ok := booking.SlotOf(rec); ok && booking.FindConflict(doc.Bookings, slot, i) >= 0 {
				return errs.Mark(ErrSlotTaken, errs.ErrConflict)
			}
		}

		prev = booking.Transition(rec, next, clock.Timestamp(b.clock))
		updated = rec
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) || errs.Is(err, errs.ErrConflict) {
			return nil, err
		}
		return nil, storageFailure(err)
	}

	b.logger.Info("booking status updated", "booking_id", id, "from", prev.String(), "to", next.String())

	if booking.ShouldConfirm(prev, next) {
		b.enqueueConfirmation(updated)
	}
	return updated, nil
}

func (b *bookingCommandsImpl) enqueueConfirmation(rec document.Record) {
	job, ok := notify.ConfirmationJob(rec)
	if !ok {
		b.logger.Warn("confirmed booking has no email address", "booking_id", rec.ID())
		return
	}
	b.notifier.Enqueue(job)
}

func (b *bookingCommandsImpl) Delete(ctx context.Context, id string) error {
	err := b.store.Update(ctx, func(doc *document.Document) error {
		i := document.IndexOf(doc.Bookings, id)
		if i < 0 {
			return errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
		}
		doc.Bookings = document.Remove(doc.Bookings, i)
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return err
		}
		return storageFailure(err)
	}

	b.logger.Info("booking deleted", "booking_id", id)
	return nil
}
