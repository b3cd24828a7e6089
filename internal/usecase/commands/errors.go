package commands

import "booking-intake/internal/pkg/errs"

// Messages are safe to show to API clients.
var (
	ErrInvalidSubmission  = errs.New("submission must be a JSON object")
	ErrSlotTaken          = errs.New("this time slot is already booked, please choose another time")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrContactNotFound    = errs.New("contact not found")
	ErrInvalidStatus      = errs.New("status must be one of pending, confirmed, rejected")
	ErrReplyFieldsMissing = errs.New("recipient, subject and message are required")
	ErrInvalidRecipient   = errs.New("recipient address is invalid")
	ErrSendFailed         = errs.New("failed to send email")
	ErrSaveFailed         = errs.New("error saving data")
	ErrInvalidCredentials = errs.New("invalid password")
	ErrSessionIssue       = errs.New("failed to create session")
)

func storageFailure(err error) error {
	return errs.Mark(errs.Mark(err, ErrSaveFailed), errs.ErrStorage)
}
