package errs

import "errors"

// Error categories shared by the usecase and handler layers.
// Concrete errors are marked with one of these via Mark so handlers can map them with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("slot conflict")
	ErrNotFound   = errors.New("record not found")
	ErrAuth       = errors.New("authentication required")
	ErrStorage    = errors.New("storage failure")
	ErrDelivery   = errors.New("delivery failure")
)
