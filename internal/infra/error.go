package infra

import (
	"errors"
	"log/slog"

	"booking-intake/internal/pkg/errs"
)

type StoreErrorKind string

// StoreError describes a failed read or write against a backing file.
type StoreError struct {
	Kind StoreErrorKind
	Path string
	msg  string
	err  error
}

func (e StoreError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.Path != "" {
		s += " (" + e.Path + ")"
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapStoreErr logs the failure once at the infra boundary and returns it as a StoreError.
func WrapStoreErr(logger *slog.Logger, kind StoreErrorKind, path, msg string, err error) error {
	attrs := []any{
		slog.String("kind", string(kind)),
		slog.String("path", path),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	logger.Error("Store error: "+msg, attrs...)

	return StoreError{Kind: kind, Path: path, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindReadFailure   StoreErrorKind = "READ_FAILURE"
	KindDecodeFailure StoreErrorKind = "DECODE_FAILURE"
	KindEncodeFailure StoreErrorKind = "ENCODE_FAILURE"
	KindWriteFailure  StoreErrorKind = "WRITE_FAILURE"
)
