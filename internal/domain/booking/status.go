package booking

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("status must be one of pending, confirmed, rejected")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// ParseStatus accepts a requested status case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// HoldsSlot reports whether a booking in this status occupies its slot.
func (s Status) HoldsSlot() bool {
	return s != StatusRejected
}

// ShouldConfirm reports whether moving from prev to next is an entry into confirmed.
func ShouldConfirm(prev, next Status) bool {
	return prev != StatusConfirmed && next == StatusConfirmed
}
