package auth

import (
	"errors"
	"time"
)

var ErrEmptyPassword = errors.New("password is required")

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Session is a server-side admin login. The session id is the only thing a client ever holds.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
