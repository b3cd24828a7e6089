//go:build unit

package builder

import (
	"booking-intake/internal/domain/document"
)

type ContactBuilder struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Timestamp string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		Name:    "Bruno",
		Email:   "bruno@example.com",
		Message: "Do you teach beginners?",
	}
}

func (c *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(c)
	return c
}

func (c *ContactBuilder) BuildSubmission() document.Record {
	rec := document.Record{
		"type":    "contact",
		"name":    c.Name,
		"email":   c.Email,
		"message": c.Message,
	}
	if c.ID != "" {
		rec["id"] = c.ID
	}
	if c.Timestamp != "" {
		rec["timestamp"] = c.Timestamp
	}
	return rec
}
