package commands

import (
	"context"

	"booking-intake/internal/domain/auth"
	"booking-intake/internal/domain/document"
	"booking-intake/internal/usecase/notify"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// Write-side ports. The document store owns serialization of read-modify-write cycles.
type DocumentStore interface {
	Load(ctx context.Context) *document.Document
	Update(ctx context.Context, fn func(doc *document.Document) error) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Notifier interface {
	Enqueue(job notify.Job) bool
}

type SessionStore interface {
	Create() auth.Session
	Get(id string) (auth.Session, bool)
	Delete(id string)
}

// IDGenerator returns a new opaque record id.
type IDGenerator func() string

// Command interfaces consumed by the HTTP handlers.
type SubmissionCommands interface {
	Submit(ctx context.Context, rec document.Record) (*SubmitResult, error)
}

type BookingCommands interface {
	UpdateStatus(ctx context.Context, id, status string) (document.Record, error)
	Delete(ctx context.Context, id string) error
}

type ContactCommands interface {
	Delete(ctx context.Context, ident string) error
	Reply(ctx context.Context, params ReplyParams) error
}

type AuthCommands interface {
	Login(ctx context.Context, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string)
}
