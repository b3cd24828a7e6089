package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"booking-intake/internal/domain/contact"
	"booking-intake/internal/domain/document"
	"booking-intake/internal/pkg/errs"
)

type ReplyParams struct {
	ContactID string
	To        string
	Subject   string
	Message   string
}

func (p ReplyParams) trimmed() ReplyParams {
	return ReplyParams{
		ContactID: strings.TrimSpace(p.ContactID),
		To:        strings.TrimSpace(p.To),
		Subject:   strings.TrimSpace(p.Subject),
		Message:   strings.TrimSpace(p.Message),
	}
}

type contactCommandsImpl struct {
	store       DocumentStore
	mailer      Mailer
	sendTimeout time.Duration
	logger      *slog.Logger
}

func NewContactCommands(store DocumentStore, mailer Mailer, sendTimeout time.Duration, logger *slog.Logger) ContactCommands {
	return &contactCommandsImpl{
		store:       store,
		mailer:      mailer,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

func (c *contactCommandsImpl) Delete(ctx context.Context, ident string) error {
	err := c.store.Update(ctx, func(doc *document.Document) error {
		i := contact.IndexForDeletion(doc.Contacts, ident)
		if i < 0 {
			return errs.Mark(ErrContactNotFound, errs.ErrNotFound)
		}
		doc.Contacts = document.Remove(doc.Contacts, i)
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return err
		}
		return storageFailure(err)
	}

	c.logger.Info("contact deleted", "contact_id", ident)
	return nil
}

func (c *contactCommandsImpl) Reply(ctx context.Context, params ReplyParams) error {
	p := params.trimmed()
	if p.To == "" || p.Subject == "" || p.Message == "" {
		return errs.Mark(ErrReplyFieldsMissing, errs.ErrValidation)
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.sendTimeout)
	defer cancel()

	if err := c.mailer.Send(sendCtx, p.To, p.Subject, p.Message); err != nil {
		if errs.Is(err, errs.ErrValidation) {
			return errs.Mark(errs.Mark(err, ErrInvalidRecipient), errs.ErrValidation)
		}
		c.logger.Error("contact reply failed", "contact_id", p.ContactID, "to", p.To, "error", err.Error())
		return errs.Mark(errs.Mark(err, ErrSendFailed), errs.ErrDelivery)
	}

	c.logger.Info("contact reply sent", "contact_id", p.ContactID, "to", p.To)
	return nil
}
