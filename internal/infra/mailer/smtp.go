package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net"
	"net/mail"
	"net/smtp"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/errs"
)

var ErrNotConfigured = errors.New("smtp is not configured")

const (
	defaultDialTimeout = 10 * time.Second
	implicitTLSPort    = 465
	breakerName        = "smtp"
)

// SMTPMailer delivers plain-text mail through a single SMTP relay.
// Consecutive transport failures open a circuit breaker so a dead relay fails fast.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	cb     *gobreaker.CircuitBreaker[struct{}]
	clock  clock.Clock
	logger *slog.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, clk clock.Clock, logger *slog.Logger) *SMTPMailer {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("mail circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &SMTPMailer{
		cfg:    cfg,
		cb:     cb,
		clock:  clk,
		logger: logger,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if !m.cfg.Enabled() {
		return errs.Mark(errs.New(ErrNotConfigured.Error()), errs.ErrDelivery)
	}

	msg, err := m.compose(to, subject, body)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	_, err = m.cb.Execute(func() (struct{}, error) {
		return struct{}{}, m.deliver(ctx, msg)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			m.logger.Warn("mail rejected by circuit breaker", "to", msg.To.Address)
		}
		return errs.Mark(errs.Wrap(err, "send mail"), errs.ErrDelivery)
	}

	m.logger.Info("mail sent", "to", msg.To.Address, "subject", subject)
	return nil
}

func (m *SMTPMailer) compose(to, subject, body string) (message, error) {
	rcpt, err := parseRecipient(to)
	if err != nil {
		return message{}, err
	}
	if err := checkHeader(subject); err != nil {
		return message{}, err
	}

	fromAddr := m.cfg.From
	if fromAddr == "" {
		fromAddr = m.cfg.Username
	}

	return message{
		From:    mail.Address{Name: m.cfg.FromName, Address: fromAddr},
		To:      rcpt,
		Subject: subject,
		Body:    body,
		Date:    m.clock.Now(),
	}, nil
}

func (m *SMTPMailer) deliver(ctx context.Context, msg message) error {
	conn, err := m.dial(ctx)
	if err != nil {
		return errs.Wrap(err, "connect to smtp server")
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return errs.Wrap(err, "create smtp client")
	}
	defer func() { _ = client.Close() }()

	if m.cfg.UseTLS && m.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errs.New("smtp server does not support STARTTLS")
		}
		if err := client.StartTLS(m.tlsConfig()); err != nil {
			return errs.Wrap(err, "start tls")
		}
	}

	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errs.Wrap(err, "smtp authentication")
		}
	}

	if err := client.Mail(msg.From.Address); err != nil {
		return errs.Wrap(err, "set sender")
	}
	if err := client.Rcpt(msg.To.Address); err != nil {
		return errs.Wrap(err, "set recipient")
	}

	w, err := client.Data()
	if err != nil {
		return errs.Wrap(err, "open data")
	}
	if _, err := w.Write(msg.bytes()); err != nil {
		_ = w.Close()
		return errs.Wrap(err, "write message")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "close data")
	}

	return client.Quit()
}

func (m *SMTPMailer) dial(ctx context.Context) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: defaultDialTimeout}
	if m.cfg.UseTLS && m.cfg.Port == implicitTLSPort {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: m.tlsConfig()}
		return tlsDialer.DialContext(ctx, "tcp", m.cfg.Addr())
	}
	return dialer.DialContext(ctx, "tcp", m.cfg.Addr())
}

func (m *SMTPMailer) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName: m.cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
}
