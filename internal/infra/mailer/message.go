package mailer

import (
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrInvalidHeader    = errors.New("header value contains a line break")
)

type message struct {
	From    mail.Address
	To      mail.Address
	Subject string
	Body    string
	Date    time.Time
}

func parseRecipient(to string) (mail.Address, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(to))
	if err != nil {
		return mail.Address{}, fmt.Errorf("%w: %s", ErrInvalidRecipient, err.Error())
	}
	return *addr, nil
}

func checkHeader(v string) error {
	if strings.ContainsAny(v, "\r\n") {
		return ErrInvalidHeader
	}
	return nil
}

// bytes renders a plain-text RFC 5322 message with CRLF line endings.
func (m message) bytes() []byte {
	var b strings.Builder

	b.WriteString("From: " + m.From.String() + "\r\n")
	b.WriteString("To: " + m.To.String() + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", m.Subject) + "\r\n")
	b.WriteString("Date: " + m.Date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")

	body := strings.ReplaceAll(m.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}
