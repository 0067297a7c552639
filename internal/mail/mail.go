// Package mail delivers account notifications over SMTP. Transport is
// net/smtp with STARTTLS; the Dispatcher decides whether a message is
// sent on the calling goroutine or handed to the background pool.
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"sync"
)

// Message is the notification contract: subject, sender, recipients and a
// plain-text body with an optional HTML alternative.
type Message struct {
	Subject    string
	Sender     string
	Recipients []string
	TextBody   string
	HTMLBody   string
}

// Sender delivers a single message.
type Sender interface {
	Send(msg Message) error
}

// SMTPConfig configures the outbound SMTP connection.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
}

// Client is the SMTP-backed Sender.
type Client struct {
	cfg SMTPConfig
}

func NewClient(cfg SMTPConfig) *Client {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &Client{cfg: cfg}
}

const boundary = "=_account-service_alt"

// Send delivers the message, upgrading to STARTTLS on the submission port.
func (c *Client) Send(msg Message) error {
	if msg.Sender == "" {
		return fmt.Errorf("mail: sender is empty")
	}
	if len(msg.Recipients) == 0 {
		return fmt.Errorf("mail: no recipients")
	}

	payload := c.encode(msg)
	auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	if c.cfg.UseTLS || c.cfg.Port == 587 {
		return c.sendWithTLS(addr, auth, msg.Sender, msg.Recipients, payload)
	}
	return smtp.SendMail(addr, auth, msg.Sender, msg.Recipients, payload)
}

// encode renders the RFC 2822 message; a multipart/alternative body when an
// HTML part is present, plain text otherwise.
func (c *Client) encode(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.Sender)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.Recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTMLBody == "" {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(msg.TextBody)
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.TextBody)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.HTMLBody)
	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

func (c *Client) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, payload []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("mail: dial: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: c.cfg.Host}); err != nil {
		return fmt.Errorf("mail: starttls: %w", err)
	}
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("mail: auth: %w", err)
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("mail: from: %w", err)
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("mail: rcpt: %w", err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mail: data: %w", err)
	}
	if _, err = w.Write(payload); err != nil {
		return fmt.Errorf("mail: write: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("mail: close: %w", err)
	}
	return client.Quit()
}

// FakeSender records messages for tests.
type FakeSender struct {
	mu   sync.Mutex
	Err  error
	sent []Message
}

func (f *FakeSender) Send(msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *FakeSender) Sent() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.sent...)
}
