package mail

import (
	"errors"
	"testing"

	"account-service/internal/model"

	"github.com/stretchr/testify/require"
)

func TestClientEncode(t *testing.T) {
	c := NewClient(SMTPConfig{Host: "smtp.example.com"})

	t.Run("plain text", func(t *testing.T) {
		payload := string(c.encode(Message{
			Subject:    "Hello",
			Sender:     "noreply@example.com",
			Recipients: []string{"a@example.com", "b@example.com"},
			TextBody:   "body text",
		}))
		require.Contains(t, payload, "From: noreply@example.com\r\n")
		require.Contains(t, payload, "To: a@example.com, b@example.com\r\n")
		require.Contains(t, payload, "Subject: Hello\r\n")
		require.Contains(t, payload, "Content-Type: text/plain; charset=UTF-8")
		require.Contains(t, payload, "body text")
		require.NotContains(t, payload, "multipart/alternative")
	})

	t.Run("multipart alternative", func(t *testing.T) {
		payload := string(c.encode(Message{
			Subject:    "Hello",
			Sender:     "noreply@example.com",
			Recipients: []string{"a@example.com"},
			TextBody:   "plain part",
			HTMLBody:   "<p>html part</p>",
		}))
		require.Contains(t, payload, "multipart/alternative")
		require.Contains(t, payload, "plain part")
		require.Contains(t, payload, "<p>html part</p>")
		require.Contains(t, payload, "text/html; charset=UTF-8")
	})
}

func TestClientSendRejectsBadMessages(t *testing.T) {
	c := NewClient(SMTPConfig{Host: "smtp.example.com"})

	err := c.Send(Message{Recipients: []string{"a@example.com"}})
	require.Error(t, err)

	err = c.Send(Message{Sender: "noreply@example.com"})
	require.Error(t, err)
}

func TestNewClientDefaultsPort(t *testing.T) {
	c := NewClient(SMTPConfig{Host: "smtp.example.com"})
	require.Equal(t, 587, c.cfg.Port)

	c = NewClient(SMTPConfig{Host: "smtp.example.com", Port: 25})
	require.Equal(t, 25, c.cfg.Port)
}

func TestNewPasswordReset(t *testing.T) {
	u := model.User{
		Username:  "foobar",
		Email:     "foo@bar.com",
		FirstName: "Foo",
		LastName:  "Bar",
	}

	msg, err := NewPasswordReset(u, "http://localhost:8080/api/auth/reset_password/tok123", "noreply@example.com")
	require.NoError(t, err)
	require.Equal(t, "[Account Service] Reset Your Password", msg.Subject)
	require.Equal(t, "noreply@example.com", msg.Sender)
	require.Equal(t, []string{"foo@bar.com"}, msg.Recipients)
	require.Contains(t, msg.TextBody, "Foo Bar")
	require.Contains(t, msg.TextBody, "http://localhost:8080/api/auth/reset_password/tok123")
	require.Contains(t, msg.HTMLBody, "http://localhost:8080/api/auth/reset_password/tok123")
}

func TestNewPasswordResetFallsBackToUsername(t *testing.T) {
	u := model.User{Username: "foobar", Email: "foo@bar.com"}

	msg, err := NewPasswordReset(u, "http://example.com/reset/tok", "noreply@example.com")
	require.NoError(t, err)
	require.Contains(t, msg.TextBody, "foobar")
}

func TestNewWelcome(t *testing.T) {
	u := model.User{Username: "foobar", Email: "foo@bar.com"}

	msg := NewWelcome(u, "noreply@example.com")
	require.Equal(t, []string{"foo@bar.com"}, msg.Recipients)
	require.Contains(t, msg.TextBody, "foobar")
	require.Empty(t, msg.HTMLBody)
}

func TestFakeSender(t *testing.T) {
	fs := &FakeSender{}
	require.NoError(t, fs.Send(Message{Subject: "one"}))
	require.Len(t, fs.Sent(), 1)

	fs.Err = errors.New("transport down")
	require.Error(t, fs.Send(Message{Subject: "two"}))
	require.Len(t, fs.Sent(), 1)
}
