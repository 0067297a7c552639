package mail

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"account-service/internal/model"
)

//go:embed templates/*
var templatesFS embed.FS

var (
	resetText = texttemplate.Must(texttemplate.ParseFS(templatesFS, "templates/reset_password.txt"))
	resetHTML = htmltemplate.Must(htmltemplate.ParseFS(templatesFS, "templates/reset_password.html"))
)

const resetSubject = "[Account Service] Reset Your Password"

type resetData struct {
	Name     string
	ResetURL string
}

// NewPasswordReset builds the reset email for a user. resetURL already
// embeds the token as its last path segment.
func NewPasswordReset(u model.User, resetURL, sender string) (Message, error) {
	name := u.FullName()
	if name == "" {
		name = u.Username
	}
	data := resetData{Name: name, ResetURL: resetURL}

	var text, html strings.Builder
	if err := resetText.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("mail: render reset text: %w", err)
	}
	if err := resetHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("mail: render reset html: %w", err)
	}

	return Message{
		Subject:    resetSubject,
		Sender:     sender,
		Recipients: []string{u.Email},
		TextBody:   text.String(),
		HTMLBody:   html.String(),
	}, nil
}

// NewWelcome builds the post-registration notice. Sent best-effort off the
// request path.
func NewWelcome(u model.User, sender string) Message {
	return Message{
		Subject:    "[Account Service] Welcome",
		Sender:     sender,
		Recipients: []string{u.Email},
		TextBody:   fmt.Sprintf("Hi %s,\n\nThank you for registering. You can now log in.\n", u.Username),
	}
}
