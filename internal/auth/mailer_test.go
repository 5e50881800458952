package auth

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailerSendsAlert(t *testing.T) {
	mailer := NewSMTPMailer(SMTPConfig{
		Host:             "smtp.example.com",
		Port:             587,
		User:             "alerts",
		Password:         "pw",
		From:             "alerts@example.com",
		PasswordResetURL: "https://app.example.com/reset",
	})

	var gotAddr string
	var gotTo []string
	var gotMsg string
	mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		gotMsg = string(msg)
		assert.NotNil(t, a)
		assert.Equal(t, "alerts@example.com", from)
		return nil
	}

	require.NoError(t, mailer.SendSecurityAlert(context.Background(), "coach@example.com"))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"coach@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Security warning")
	assert.Contains(t, gotMsg, "multipart/alternative")
	assert.Contains(t, gotMsg, "text/plain")
	assert.Contains(t, gotMsg, `href="https://app.example.com/reset"`)
	assert.True(t, strings.HasPrefix(gotMsg, "From: alerts@example.com\r\n"))
}

func TestSMTPMailerWrapsSendError(t *testing.T) {
	mailer := NewSMTPMailer(SMTPConfig{Host: "localhost", Port: 25, From: "alerts@example.com"})
	mailer.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := mailer.SendSecurityAlert(context.Background(), "coach@example.com")

	assert.ErrorContains(t, err, "connection refused")
}

func TestNoopMailer(t *testing.T) {
	assert.NoError(t, NoopMailer{}.SendSecurityAlert(context.Background(), "coach@example.com"))
}
