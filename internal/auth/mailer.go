package auth

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strconv"

	"coaching-roster-backend/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Mailer delivers security notifications
type Mailer interface {
	SendSecurityAlert(ctx context.Context, email string) error
}

// NoopMailer logs instead of sending mail
type NoopMailer struct{}

// SendSecurityAlert implements Mailer
func (NoopMailer) SendSecurityAlert(ctx context.Context, email string) error {
	logger.WithContext(ctx).WithField("email", email).Warn("Security alert not sent: SMTP is not configured")
	return nil
}

// SMTPConfig holds SMTP connection settings
type SMTPConfig struct {
	Host             string
	Port             int
	User             string
	Password         string
	From             string
	PasswordResetURL string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends multipart text and HTML mail over SMTP
type SMTPMailer struct {
	cfg  SMTPConfig
	send sendFunc
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

var alertTemplate = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Security warning</title></head>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: red;">Security warning</h2>
    <p>We recorded many failed sign-in attempts for your account {{.Email}}.</p>
    <p>If this was not you, change your password now.</p>
    {{if .ResetURL}}<a href="{{.ResetURL}}">Change password</a>{{end}}
  </div>
</body>
</html>`))

// SendSecurityAlert implements Mailer
func (m *SMTPMailer) SendSecurityAlert(ctx context.Context, email string) error {
	msg, err := m.buildAlert(email)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send security alert: %w", err)
	}

	logger.WithContext(ctx).WithField("email", email).Info("Security alert sent")
	return nil
}

func (m *SMTPMailer) buildAlert(email string) ([]byte, error) {
	var html bytes.Buffer
	if err := alertTemplate.Execute(&html, map[string]string{"Email": email, "ResetURL": m.cfg.PasswordResetURL}); err != nil {
		return nil, fmt.Errorf("failed to render alert: %w", err)
	}
	text := fmt.Sprintf("Security warning: suspicious sign-in activity on your account %s.", email)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, part := range []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", text},
		{"text/html; charset=UTF-8", html.String()},
	} {
		pw, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {part.contentType}})
		if err != nil {
			return nil, err
		}
		if _, err := pw.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", email)
	fmt.Fprintf(&msg, "Subject: Security warning: suspicious activity detected\r\n")
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", w.Boundary())
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}
