package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympoint/internal/application/mail"
)

func TestSMTPSender_BuildMessage(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host:        "smtp.example.com",
		Port:        587,
		FromAddress: "noreply@gympoint.com",
		FromName:    "GymPoint",
	}, &mockLogger{})

	m := sender.buildMessage(&mail.Message{
		To:      mail.Address{Name: "Maria Souza", Email: "maria@example.com"},
		Subject: "Matricula realizada",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "noreply@gympoint.com")
	assert.Contains(t, raw, "maria@example.com")
	assert.Contains(t, raw, "Subject: Matricula realizada")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "plain body")
}

func TestSMTPSender_SendHonoursCancelledContext(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: 1}, &mockLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, &mail.Message{To: mail.Address{Email: "maria@example.com"}})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogSender_Send(t *testing.T) {
	sender := NewLogSender(&mockLogger{})
	assert.NoError(t, sender.Send(context.Background(), &mail.Message{Subject: "hello"}))
}
