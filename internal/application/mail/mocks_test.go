package mail

import (
	"context"

	"gympoint/internal/shared/logger"
)

type mockSender struct {
	SendFunc func(ctx context.Context, msg *Message) error
	sent     []*Message
}

func (m *mockSender) Send(ctx context.Context, msg *Message) error {
	m.sent = append(m.sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

type mockRenderer struct {
	RenderFunc func(name string, data interface{}) (*Content, error)
	lastName   string
	lastData   interface{}
}

func (m *mockRenderer) Render(name string, data interface{}) (*Content, error) {
	m.lastName = name
	m.lastData = data
	if m.RenderFunc != nil {
		return m.RenderFunc(name, data)
	}
	return &Content{Subject: "subject", Text: "text", HTML: "<p>html</p>"}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
