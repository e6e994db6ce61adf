package mail

import "context"

// Template names known to the renderer.
const (
	RegistrationTemplate = "registration"
	CancellationTemplate = "cancellation"
)

type Address struct {
	Name  string
	Email string
}

// Message is a fully rendered e-mail ready to be delivered.
type Message struct {
	To      Address
	Subject string
	Text    string
	HTML    string
}

// Content is the rendered form of a template.
type Content struct {
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

type Renderer interface {
	Render(name string, data interface{}) (*Content, error)
}
