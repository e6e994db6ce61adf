package mail

import (
	"context"
	"encoding/json"
	"fmt"

	"gympoint/internal/shared/logger"
)

// RegistrationMailJob sends the enrolment confirmation to the student.
type RegistrationMailJob struct {
	sender   Sender
	renderer Renderer
	logger   logger.Interface
}

func NewRegistrationMailJob(sender Sender, renderer Renderer, logger logger.Interface) *RegistrationMailJob {
	return &RegistrationMailJob{
		sender:   sender,
		renderer: renderer,
		logger:   logger,
	}
}

func (j *RegistrationMailJob) Key() string {
	return RegistrationMailKey
}

func (j *RegistrationMailJob) Handle(ctx context.Context, payload json.RawMessage) error {
	var data RegistrationMailPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", RegistrationMailKey, err)
	}
	if data.Student.Email == "" {
		return fmt.Errorf("%s payload has no student email", RegistrationMailKey)
	}

	content, err := j.renderer.Render(RegistrationTemplate, data)
	if err != nil {
		return err
	}

	msg := newMessage(Address{Name: data.Student.Name, Email: data.Student.Email}, content)
	if err := j.sender.Send(ctx, msg); err != nil {
		return err
	}

	j.logger.Infow("registration mail sent",
		"student_id", data.Student.ID,
		"plan", data.Plan.Title,
	)
	return nil
}

func newMessage(to Address, content *Content) *Message {
	return &Message{
		To:      to,
		Subject: content.Subject,
		Text:    content.Text,
		HTML:    content.HTML,
	}
}
