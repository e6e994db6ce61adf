package mail

import (
	"context"
	"encoding/json"
	"fmt"

	"gympoint/internal/shared/logger"
)

// CancellationMailJob tells the student their registration was cancelled.
type CancellationMailJob struct {
	sender   Sender
	renderer Renderer
	logger   logger.Interface
}

func NewCancellationMailJob(sender Sender, renderer Renderer, logger logger.Interface) *CancellationMailJob {
	return &CancellationMailJob{
		sender:   sender,
		renderer: renderer,
		logger:   logger,
	}
}

func (j *CancellationMailJob) Key() string {
	return CancellationMailKey
}

func (j *CancellationMailJob) Handle(ctx context.Context, payload json.RawMessage) error {
	var data CancellationMailPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", CancellationMailKey, err)
	}

	st := data.Registration.Student
	if st.Email == "" {
		return fmt.Errorf("%s payload has no student email", CancellationMailKey)
	}

	content, err := j.renderer.Render(CancellationTemplate, data)
	if err != nil {
		return err
	}

	if err := j.sender.Send(ctx, newMessage(Address{Name: st.Name, Email: st.Email}, content)); err != nil {
		return err
	}

	j.logger.Infow("cancellation mail sent", "registration_id", data.Registration.ID)
	return nil
}
