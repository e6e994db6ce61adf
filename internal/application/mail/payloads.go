package mail

import "time"

// Queue keys. The values are part of the queue contract and must not change.
const (
	RegistrationMailKey = "RegistrationMail"
	CancellationMailKey = "CancellationMail"
)

type StudentPayload struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PlanPayload struct {
	ID       uint    `json:"id,omitempty"`
	Title    string  `json:"title"`
	Duration int     `json:"duration,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// RegistrationMailPayload is enqueued after a registration is created. Price
// is the registration total; FormattedEndDate is already in display form.
type RegistrationMailPayload struct {
	Student          StudentPayload `json:"student"`
	Plan             PlanPayload    `json:"plan"`
	Price            float64        `json:"price"`
	FormattedEndDate string         `json:"formatted_end_date"`
}

type CancelledRegistrationPayload struct {
	ID          uint           `json:"id"`
	StudentID   uint           `json:"student_id"`
	PlanID      uint           `json:"plan_id"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Price       float64        `json:"price"`
	CancelledAt *time.Time     `json:"cancelled_at"`
	Student     StudentPayload `json:"student"`
	Plan        PlanPayload    `json:"plan"`
}

// CancellationMailPayload is enqueued after a registration is cancelled.
type CancellationMailPayload struct {
	Registration CancelledRegistrationPayload `json:"registration"`
}
