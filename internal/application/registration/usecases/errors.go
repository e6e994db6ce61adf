package usecases

import (
	"errors"
	"fmt"

	"gympoint/internal/domain/registration"
	apperrors "gympoint/internal/shared/errors"
)

// Client-facing messages, rendered as error.message in the response envelope.
// Existing clients compare them, keep the wording.
const (
	msgCreateValidationFailed = "Validation fails"
	msgUpdateValidationFailed = "Validation error"
	msgStudentNotFound        = "This student does not exists"
	msgPlanNotFound           = "This plan does not exists"
	msgRegistrationNotFound   = "This registration does not exist"
	msgCancelNotFound         = "Registration not found"
	msgPastDate               = "Past dates are not permitted"
)

func termsError(err error) error {
	if errors.Is(err, registration.ErrPastStartDate) {
		return apperrors.NewBusinessRuleError(msgPastDate, err.Error())
	}
	return fmt.Errorf("failed to calculate registration terms: %w", err)
}
