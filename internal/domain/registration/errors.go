package registration

import "errors"

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPastStartDate        = errors.New("start date is in the past")
	ErrIDAlreadySet         = errors.New("registration ID already set")
	ErrPlanRequired         = errors.New("plan is required")
)
