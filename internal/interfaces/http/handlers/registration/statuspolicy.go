package registration

import (
	"net/http"

	"gympoint/internal/shared/errors"
)

// StatusPolicy decides the HTTP status of client errors. In legacy mode every
// validation, lookup and business-rule failure of create, update and list is
// answered with 401, and any client error of cancel with 400, as existing
// clients expect.
type StatusPolicy struct {
	legacy bool
}

func NewStatusPolicy(legacy bool) StatusPolicy {
	return StatusPolicy{legacy: legacy}
}

func (p StatusPolicy) Legacy() bool {
	return p.legacy
}

func (p StatusPolicy) forWrite(err error) error {
	return p.override(err, http.StatusUnauthorized)
}

func (p StatusPolicy) forCancel(err error) error {
	return p.override(err, http.StatusBadRequest)
}

func (p StatusPolicy) override(err error, code int) error {
	if !p.legacy {
		return err
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Type == errors.ErrorTypeInternal {
		return err
	}
	return appErr.WithCode(code)
}
