package registration

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"gympoint/internal/application/registration/usecases"
	apperrors "gympoint/internal/shared/errors"
	"gympoint/internal/shared/logger"
	"gympoint/internal/shared/utils"
)

const (
	msgCreateValidationFailed = "Validation fails"
	msgUpdateValidationFailed = "Validation error"
)

type RegistrationHandler struct {
	createUC usecases.CreateRegistrationExecutor
	listUC   usecases.ListActiveRegistrationsExecutor
	updateUC usecases.UpdateRegistrationExecutor
	cancelUC usecases.CancelRegistrationExecutor
	policy   StatusPolicy
	logger   logger.Interface
}

func NewRegistrationHandler(
	createUC usecases.CreateRegistrationExecutor,
	listUC usecases.ListActiveRegistrationsExecutor,
	updateUC usecases.UpdateRegistrationExecutor,
	cancelUC usecases.CancelRegistrationExecutor,
	policy StatusPolicy,
	logger logger.Interface,
) *RegistrationHandler {
	return &RegistrationHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		policy:   policy,
		logger:   logger,
	}
}

// CreateRegistration handles POST /registrations
// @Summary Register a student into a plan
// @Description Computes end date and total price from the plan and queues a confirmation mail
// @Tags Registrations
// @Accept json
// @Produce json
// @Param request body CreateRegistrationRequest true "Registration"
// @Success 200 {object} utils.APIResponse{data=dto.RegistrationDTO}
// @Failure 401 {object} utils.APIResponse "validation, lookup or past date failure (legacy status)"
// @Failure 500 {object} utils.APIResponse
// @Router /registrations [post]
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create registration", "error", err)
		h.fail(c, h.policy.forWrite(apperrors.NewValidationError(msgCreateValidationFailed, err.Error())))
		return
	}
	if err := utils.ValidateStruct(&req, msgCreateValidationFailed); err != nil {
		h.fail(c, h.policy.forWrite(err))
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		h.fail(c, h.policy.forWrite(apperrors.NewValidationError(msgCreateValidationFailed, err.Error())))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.fail(c, h.policy.forWrite(err))
		return
	}

	utils.OKResponse(c, result)
}

// ListRegistrations handles GET /registrations/:id
// @Summary List a student's active registrations
// @Tags Registrations
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.RegistrationDTO}
// @Failure 401 {object} utils.APIResponse "invalid student id (legacy status)"
// @Failure 500 {object} utils.APIResponse
// @Router /registrations/{id} [get]
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	studentID, err := utils.ParseUintParam(c, "id", "student")
	if err != nil {
		h.fail(c, h.policy.forWrite(err))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListActiveRegistrationsQuery{StudentID: studentID})
	if err != nil {
		h.fail(c, h.policy.forWrite(err))
		return
	}

	utils.OKResponse(c, result)
}

// UpdateRegistration handles PUT /registrations/:id
// @Summary Move a registration onto another plan or start date
// @Description Recomputes end date and price. Omitted fields keep their current value.
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param request body UpdateRegistrationRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=dto.RegistrationTermsDTO}
// @Failure 401 {object} utils.APIResponse "validation, lookup or past date failure (legacy status)"
// @Failure 500 {object} utils.APIResponse
// @Router /registrations/{id} [put]
func (h *RegistrationHandler) UpdateRegistration(c *gin.Context) {
	registrationID, err := utils.ParseUintParam(c, "id", "registration")
	if err != nil {
		h.fail(c, h.policy.forWrite(err))
		return
	}

	// Every field is optional, so a missing body means no changes.
	var req UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warnw("invalid request body for update registration", "error", err)
		h.fail(c, h.policy.forWrite(apperrors.NewValidationError(msgUpdateValidationFailed, err.Error())))
		return
	}
	if err := utils.ValidateStruct(&req, msgUpdateValidationFailed); err != nil {
		h.fail(c, h.policy.forWrite(err))
		return
	}

	cmd, err := req.ToCommand(registrationID)
	if err != nil {
		h.fail(c, h.policy.forWrite(apperrors.NewValidationError(msgUpdateValidationFailed, err.Error())))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.fail(c, h.policy.forWrite(err))
		return
	}

	utils.OKResponse(c, result)
}

// CancelRegistration handles DELETE /registrations/:id
// @Summary Cancel a registration
// @Description Stamps cancelled_at and queues a cancellation mail. The row is kept.
// @Tags Registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} utils.APIResponse{data=dto.RegistrationDTO}
// @Failure 400 {object} utils.APIResponse "registration not found (legacy status)"
// @Failure 500 {object} utils.APIResponse
// @Router /registrations/{id} [delete]
func (h *RegistrationHandler) CancelRegistration(c *gin.Context) {
	registrationID, err := utils.ParseUintParam(c, "id", "registration")
	if err != nil {
		h.fail(c, h.policy.forCancel(err))
		return
	}

	result, err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelRegistrationCommand{RegistrationID: registrationID})
	if err != nil {
		h.fail(c, h.policy.forCancel(err))
		return
	}

	utils.OKResponse(c, result)
}

func (h *RegistrationHandler) fail(c *gin.Context, err error) {
	if !apperrors.IsAppError(err) {
		h.logger.Errorw("registration request failed", "path", c.Request.URL.Path, "error", err)
	}
	utils.ErrorResponseWithError(c, err)
}
