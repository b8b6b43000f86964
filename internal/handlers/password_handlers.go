package handlers

import (
	"net/http"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/password"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// PasswordHandler serves the JSON endpoints behind the reset screen.
type PasswordHandler struct {
	resetService PasswordResetServiceInterface
}

// NewPasswordHandler creates a new PasswordHandler
func NewPasswordHandler(resetService PasswordResetServiceInterface) *PasswordHandler {
	return &PasswordHandler{
		resetService: resetService,
	}
}

// Strength evaluates a password for the live strength meter.
// The password is never logged or stored.
func (h *PasswordHandler) Strength(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordStrengthRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, models.NewPasswordStrengthResponse(password.Evaluate(req.Password)))
}

// Reset submits a password reset.
//
// Responses:
//   - 200 with the redirect the client should perform
//   - 400 with per-field validation errors
//   - 502 when the logging function call failed
func (h *PasswordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var candidate models.PasswordCandidate
	if err := utils.DecodeJSON(r, &candidate); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	state, err := h.resetService.Submit(r.Context(), &candidate, nil)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	switch s := state.(type) {
	case models.SuccessState:
		utils.JSON(w, http.StatusOK, models.NewPasswordResetResult(s))
	case models.ErrorState:
		utils.Error(w, http.StatusBadGateway, constants.CodeResetFailed, s.Message, nil)
	default:
		utils.InternalServerError(w, nil)
	}
}
