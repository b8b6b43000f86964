package models

import (
	"time"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/password"
)

// ResetTimeLayout formats reset times as UTC ISO-8601 with millisecond precision.
const ResetTimeLayout = "2006-01-02T15:04:05.000Z"

// PasswordCandidate is what the user types into the reset form.
// It lives only for the duration of one request and is never logged or stored.
type PasswordCandidate struct {
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// PasswordResetLogEntry is the payload sent to the password-reset logging function.
type PasswordResetLogEntry struct {
	Email     string `json:"email"`
	ResetTime string `json:"resetTime"`
}

// NewPasswordResetLogEntry creates a log entry for email stamped with at.
func NewPasswordResetLogEntry(email string, at time.Time) *PasswordResetLogEntry {
	return &PasswordResetLogEntry{
		Email:     email,
		ResetTime: at.UTC().Format(ResetTimeLayout),
	}
}

// LogAcknowledgement is the body of a successful logging-function call.
type LogAcknowledgement struct {
	Status string `json:"status"`
}

// LogFailure is the body of a failed logging-function call.
type LogFailure struct {
	Error string `json:"error"`
}

// PasswordStrengthRequest asks for the strength of one password.
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// PasswordResetResult is the API view of a successful reset submission.
type PasswordResetResult struct {
	State           string `json:"state"`
	RedirectTo      string `json:"redirect_to"`
	RedirectAfterMs int64  `json:"redirect_after_ms"`
}

// NewPasswordResetResult builds the API view of a success state.
func NewPasswordResetResult(state SuccessState) *PasswordResetResult {
	return &PasswordResetResult{
		State:           state.Phase(),
		RedirectTo:      state.RedirectTo,
		RedirectAfterMs: state.RedirectAfter.Milliseconds(),
	}
}

// PasswordStrengthResponse is the API view of a password's strength.
type PasswordStrengthResponse struct {
	Requirements []password.Requirement `json:"requirements"`
	Score        int                    `json:"score"`
	Tier         password.Tier          `json:"tier"`
	Label        string                 `json:"label"`
	MeterClass   string                 `json:"meter_class"`
	Percent      int                    `json:"percent"`
}

// NewPasswordStrengthResponse builds the API view of s.
func NewPasswordStrengthResponse(s password.Strength) *PasswordStrengthResponse {
	return &PasswordStrengthResponse{
		Requirements: s.Requirements,
		Score:        s.Score,
		Tier:         s.Tier,
		Label:        s.Tier.Label(),
		MeterClass:   password.MeterClass(s.Score),
		Percent:      s.Percent(),
	}
}
