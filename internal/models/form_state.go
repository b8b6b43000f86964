package models

import (
	"time"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// FormState is the state of the password-reset form.
//
// Exactly one of IdleState, LoadingState, SuccessState and ErrorState holds
// at a time. The interface is sealed so no other package can add variants.
type FormState interface {
	// Phase names the variant.
	Phase() string
	formState()
}

// IdleState accepts input.
type IdleState struct{}

// LoadingState disables the inputs while a submission is in flight.
type LoadingState struct{}

// SuccessState replaces the form with a confirmation and schedules a redirect.
type SuccessState struct {
	RedirectTo    string
	RedirectAfter time.Duration
}

// ErrorState shows Message and re-enables the form.
type ErrorState struct {
	Message string
}

func (IdleState) Phase() string    { return constants.PhaseIdle }
func (LoadingState) Phase() string { return constants.PhaseLoading }
func (SuccessState) Phase() string { return constants.PhaseSuccess }
func (ErrorState) Phase() string   { return constants.PhaseError }

func (IdleState) formState()    {}
func (LoadingState) formState() {}
func (SuccessState) formState() {}
func (ErrorState) formState()   {}

// InputsDisabled reports whether the form inputs must be disabled in state.
func InputsDisabled(state FormState) bool {
	_, loading := state.(LoadingState)
	return loading
}
