package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/metrics"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// LogFunctionClient invokes the password-reset logging function.
type LogFunctionClient interface {
	LogPasswordReset(ctx context.Context, entry *models.PasswordResetLogEntry) (*models.LogAcknowledgement, error)
}

// PasswordResetService drives a reset submission from the form to the logging function.
// No password ever leaves this service: only the placeholder email and the reset time are sent.
type PasswordResetService struct {
	logClient LogFunctionClient
	settings  *config.ResetSettings
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewPasswordResetService creates a new PasswordResetService
func NewPasswordResetService(logClient LogFunctionClient, settings *config.ResetSettings) *PasswordResetService {
	return &PasswordResetService{
		logClient: logClient,
		settings:  settings,
		now:       time.Now,
		sleep:     sleepContext,
	}
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Validate checks a candidate before submission.
// A confirmation that differs from the password is reported on the confirmation field.
// The strength requirements are only applied when enforcement is enabled.
func (s *PasswordResetService) Validate(candidate *models.PasswordCandidate) error {
	fields := utils.FieldErrors(utils.ValidateStruct(candidate))
	if fields == nil {
		fields = make(map[string]string)
	}

	if s.settings.EnforceStrength && candidate.Password != "" {
		if _, exists := fields[constants.FieldPassword]; !exists {
			if err := utils.ValidatePassword(candidate.Password); err != nil {
				fields[constants.FieldPassword] = constants.MsgPasswordTooWeak
			}
		}
	}

	if len(fields) > 0 {
		return utils.NewFieldValidationError(fields)
	}
	return nil
}

// Submit runs one reset submission and returns the state it ends in.
//
// A candidate that fails validation never reaches the logging function: the form
// stays idle and the validation error is returned. Otherwise observe (if not nil)
// receives the loading state, the simulated delay elapses, exactly one log entry is
// sent and the returned state is either a success or an error, never loading.
func (s *PasswordResetService) Submit(ctx context.Context, candidate *models.PasswordCandidate, observe func(models.FormState)) (models.FormState, error) {
	if err := s.Validate(candidate); err != nil {
		metrics.RecordResetSubmission(constants.OutcomeInvalid)
		return models.IdleState{}, err
	}

	emit := func(state models.FormState) {
		if observe != nil {
			observe(state)
		}
	}
	emit(models.LoadingState{})

	state := s.complete(ctx)
	emit(state)
	return state, nil
}

// complete performs the delayed logging call and maps its result to a final state.
func (s *PasswordResetService) complete(ctx context.Context) models.FormState {
	if err := s.sleep(ctx, s.settings.SimulatedDelay); err != nil {
		metrics.RecordResetSubmission(constants.OutcomeError)
		return models.ErrorState{Message: errorMessage(err)}
	}

	entry := models.NewPasswordResetLogEntry(s.settings.PlaceholderEmail, s.now())

	start := time.Now()
	_, err := s.logClient.LogPasswordReset(ctx, entry)
	metrics.RecordLogFunctionCall(time.Since(start))

	if err != nil {
		log.Warn().Err(err).Bool("upstream", utils.IsUpstreamError(err)).Msg("Password reset submission failed")
		metrics.RecordResetSubmission(constants.OutcomeError)
		return models.ErrorState{Message: errorMessage(err)}
	}

	metrics.RecordResetSubmission(constants.OutcomeSuccess)
	return models.SuccessState{
		RedirectTo:    s.settings.RedirectTo,
		RedirectAfter: s.settings.RedirectDelay,
	}
}

// errorMessage returns the user-facing message of err, falling back to the generic one.
func errorMessage(err error) string {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		if appErr.Message != "" {
			return appErr.Message
		}
		return constants.DefaultErrorMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return constants.DefaultErrorMessage
}
