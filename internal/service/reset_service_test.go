package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// MockLogFunctionClient is a mock implementation of LogFunctionClient
type MockLogFunctionClient struct {
	mock.Mock
}

func (m *MockLogFunctionClient) LogPasswordReset(ctx context.Context, entry *models.PasswordResetLogEntry) (*models.LogAcknowledgement, error) {
	args := m.Called(ctx, entry)
	if ack := args.Get(0); ack != nil {
		return ack.(*models.LogAcknowledgement), args.Error(1)
	}
	return nil, args.Error(1)
}

func testResetSettings() *config.ResetSettings {
	return &config.ResetSettings{
		SimulatedDelay:   constants.DefaultSimulatedDelay,
		RedirectTo:       constants.DefaultRedirectTarget,
		RedirectDelay:    constants.DefaultRedirectDelay,
		PlaceholderEmail: constants.DefaultPlaceholderEmail,
	}
}

// newTestService builds a service with a fixed clock and a sleeper that records waits.
func newTestService(client LogFunctionClient, settings *config.ResetSettings, slept *[]time.Duration) *PasswordResetService {
	s := NewPasswordResetService(client, settings)
	s.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 45, 123000000, time.UTC)
	}
	s.sleep = func(ctx context.Context, d time.Duration) error {
		if slept != nil {
			*slept = append(*slept, d)
		}
		return ctx.Err()
	}
	return s
}

func collect(states *[]models.FormState) func(models.FormState) {
	return func(state models.FormState) {
		*states = append(*states, state)
	}
}

func TestNewPasswordResetService(t *testing.T) {
	client := new(MockLogFunctionClient)
	settings := testResetSettings()

	s := NewPasswordResetService(client, settings)

	require.NotNil(t, s)
	assert.Equal(t, client, s.logClient)
	assert.Equal(t, settings, s.settings)
	assert.NotNil(t, s.now)
	assert.NotNil(t, s.sleep)
}

func TestPasswordResetService_Validate(t *testing.T) {
	tests := []struct {
		name            string
		candidate       models.PasswordCandidate
		enforceStrength bool
		wantFields      map[string]string
	}{
		{
			name:      "matching passwords",
			candidate: models.PasswordCandidate{Password: "abc", ConfirmPassword: "abc"},
		},
		{
			name:       "mismatch reported on confirmation",
			candidate:  models.PasswordCandidate{Password: "abc", ConfirmPassword: "abd"},
			wantFields: map[string]string{constants.FieldConfirmPassword: constants.MsgPasswordsDoNotMatch},
		},
		{
			name:       "empty password is required",
			candidate:  models.PasswordCandidate{},
			wantFields: map[string]string{constants.FieldPassword: "This field is required"},
		},
		{
			name:      "weak password accepted without enforcement",
			candidate: models.PasswordCandidate{Password: "short", ConfirmPassword: "short"},
		},
		{
			name:            "weak password rejected with enforcement",
			candidate:       models.PasswordCandidate{Password: "short", ConfirmPassword: "short"},
			enforceStrength: true,
			wantFields:      map[string]string{constants.FieldPassword: constants.MsgPasswordTooWeak},
		},
		{
			name:            "strong password accepted with enforcement",
			candidate:       models.PasswordCandidate{Password: "Abcdefg1!", ConfirmPassword: "Abcdefg1!"},
			enforceStrength: true,
		},
		{
			name:            "weak and mismatched with enforcement",
			candidate:       models.PasswordCandidate{Password: "short", ConfirmPassword: "other"},
			enforceStrength: true,
			wantFields: map[string]string{
				constants.FieldPassword:        constants.MsgPasswordTooWeak,
				constants.FieldConfirmPassword: constants.MsgPasswordsDoNotMatch,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testResetSettings()
			settings.EnforceStrength = tt.enforceStrength
			s := newTestService(new(MockLogFunctionClient), settings, nil)

			err := s.Validate(&tt.candidate)

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, utils.IsValidationError(err))
			assert.Equal(t, tt.wantFields, utils.FieldErrors(err))
		})
	}
}

func TestPasswordResetService_Submit_Success(t *testing.T) {
	client := new(MockLogFunctionClient)
	expectedEntry := &models.PasswordResetLogEntry{
		Email:     constants.DefaultPlaceholderEmail,
		ResetTime: "2024-05-01T12:30:45.123Z",
	}
	client.On("LogPasswordReset", mock.Anything, expectedEntry).
		Return(&models.LogAcknowledgement{Status: constants.LogFunctionStatusLogged}, nil).
		Once()

	var slept []time.Duration
	s := newTestService(client, testResetSettings(), &slept)

	var observed []models.FormState
	state, err := s.Submit(context.Background(), &models.PasswordCandidate{Password: "abc", ConfirmPassword: "abc"}, collect(&observed))

	require.NoError(t, err)
	assert.Equal(t, models.SuccessState{
		RedirectTo:    constants.LoginPath,
		RedirectAfter: 3 * time.Second,
	}, state)
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, slept)
	assert.Equal(t, []models.FormState{models.LoadingState{}, state}, observed)
	client.AssertExpectations(t)
	client.AssertNumberOfCalls(t, "LogPasswordReset", 1)
}

func TestPasswordResetService_Submit_CollaboratorError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "message passed through",
			err:         errors.New("Function unavailable"),
			wantMessage: "Function unavailable",
		},
		{
			name:        "empty message falls back",
			err:         errors.New(""),
			wantMessage: constants.DefaultErrorMessage,
		},
		{
			name:        "upstream error message",
			err:         utils.NewUpstreamError("boom", nil),
			wantMessage: "boom",
		},
		{
			name:        "upstream error without message",
			err:         &utils.AppError{Err: utils.ErrUpstream},
			wantMessage: constants.DefaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockLogFunctionClient)
			client.On("LogPasswordReset", mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			s := newTestService(client, testResetSettings(), nil)

			var observed []models.FormState
			state, err := s.Submit(context.Background(), &models.PasswordCandidate{Password: "abc", ConfirmPassword: "abc"}, collect(&observed))

			require.NoError(t, err)
			assert.Equal(t, models.ErrorState{Message: tt.wantMessage}, state)
			require.Len(t, observed, 2)
			assert.Equal(t, models.LoadingState{}, observed[0])
			assert.False(t, models.InputsDisabled(state))
			client.AssertNumberOfCalls(t, "LogPasswordReset", 1)
		})
	}
}

func TestPasswordResetService_Submit_Mismatch(t *testing.T) {
	client := new(MockLogFunctionClient)
	s := newTestService(client, testResetSettings(), nil)

	var observed []models.FormState
	state, err := s.Submit(context.Background(), &models.PasswordCandidate{Password: "abc", ConfirmPassword: "abd"}, collect(&observed))

	require.Error(t, err)
	assert.Equal(t, map[string]string{constants.FieldConfirmPassword: constants.MsgPasswordsDoNotMatch}, utils.FieldErrors(err))
	assert.Equal(t, models.IdleState{}, state)
	assert.Empty(t, observed)
	client.AssertNotCalled(t, "LogPasswordReset", mock.Anything, mock.Anything)
}

func TestPasswordResetService_Submit_ContextCancelled(t *testing.T) {
	client := new(MockLogFunctionClient)
	s := newTestService(client, testResetSettings(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := s.Submit(ctx, &models.PasswordCandidate{Password: "abc", ConfirmPassword: "abc"}, nil)

	require.NoError(t, err)
	errState, ok := state.(models.ErrorState)
	require.True(t, ok)
	assert.Equal(t, context.Canceled.Error(), errState.Message)
	client.AssertNotCalled(t, "LogPasswordReset", mock.Anything, mock.Anything)
}

func TestPasswordResetService_Submit_CustomSettings(t *testing.T) {
	settings := &config.ResetSettings{
		SimulatedDelay:   0,
		RedirectTo:       "/elsewhere",
		RedirectDelay:    time.Second,
		PlaceholderEmail: "someone@example.org",
	}
	client := new(MockLogFunctionClient)
	client.On("LogPasswordReset", mock.Anything, mock.MatchedBy(func(entry *models.PasswordResetLogEntry) bool {
		return entry.Email == "someone@example.org"
	})).Return(&models.LogAcknowledgement{Status: constants.LogFunctionStatusLogged}, nil)

	s := newTestService(client, settings, nil)
	state, err := s.Submit(context.Background(), &models.PasswordCandidate{Password: "x", ConfirmPassword: "x"}, nil)

	require.NoError(t, err)
	assert.Equal(t, models.SuccessState{RedirectTo: "/elsewhere", RedirectAfter: time.Second}, state)
	client.AssertExpectations(t)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
