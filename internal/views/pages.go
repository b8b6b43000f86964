package views

import (
	"fmt"
	"time"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/password"
)

// Page holds what the layout needs.
type Page struct {
	AppName    string
	Title      string
	StaticPath string
	Redirect   *Redirect
	Form       AuthForm
}

// AuthForm describes the card around a form.
type AuthForm struct {
	Title       string
	Description string
	Action      string
}

// Redirect schedules a one-time navigation through a meta refresh.
type Redirect struct {
	URL     string
	Seconds int
}

// RefreshHeader formats the redirect as a Refresh header value.
func (r *Redirect) RefreshHeader() string {
	return fmt.Sprintf("%d;url=%s", r.Seconds, r.URL)
}

// LoginPage is the sign-in view.
type LoginPage struct {
	Page
	ResetPasswordPath string
}

// NewLoginPage builds the sign-in view.
func NewLoginPage(appName string) *LoginPage {
	return &LoginPage{
		Page: Page{
			AppName:    appName,
			Title:      "Sign in",
			StaticPath: constants.StaticPath,
			Form: AuthForm{
				Title:  "Sign in to your account",
				Action: constants.LoginPath,
			},
		},
		ResetPasswordPath: constants.ResetPasswordPath,
	}
}

// StrengthView is the meter and checklist for one password.
type StrengthView struct {
	Requirements []password.Requirement
	Score        int
	Label        string
	MeterClass   string
	WidthClass   string
}

// NewStrengthView builds the meter and checklist for s.
func NewStrengthView(s password.Strength) StrengthView {
	return StrengthView{
		Requirements: s.Requirements,
		Score:        s.Score,
		Label:        s.Tier.Label(),
		MeterClass:   password.MeterClass(s.Score),
		WidthClass:   fmt.Sprintf("w-%d", s.Percent()),
	}
}

// ResetPasswordPage is the password-reset view in one form state.
type ResetPasswordPage struct {
	Page
	Phase        string
	Loading      bool
	Success      *models.SuccessState
	Error        string
	FieldErrors  map[string]string
	ShowStrength bool
	Strength     StrengthView
}

// NewResetPasswordPage builds the reset view for state.
// entered is the password that was submitted, if any; it drives the
// checklist and is never written back into the page.
func NewResetPasswordPage(appName string, state models.FormState, entered string, fieldErrors map[string]string) *ResetPasswordPage {
	page := &ResetPasswordPage{
		Page: Page{
			AppName:    appName,
			Title:      "Reset Password",
			StaticPath: constants.StaticPath,
			Form: AuthForm{
				Title:       "Reset Password",
				Description: "Enter your new password below",
				Action:      constants.ResetPasswordPath,
			},
		},
		Phase:        state.Phase(),
		Loading:      models.InputsDisabled(state),
		FieldErrors:  fieldErrors,
		ShowStrength: entered != "",
		Strength:     NewStrengthView(password.Evaluate(entered)),
	}

	switch s := state.(type) {
	case models.SuccessState:
		page.Success = &s
		page.Title = "Password Reset Successful"
		page.Redirect = &Redirect{
			URL:     s.RedirectTo,
			Seconds: redirectSeconds(s.RedirectAfter),
		}
	case models.ErrorState:
		page.Error = s.Message
		if page.Error == "" {
			page.Error = constants.DefaultErrorMessage
		}
	}

	return page
}

// PasswordInvalid mirrors aria-invalid on the password input.
func (p *ResetPasswordPage) PasswordInvalid() bool {
	if _, exists := p.FieldErrors[constants.FieldPassword]; exists {
		return true
	}
	return p.ShowStrength && p.Strength.Score < constants.StrengthRequirementCount
}

// FieldError returns the inline error for field, if any.
func (p *ResetPasswordPage) FieldError(field string) string {
	return p.FieldErrors[field]
}

// redirectSeconds rounds d up to whole seconds for a meta refresh.
func redirectSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
