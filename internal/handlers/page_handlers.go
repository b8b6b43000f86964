package handlers

import (
	"net/http"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/metrics"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/views"
)

// PageHandler serves the server-rendered sign-in and password-reset screens.
type PageHandler struct {
	renderer     PageRenderer
	resetService PasswordResetServiceInterface
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(renderer PageRenderer, resetService PasswordResetServiceInterface) *PageHandler {
	return &PageHandler{
		renderer:     renderer,
		resetService: resetService,
	}
}

// Root sends the browser to the sign-in screen.
func (h *PageHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, constants.LoginPath, http.StatusSeeOther)
}

// LoginPage renders the sign-in screen.
func (h *PageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, constants.ViewLogin, constants.PhaseIdle, views.NewLoginPage(h.renderer.AppName()))
}

// Login accepts a sign-in submission.
// Sign-in is not wired to any identity provider, so the credentials are
// never read and the browser is sent back to the form.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, constants.LoginPath, http.StatusSeeOther)
}

// ResetPasswordPage renders the reset screen in its idle state.
func (h *PageHandler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	page := views.NewResetPasswordPage(h.renderer.AppName(), models.IdleState{}, "", nil)
	h.render(w, http.StatusOK, constants.ViewResetPassword, page.Phase, page)
}

// ResetPassword handles a submitted reset form.
//
// A rejected candidate re-renders the form with inline errors. An accepted one
// runs the submission and renders its final state: the success panel with a
// scheduled redirect, or the form with an error banner.
func (h *PageHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodySize)
	if err := r.ParseForm(); err != nil {
		utils.BadRequest(w, constants.MsgMalformedForm, nil)
		return
	}

	candidate := &models.PasswordCandidate{
		Password:        r.PostFormValue(constants.FieldPassword),
		ConfirmPassword: r.PostFormValue(constants.FieldConfirmPassword),
	}

	state, err := h.resetService.Submit(r.Context(), candidate, nil)
	if err != nil {
		if !utils.IsValidationError(err) {
			utils.ErrorFromAppError(w, utils.ParseError(err))
			return
		}
		page := views.NewResetPasswordPage(h.renderer.AppName(), state, candidate.Password, utils.FieldErrors(err))
		h.render(w, http.StatusBadRequest, constants.ViewResetPassword, page.Phase, page)
		return
	}

	page := views.NewResetPasswordPage(h.renderer.AppName(), state, candidate.Password, nil)

	statusCode := http.StatusOK
	switch state.(type) {
	case models.SuccessState:
		w.Header().Set(constants.HeaderRefresh, page.Redirect.RefreshHeader())
	case models.ErrorState:
		statusCode = http.StatusBadGateway
	}

	h.render(w, statusCode, constants.ViewResetPassword, page.Phase, page)
}

// render writes a rendered view, or a 500 if rendering fails.
func (h *PageHandler) render(w http.ResponseWriter, statusCode int, view, phase string, data interface{}) {
	body, err := h.renderer.Render(view, data)
	if err != nil {
		utils.LogError(err, "Failed to render page", map[string]interface{}{"view": view})
		utils.InternalServerError(w, err)
		return
	}

	metrics.RecordPageRender(view, phase)
	utils.HTML(w, statusCode, body)
}
