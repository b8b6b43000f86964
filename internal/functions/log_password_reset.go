// Package functions contains hosted-function style endpoints.
//
// A function is a single http.Handler that answers every method itself,
// carries its own CORS headers and speaks a fixed bare JSON wire format
// rather than the API response envelope. Functions are mounted on the main
// server under /functions/v1 and can also run as standalone binaries.
package functions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/metrics"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// errNullBody is returned when the request body is the JSON literal null.
var errNullBody = errors.New("request body is null")

// LogPasswordResetHandler records password-reset events.
//
// OPTIONS requests get the CORS preflight answer. Every other request is
// treated as a log call: the body must be exactly one JSON value other than
// null, and its email and resetTime members are read when present. The event
// is written as one structured log line and acknowledged with {"status":"logged"}.
// Nothing is validated, deduplicated or stored.
type LogPasswordResetHandler struct {
	now   func() time.Time
	newID func() string
}

// NewLogPasswordResetHandler creates a new LogPasswordResetHandler
func NewLogPasswordResetHandler() *LogPasswordResetHandler {
	return &LogPasswordResetHandler{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetCORSHeaders adds the header set shared by every function response.
func SetCORSHeaders(w http.ResponseWriter) {
	w.Header().Set(constants.HeaderAccessControlAllowOrigin, constants.FunctionAllowOrigin)
	w.Header().Set(constants.HeaderAccessControlAllowHeaders, constants.FunctionAllowHeaders)
}

// ServeHTTP handles one invocation of the function.
func (h *LogPasswordResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	SetCORSHeaders(w)

	if r.Method == http.MethodOptions {
		metrics.RecordLogFunctionInvocation(constants.ResultPreflight)
		utils.Text(w, http.StatusOK, constants.LogFunctionPreflightBody)
		return
	}

	eventID := h.newID()

	entry, err := decodeLogEntry(w, r)
	if err != nil {
		utils.LogPasswordResetFailure(r.Context(), eventID, err)
		metrics.RecordLogFunctionInvocation(constants.ResultFailed)
		utils.RawJSON(w, http.StatusInternalServerError, models.LogFailure{Error: constants.MsgFailedToLogPasswordReset})
		return
	}

	utils.LogPasswordReset(r.Context(), eventID, entry.Email, entry.ResetTime, h.now())
	metrics.RecordLogFunctionInvocation(constants.ResultLogged)
	utils.RawJSON(w, http.StatusOK, models.LogAcknowledgement{Status: constants.LogFunctionStatusLogged})
}

// decodeLogEntry reads the {email, resetTime} body of a log call.
// Any single JSON value except null is accepted. Members that are missing, or a
// body that is not an object, yield empty fields; non-string members are kept
// as their JSON text. Unknown members are ignored.
func decodeLogEntry(w http.ResponseWriter, r *http.Request) (*models.PasswordResetLogEntry, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxRequestBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read log entry: %w", err)
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode log entry: %w", err)
	}
	if payload == nil {
		return nil, errNullBody
	}

	members, _ := payload.(map[string]interface{})
	return &models.PasswordResetLogEntry{
		Email:     memberText(members["email"]),
		ResetTime: memberText(members["resetTime"]),
	}, nil
}

// memberText renders a decoded JSON member as a log field.
func memberText(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		text, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(text)
	}
}
