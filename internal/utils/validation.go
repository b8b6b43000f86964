package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/password"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

// InitValidator initializes the validator with custom validations
func InitValidator() {
	// Create a new validator instance
	validate = validator.New()

	// Register function to get json tag names instead of struct field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations(validate)

	log.Info().Msg("Validator initialized")
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// DecodeJSON decodes a JSON request body into the provided struct
// with improved error handling and size limits
func DecodeJSON(r *http.Request, v interface{}) error {
	// Limit the size of the request body to prevent DOS attacks
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case err.Error() == "http: request body too large":
			return NewBadRequestError(constants.MsgRequestBodyTooLarge)

		case err == io.EOF:
			return NewBadRequestError(constants.MsgEmptyRequestBody)

		case err == io.ErrUnexpectedEOF:
			return NewBadRequestError(constants.MsgMalformedJSON)

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return NewValidationError("unknown_field", fmt.Sprintf("Request body contains unknown field %s", fieldName))

		case errors.As(err, &syntaxError):
			return NewBadRequestError(fmt.Sprintf("Request body contains malformed JSON (at position %d)", syntaxError.Offset))

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return NewValidationError(unmarshalTypeError.Field, fmt.Sprintf("Must be a %s", unmarshalTypeError.Type.String()))
			}
			return NewBadRequestError(fmt.Sprintf("Request body contains incorrect JSON type (at position %d)", unmarshalTypeError.Offset))

		case errors.As(err, &invalidUnmarshalError):
			return NewInternalServerError(err)

		default:
			return NewBadRequestError(fmt.Sprintf("Error decoding JSON: %s", err.Error()))
		}
	}

	// Check for additional JSON data that would be ignored
	if dec.More() {
		return NewBadRequestError("Request body must only contain a single JSON object")
	}

	return nil
}

// ValidateStruct validates a struct using the validator
func ValidateStruct(v interface{}) error {
	if validate == nil {
		InitValidator()
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	// Handle validation errors
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		// If only one field has an error, return a specific field error
		if len(validationErrors) == 1 {
			e := validationErrors[0]
			fieldName := e.Field()
			errorMessage := getErrorMessage(e)
			return NewValidationError(fieldName, errorMessage)
		}

		// Create a validation error with details for all fields
		details := make(map[string]string)
		for _, e := range validationErrors {
			fieldName := e.Field()
			errorMessage := getErrorMessage(e)
			details[fieldName] = errorMessage
		}

		return NewValidationErrorWithDetails("Multiple validation errors", details)
	}

	// Handle other validation errors
	return NewBadRequestError(err.Error())
}

// getErrorMessage returns the message shown next to a field that failed tag e.
func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "eqfield":
		if e.Param() == "Password" {
			return constants.MsgPasswordsDoNotMatch
		}
		return fmt.Sprintf("Must match the %s field", e.Param())
	case "strong_password":
		return constants.MsgPasswordTooWeak
	default:
		return fmt.Sprintf("Failed validation on the '%s' tag", e.Tag())
	}
}

// registerCustomValidations adds custom validation functions to the validator
func registerCustomValidations(v *validator.Validate) {
	if err := v.RegisterValidation("strong_password", validateStrongPassword); err != nil {
		log.Error().Err(err).Msg("Failed to register strong_password validation")
	}
}

// validateStrongPassword passes only when every strength requirement is met.
func validateStrongPassword(fl validator.FieldLevel) bool {
	return password.Evaluate(fl.Field().String()).Tier == password.TierStrong
}

// NewValidationErrorWithDetails creates a validation error with multiple field details
func NewValidationErrorWithDetails(message string, details map[string]string) *AppError {
	detailsMap := make(map[string]interface{})
	for k, v := range details {
		detailsMap[k] = v
	}

	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Details:    detailsMap,
	}
}

// FieldErrors returns the per-field messages carried by a validation error.
// It returns nil for any other kind of error.
func FieldErrors(err error) map[string]string {
	var appErr *AppError
	if !errors.As(err, &appErr) || !errors.Is(appErr.Err, ErrValidation) {
		return nil
	}

	fields := make(map[string]string, len(appErr.Details)+1)
	for key, value := range appErr.Details {
		fields[key] = fmt.Sprint(value)
	}
	if appErr.Field != "" {
		fields[appErr.Field] = appErr.Message
	}
	return fields
}

// ValidatePassword checks a password against the strength requirements.
func ValidatePassword(pass string) error {
	if err := GetValidator().Var(pass, "strong_password"); err != nil {
		return NewValidationError(constants.FieldPassword, constants.MsgPasswordTooWeak)
	}
	return nil
}
