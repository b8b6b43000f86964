// Package handlers provides HTTP request handlers for the HideMe auth screens.
package handlers

import (
	"context"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/models"
)

// PasswordResetServiceInterface defines the methods required from the reset service.
// Both the page handlers and the JSON API drive submissions through it.
type PasswordResetServiceInterface interface {
	// Submit runs one reset submission.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - candidate: The password and its confirmation
	//   - observe: Receives every state the form passes through; may be nil
	//
	// Returns:
	//   - The final form state (idle, success or error)
	//   - A validation error when the candidate was rejected before submission
	Submit(ctx context.Context, candidate *models.PasswordCandidate, observe func(models.FormState)) (models.FormState, error)
}

// PageRenderer defines the methods required to render the auth screens.
type PageRenderer interface {
	// AppName returns the name shown in page titles.
	AppName() string

	// Render executes the named view with data.
	Render(name string, data interface{}) ([]byte, error)
}
