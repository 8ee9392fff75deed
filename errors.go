package reportengine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds the composer distinguishes.
var (
	// ErrNotFound reports that the requested primary record does not exist.
	// The host maps it to HTTP 404.
	ErrNotFound = errors.New("reportengine: record not found")

	// ErrDependencyMissing reports that a referenced sub-report or file did
	// not resolve. The composer logs it and continues; it never aborts a build.
	ErrDependencyMissing = errors.New("reportengine: dependency missing")
)

// RenderError represents an unrecoverable rendering failure during a specific
// build step. It wraps an underlying error and includes the step name for
// context. The host maps it to HTTP 500.
type RenderError struct {
	Step string // build step, e.g. "body", "merge", "back-cover"
	Err  error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reportengine: render %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("reportengine: render %s: unknown error", e.Step)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a RenderError wrapping err with step context.
func NewRenderError(step string, err error) *RenderError {
	return &RenderError{Step: step, Err: err}
}
