package pipeline

import (
	"fmt"

	"github.com/spacesedan/sentilite/internal/models"
)

// EmptyInputError is returned for empty or whitespace-only text. Its message
// is safe to show to the user as is.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "Please enter a sentence."
}

var ErrEmptyInput error = EmptyInputError{}

// RemoteUnavailableError is only returned when fallback is disabled and the
// remote classifier hard-failed.
type RemoteUnavailableError struct {
	Reason models.FailureReason
	Err    error
}

func (e *RemoteUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote classifier unavailable (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("remote classifier unavailable (%s)", e.Reason)
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Err }
