package models

import "fmt"

type FailureReason string

const (
	ReasonNetwork       FailureReason = "NETWORK"
	ReasonHTTPError     FailureReason = "HTTP_ERROR"
	ReasonMalformedBody FailureReason = "MALFORMED_BODY"
)

// Outcome is the result of a single remote classification attempt.
// It is one of Success, RetryableUnavailable or HardFailure.
type Outcome interface {
	outcome()
}

type Success struct {
	Raw RawClassifierOutput
}

// RetryableUnavailable means the remote model is warming up (HTTP 503).
type RetryableUnavailable struct {
	RetryAfterSeconds int
}

// HardFailure carries the failure category plus the underlying detail.
// Detail is for server-side logs only.
type HardFailure struct {
	Reason FailureReason
	Detail error
}

func (Success) outcome()              {}
func (RetryableUnavailable) outcome() {}
func (HardFailure) outcome()          {}

func (f HardFailure) String() string {
	if f.Detail == nil {
		return string(f.Reason)
	}
	return fmt.Sprintf("%s: %v", f.Reason, f.Detail)
}

type ResolutionState string

const (
	StateResolved      ResolutionState = "RESOLVED"
	StateRetryAdvisory ResolutionState = "RESOLVED_RETRY_ADVISORY"
	StateDegraded      ResolutionState = "RESOLVED_DEGRADED"
)

// Resolution is the terminal state of one pipeline run. Result is only
// meaningful for StateResolved and StateDegraded; RetryAfterSeconds only for
// StateRetryAdvisory.
type Resolution struct {
	State             ResolutionState      `json:"state"`
	Result            ClassificationResult `json:"result"`
	RetryAfterSeconds int                  `json:"retry_after_seconds,omitempty"`
}

func (r Resolution) HasResult() bool {
	return r.State == StateResolved || r.State == StateDegraded
}
