package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/spacesedan/sentilite/internal/models"
	"github.com/spacesedan/sentilite/internal/sentiment"
)

type RemoteClassifier interface {
	Classify(ctx context.Context, text string) models.Outcome
}

// LocalClassifier must never fail; it is the terminal fallback.
type LocalClassifier interface {
	Classify(text string) models.RawClassifierOutput
}

type Resolver struct {
	remote          RemoteClassifier
	local           LocalClassifier
	fallbackEnabled bool
}

// NewResolver builds a resolver with fallback enabled.
func NewResolver(remote RemoteClassifier, local LocalClassifier) *Resolver {
	return &Resolver{
		remote:          remote,
		local:           local,
		fallbackEnabled: true,
	}
}

func (r *Resolver) WithFallback(enabled bool) *Resolver {
	r.fallbackEnabled = enabled
	return r
}

func (r *Resolver) FallbackEnabled() bool {
	return r.fallbackEnabled
}

// Resolve runs one analysis. The only error for valid configuration is
// ErrEmptyInput; with fallback disabled a remote hard failure is returned as
// *RemoteUnavailableError.
func (r *Resolver) Resolve(ctx context.Context, text string) (models.Resolution, error) {
	requestID := RequestIDFrom(ctx)
	text = strings.TrimSpace(text)
	if text == "" {
		slog.Debug("[Resolver] Rejected empty input", slog.String("request_id", requestID))
		return models.Resolution{}, ErrEmptyInput
	}

	start := time.Now()
	outcome := r.remote.Classify(ctx, text)

	switch o := outcome.(type) {
	case models.Success:
		if err := validateRaw(o.Raw); err != nil {
			return r.degrade(requestID, text, models.HardFailure{Reason: models.ReasonMalformedBody, Detail: err})
		}
		result := models.ClassificationResult{
			Label:      sentiment.Normalize(o.Raw.Label),
			Confidence: o.Raw.Score,
			Source:     models.SourceRemote,
		}
		slog.Info("[Resolver] Resolved remotely",
			slog.String("request_id", requestID),
			slog.String("label", string(result.Label)),
			slog.Float64("confidence", result.Confidence),
			slog.Duration("elapsed", time.Since(start)))
		return models.Resolution{State: models.StateResolved, Result: result}, nil

	case models.RetryableUnavailable:
		slog.Info("[Resolver] Remote model warming up, advising retry",
			slog.String("request_id", requestID),
			slog.Int("retry_after", o.RetryAfterSeconds))
		return models.Resolution{
			State:             models.StateRetryAdvisory,
			RetryAfterSeconds: o.RetryAfterSeconds,
		}, nil

	case models.HardFailure:
		return r.degrade(requestID, text, o)

	default:
		return r.degrade(requestID, text, models.HardFailure{
			Reason: models.ReasonNetwork,
			Detail: fmt.Errorf("unexpected outcome %T", outcome),
		})
	}
}

func (r *Resolver) degrade(requestID, text string, failure models.HardFailure) (models.Resolution, error) {
	// Failure detail stays in the server log; callers only see the source.
	slog.Warn("[Resolver] Remote classification failed",
		slog.String("request_id", requestID),
		slog.String("reason", string(failure.Reason)),
		slog.String("detail", failure.String()),
		slog.Bool("fallback_enabled", r.fallbackEnabled))

	if !r.fallbackEnabled {
		return models.Resolution{}, &RemoteUnavailableError{Reason: failure.Reason, Err: failure.Detail}
	}

	raw := r.local.Classify(text)
	result := models.ClassificationResult{
		Label:      sentiment.Normalize(raw.Label),
		Confidence: raw.Score,
		Source:     models.SourceLocal,
	}
	slog.Info("[Resolver] Resolved with local fallback",
		slog.String("request_id", requestID),
		slog.String("label", string(result.Label)),
		slog.Float64("confidence", result.Confidence))

	return models.Resolution{State: models.StateDegraded, Result: result}, nil
}

var errUnusableRaw = errors.New("unusable classifier output")

func validateRaw(raw models.RawClassifierOutput) error {
	if raw.Label == "" {
		return fmt.Errorf("%w: empty label", errUnusableRaw)
	}
	if math.IsNaN(raw.Score) || math.IsInf(raw.Score, 0) || raw.Score < 0 || raw.Score > 1 {
		return fmt.Errorf("%w: score %v out of range", errUnusableRaw, raw.Score)
	}
	return nil
}
