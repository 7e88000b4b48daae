package presentation

import (
	"errors"

	"github.com/spacesedan/sentilite/internal/distribution"
	"github.com/spacesedan/sentilite/internal/models"
	"github.com/spacesedan/sentilite/internal/pipeline"
)

const UNAVAILABLE_MESSAGE = "Sentiment analysis is unavailable right now. Please try again later."

// View is everything a surface needs to show for one resolution.
type View struct {
	State        models.ResolutionState
	Result       *models.ClassificationResult
	Distribution *models.ConfidenceDistribution
	Headline     string
	Confidence   string
	Notice       string
	Advisory     string
	Display      Display
}

func NewView(res models.Resolution) View {
	v := View{State: res.State}

	if res.State == models.StateRetryAdvisory {
		v.Advisory = AdvisoryMessage(res.RetryAfterSeconds)
		return v
	}
	if !res.HasResult() {
		return v
	}

	result := res.Result
	dist := distribution.Build(result)
	v.Result = &result
	v.Distribution = &dist
	v.Headline = Headline(result.Label)
	v.Confidence = FormatPercent(result.Confidence)
	v.Display = DisplayFor(result.Label)
	if res.State == models.StateDegraded {
		v.Notice = DEGRADED_NOTICE
	}
	return v
}

// UserMessage returns the text to show for a Resolve error. Only the empty
// input message is passed through; everything else is replaced.
func UserMessage(err error) string {
	var empty pipeline.EmptyInputError
	if errors.As(err, &empty) {
		return empty.Error()
	}
	return UNAVAILABLE_MESSAGE
}
