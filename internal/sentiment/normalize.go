package sentiment

import (
	"strings"

	"github.com/spacesedan/sentilite/internal/models"
)

// Remote model token scheme (distilbert SST-2 without id2label).
const (
	remoteNegativeToken = "LABEL_0"
	remotePositiveToken = "LABEL_1"
)

// Normalize maps a raw classifier label onto the canonical taxonomy. The
// match is case-sensitive; anything unrecognised is NEUTRAL.
func Normalize(raw string) models.SentimentLabel {
	switch {
	case strings.Contains(raw, string(models.LabelPositive)) || raw == remotePositiveToken:
		return models.LabelPositive
	case strings.Contains(raw, string(models.LabelNegative)) || raw == remoteNegativeToken:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}
