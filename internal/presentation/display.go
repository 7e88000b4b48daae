// Package presentation turns resolutions into what a user sees: a headline
// with emoji and colour, a percentage, notices, and the distribution chart.
package presentation

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spacesedan/sentilite/internal/models"
)

const (
	DEGRADED_NOTICE = "ℹ️ Using simplified analysis (Hugging Face API unavailable). Results are approximate but still useful!"
	ADVISORY_FORMAT = "Model is loading. Please wait %d seconds and try again."
)

type Display struct {
	Emoji string
	// Hex is used by the chart and the HTML page, Style by the terminal.
	Hex   string
	Style color.Style
}

var displays = map[models.SentimentLabel]Display{
	models.LabelPositive: {Emoji: "😄", Hex: "#00c853", Style: color.New(color.FgGreen, color.OpBold)},
	models.LabelNegative: {Emoji: "😞", Hex: "#d32f2f", Style: color.New(color.FgRed, color.OpBold)},
	models.LabelNeutral:  {Emoji: "😐", Hex: "#1976d2", Style: color.New(color.FgBlue, color.OpBold)},
}

// DisplayFor maps a canonical label to its emoji and colours. Anything
// unrecognised is shown as neutral.
func DisplayFor(label models.SentimentLabel) Display {
	if d, ok := displays[label]; ok {
		return d
	}
	return displays[models.LabelNeutral]
}

// Headline is the plain "<emoji> <LABEL>" line.
func Headline(label models.SentimentLabel) string {
	return fmt.Sprintf("%s %s", DisplayFor(label).Emoji, label)
}

// FormatPercent renders a confidence in [0,1] as a percentage with two decimals.
func FormatPercent(confidence float64) string {
	return fmt.Sprintf("%.2f%%", confidence*100)
}

func AdvisoryMessage(retryAfterSeconds int) string {
	return fmt.Sprintf(ADVISORY_FORMAT, retryAfterSeconds)
}
