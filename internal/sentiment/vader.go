package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/sentilite/internal/models"
)

const vaderThreshold = 0.20

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// Vader is an alternative local classifier backed by the VADER lexicon.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Name() string {
	return "vader"
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := tagPattern.ReplaceAllString(string(output), " ")
	plainText = strings.Join(strings.Fields(plainText), " ")

	return RemoveLinks(plainText)
}

// Classify thresholds the compound score at +/-0.20. Polar labels use
// |compound| as confidence, NEUTRAL uses 1-|compound|.
func (v *Vader) Classify(text string) models.RawClassifierOutput {
	// Links are dropped before rendering so the URL text never reaches VADER.
	plainText := ConvertMarkdownToText(RemoveLinks(text))
	score := v.analyzer.PolarityScores(plainText).Compound
	magnitude := math.Min(math.Abs(score), 1)

	switch {
	case score >= vaderThreshold:
		return models.RawClassifierOutput{Label: string(models.LabelPositive), Score: magnitude}
	case score <= -vaderThreshold:
		return models.RawClassifierOutput{Label: string(models.LabelNegative), Score: magnitude}
	default:
		return models.RawClassifierOutput{Label: string(models.LabelNeutral), Score: 1 - magnitude}
	}
}
