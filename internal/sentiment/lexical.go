package sentiment

import (
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/spacesedan/sentilite/internal/models"
)

const (
	lexicalBase       = 7 // tenths: 0.7
	lexicalCeiling    = 0.95
	neutralConfidence = 0.5
)

var (
	PositiveWords = lo.Uniq([]string{
		"good", "great", "excellent", "amazing", "wonderful", "fantastic",
		"love", "like", "happy", "joy", "pleased", "delighted", "awesome",
		"brilliant", "perfect", "best", "beautiful", "nice", "superb",
		"outstanding", "marvelous", "fabulous",
	})

	NegativeWords = lo.Uniq([]string{
		"bad", "terrible", "awful", "horrible", "hate", "dislike", "sad",
		"angry", "frustrated", "disappointed", "worst", "ugly", "poor",
		"pathetic", "disgusting", "annoying", "furious", "miserable",
		"depressed", "dreadful",
	})
)

// Lexical is the bag-of-words fallback classifier. It never fails and never
// performs I/O.
type Lexical struct{}

func NewLexical() Lexical {
	return Lexical{}
}

func (Lexical) Name() string {
	return "lexical"
}

// Classify counts distinct list words occurring anywhere in the text
// (substring match, not whole tokens) and picks the side with more hits.
func (Lexical) Classify(text string) models.RawClassifierOutput {
	lower := strings.ToLower(text)

	p := countMatches(lower, PositiveWords)
	n := countMatches(lower, NegativeWords)

	switch {
	case p > n:
		return models.RawClassifierOutput{Label: string(models.LabelPositive), Score: lexicalConfidence(p)}
	case n > p:
		return models.RawClassifierOutput{Label: string(models.LabelNegative), Score: lexicalConfidence(n)}
	default:
		return models.RawClassifierOutput{Label: string(models.LabelNeutral), Score: neutralConfidence}
	}
}

func countMatches(lower string, words []string) int {
	return lo.CountBy(words, func(w string) bool {
		return strings.Contains(lower, w)
	})
}

// lexicalConfidence is min(0.7 + 0.1*count, 0.95), computed in tenths so
// that small counts land on exact decimals.
func lexicalConfidence(count int) float64 {
	return math.Min(float64(lexicalBase+count)/10, lexicalCeiling)
}
