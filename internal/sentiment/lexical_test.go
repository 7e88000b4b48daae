package sentiment

import (
	"strings"
	"testing"

	"github.com/spacesedan/sentilite/internal/models"
	"github.com/stretchr/testify/require"
)

func TestLexical_Classify(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		label      string
		confidence float64
	}{
		{name: "single positive word", input: "That was good", label: "POSITIVE", confidence: 0.8},
		{name: "two positive words", input: "I love this, it is amazing", label: "POSITIVE", confidence: 0.9},
		{name: "negative capped at ceiling", input: "terrible awful horrible day", label: "NEGATIVE", confidence: 0.95},
		{name: "upper case input", input: "AMAZING", label: "POSITIVE", confidence: 0.8},
		{name: "repeated word counted once", input: "good good good", label: "POSITIVE", confidence: 0.8},
		{name: "substring inside another word", input: "a badger appeared", label: "NEGATIVE", confidence: 0.8},
		{name: "overlapping lists are independent", input: "I dislike it", label: "NEUTRAL", confidence: 0.5},
		{name: "tie", input: "good and bad", label: "NEUTRAL", confidence: 0.5},
		{name: "no matches", input: "the table is brown", label: "NEUTRAL", confidence: 0.5},
		{name: "empty", input: "", label: "NEUTRAL", confidence: 0.5},
	}

	lex := NewLexical()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := lex.Classify(tt.input)
			require.Equal(t, tt.label, out.Label)
			require.InDelta(t, tt.confidence, out.Score, 1e-9)
		})
	}
}

func TestLexical_PositiveMajorityStaysInRange(t *testing.T) {
	lex := NewLexical()
	for i := 1; i <= len(PositiveWords); i++ {
		text := strings.Join(PositiveWords[:i], " ")
		out := lex.Classify(text)
		if Normalize(out.Label) != models.LabelPositive {
			// adjacent words can spell a negative entry; only check clear majorities
			continue
		}
		require.GreaterOrEqual(t, out.Score, 0.7)
		require.LessOrEqual(t, out.Score, 0.95)
	}
}

func TestLexical_ConfidenceMonotonic(t *testing.T) {
	lex := NewLexical()
	words := []string{"good", "great", "excellent", "amazing", "superb"}

	prev := 0.0
	for i := 1; i <= len(words); i++ {
		out := lex.Classify(strings.Join(words[:i], " "))
		require.Equal(t, "POSITIVE", out.Label)
		require.GreaterOrEqual(t, out.Score, prev, "confidence dropped at %d words", i)
		require.LessOrEqual(t, out.Score, 0.95)
		prev = out.Score
	}
	require.Equal(t, 0.95, prev)
}

func TestLexical_WordLists(t *testing.T) {
	req := require.New(t)
	for _, list := range [][]string{PositiveWords, NegativeWords} {
		req.GreaterOrEqual(len(list), 20)
		req.LessOrEqual(len(list), 25)

		seen := make(map[string]bool, len(list))
		for _, w := range list {
			req.False(seen[w], "duplicate word %q", w)
			req.Equal(strings.ToLower(w), w)
			seen[w] = true
		}
	}
}
