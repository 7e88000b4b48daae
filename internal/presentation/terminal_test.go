package presentation

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spacesedan/sentilite/internal/models"
	"github.com/spacesedan/sentilite/internal/pipeline"
	"github.com/stretchr/testify/require"
)

func TestTerminal_ShowResolved(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)

	err := term.Show(models.Resolution{
		State:  models.StateResolved,
		Result: models.ClassificationResult{Label: models.LabelNegative, Confidence: 0.9, Source: models.SourceRemote},
	})
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "😞 NEGATIVE")
	require.Contains(t, got, "Confidence: 90.00%")
	require.Contains(t, got, "10.00%")
	require.NotContains(t, got, DEGRADED_NOTICE)
}

func TestTerminal_ShowDegradedAndAdvisory(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)

	require.NoError(t, term.Show(models.Resolution{
		State:  models.StateDegraded,
		Result: models.ClassificationResult{Label: models.LabelPositive, Confidence: 0.8, Source: models.SourceLocal},
	}))
	require.Contains(t, out.String(), "Using simplified analysis")

	out.Reset()
	require.NoError(t, term.Show(models.Resolution{State: models.StateRetryAdvisory, RetryAfterSeconds: 20}))
	require.Contains(t, out.String(), "Please wait 20 seconds")
	require.NotContains(t, out.String(), "Confidence")
}

func TestTerminal_ShowError(t *testing.T) {
	var out bytes.Buffer
	NewTerminal(&out).ShowError(pipeline.ErrEmptyInput)
	require.Contains(t, out.String(), "Please enter a sentence.")
}

func TestTerminal_WritesChartFile(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)
	term.ChartPath = filepath.Join(t.TempDir(), "chart.html")

	require.NoError(t, term.Show(models.Resolution{
		State:  models.StateResolved,
		Result: models.ClassificationResult{Label: models.LabelPositive, Confidence: 0.75, Source: models.SourceRemote},
	}))

	b, err := os.ReadFile(term.ChartPath)
	require.NoError(t, err)
	require.Contains(t, string(b), "POSITIVE")
}
