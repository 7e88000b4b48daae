package presentation

import (
	"bytes"
	"testing"

	"github.com/spacesedan/sentilite/internal/distribution"
	"github.com/spacesedan/sentilite/internal/models"
	"github.com/stretchr/testify/require"
)

func TestChartRenderer_Render(t *testing.T) {
	r := NewChartRenderer()
	dist := distribution.Build(models.ClassificationResult{Label: models.LabelPositive, Confidence: 0.87})

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, dist))

	html := buf.String()
	require.Contains(t, html, "POSITIVE")
	require.Contains(t, html, "NEGATIVE")
	require.Contains(t, html, "NEUTRAL")
	require.Contains(t, html, "#00c853")
	require.Contains(t, html, "87.00%", "bar label shows the weight")
	require.Contains(t, html, "13.00%")
}

func TestChartRenderer_RenderCurrent(t *testing.T) {
	r := NewChartRenderer()

	var buf bytes.Buffer
	require.ErrorIs(t, r.RenderCurrent(&buf), ErrNoChart)

	first := distribution.Build(models.ClassificationResult{Label: models.LabelNegative, Confidence: 0.71})
	second := distribution.Build(models.ClassificationResult{Label: models.LabelPositive, Confidence: 0.64})
	require.NoError(t, r.Render(&bytes.Buffer{}, first))
	require.NoError(t, r.Render(&bytes.Buffer{}, second))

	buf.Reset()
	require.NoError(t, r.RenderCurrent(&buf))
	require.Contains(t, buf.String(), "64.00%", "only the latest chart is kept")
	require.NotContains(t, buf.String(), "71.00%")

	r.Dispose()
	require.ErrorIs(t, r.RenderCurrent(&buf), ErrNoChart)
}

func TestBarHeight(t *testing.T) {
	require.Equal(t, 100.0, barHeight(1))
	require.Equal(t, 14.9, barHeight(0.13/0.87))
	require.Equal(t, 42.9, barHeight(0.3/0.7))
	require.Equal(t, 0.0, barHeight(0))
}
