// Package distribution turns a single classification into the three-bucket
// weights drawn by the bar chart.
//
// The winning label gets the result's confidence and each other label gets
// max(0, 1-confidence). Weights keep those values and are what the chart
// labels show. Bar heights are the weights divided by the largest weight, so
// the tallest bar always fills the 0-100% axis and the others are drawn
// relative to it. For confidence above 0.5 the winner is the tallest bar; at
// or below 0.5 the minor labels are.
package distribution

import (
	"math"

	"github.com/samber/lo"
	"github.com/spacesedan/sentilite/internal/models"
)

func Build(result models.ClassificationResult) models.ConfidenceDistribution {
	confidence := clamp01(result.Confidence)
	minor := math.Max(0, 1-confidence)

	var dist models.ConfidenceDistribution
	for i, label := range models.Labels {
		weight := minor
		if label == result.Label {
			weight = confidence
		}
		dist[i] = models.DistributionBucket{Label: label, Weight: weight}
	}

	return withHeights(dist)
}

// withHeights divides every weight by the largest one. For a canonical label
// the largest weight is at least 0.5; a non-canonical label at confidence 1
// leaves every weight at 0 and every height at 0.
func withHeights(dist models.ConfidenceDistribution) models.ConfidenceDistribution {
	largest := lo.MaxBy(dist[:], func(a, b models.DistributionBucket) bool {
		return a.Weight > b.Weight
	}).Weight
	if largest == 0 {
		return dist
	}

	for i := range dist {
		dist[i].Height = dist[i].Weight / largest
	}
	return dist
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
