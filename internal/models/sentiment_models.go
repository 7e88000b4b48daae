package models

type SentimentLabel string

const (
	LabelPositive SentimentLabel = "POSITIVE"
	LabelNegative SentimentLabel = "NEGATIVE"
	LabelNeutral  SentimentLabel = "NEUTRAL"
)

// Labels is the fixed display order used by distributions and charts.
var Labels = [3]SentimentLabel{LabelPositive, LabelNegative, LabelNeutral}

type Source string

const (
	SourceRemote Source = "REMOTE"
	SourceLocal  Source = "LOCAL"
)

// RawClassifierOutput is what either classifier emits before normalization.
// Label can be any token, e.g. "LABEL_1" from the remote model.
type RawClassifierOutput struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type ClassificationResult struct {
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
	Source     Source         `json:"source"`
}

// Degraded reports whether the result came from the local fallback.
func (r ClassificationResult) Degraded() bool {
	return r.Source == SourceLocal
}

// DistributionBucket pairs a label's weight with its bar height. Height is
// the weight divided by the largest weight of the distribution.
type DistributionBucket struct {
	Label  SentimentLabel `json:"label"`
	Weight float64        `json:"weight"`
	Height float64        `json:"height"`
}

// ConfidenceDistribution always holds one bucket per label in Labels order.
type ConfidenceDistribution [3]DistributionBucket

func (d ConfidenceDistribution) Weight(label SentimentLabel) float64 {
	for _, b := range d {
		if b.Label == label {
			return b.Weight
		}
	}
	return 0
}
