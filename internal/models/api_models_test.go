package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeResponse_AdvisoryOmitsResult(t *testing.T) {
	b, err := json.Marshal(AnalyzeResponse{
		RequestID: "r1",
		State:     StateRetryAdvisory,
		Advisory:  "Model is loading. Please wait 20 seconds and try again.",
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	require.Equal(t, "RESOLVED_RETRY_ADVISORY", fields["state"])
	require.Contains(t, fields, "advisory")
	require.NotContains(t, fields, "result")
	require.NotContains(t, fields, "distribution")
	require.NotContains(t, fields, "error")
}

func TestAnalyzeResponse_DistributionCarriesHeights(t *testing.T) {
	dist := ConfidenceDistribution{
		{Label: LabelPositive, Weight: 0.8, Height: 1},
		{Label: LabelNegative, Weight: 0.2, Height: 0.25},
		{Label: LabelNeutral, Weight: 0.2, Height: 0.25},
	}
	b, err := json.Marshal(AnalyzeResponse{State: StateResolved, Distribution: &dist})
	require.NoError(t, err)
	require.Contains(t, string(b), `{"label":"NEGATIVE","weight":0.2,"height":0.25}`)
}
