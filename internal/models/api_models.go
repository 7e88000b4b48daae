package models

// AnalyzeRequest and AnalyzeResponse are the HTTP API shapes for serve mode.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	RequestID    string                  `json:"request_id"`
	State        ResolutionState         `json:"state"`
	Result       *ClassificationResult   `json:"result,omitempty"`
	Distribution *ConfidenceDistribution `json:"distribution,omitempty"`
	Display      string                  `json:"display,omitempty"`
	Confidence   string                  `json:"confidence,omitempty"`
	Notice       string                  `json:"notice,omitempty"`
	Advisory     string                  `json:"advisory,omitempty"`
	Error        string                  `json:"error,omitempty"`
}
