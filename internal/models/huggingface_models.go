package models

// InferenceRequest is the body posted to the Hugging Face inference API.
type InferenceRequest struct {
	Inputs string `json:"inputs"`
}
