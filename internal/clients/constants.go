package clients

const (
	HF_INFERENCE_ENDPOINT = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"
	DEFAULT_RETRY_AFTER   = 20 // seconds, used when a 503 carries no usable Retry-After
	USER_AGENT            = "sentilite-client/1.0 (+https://github.com/spacesedan/sentilite)"
	HEALTHCHECK_TEXT      = "health check"
)
