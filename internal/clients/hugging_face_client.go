package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/sentilite/internal/models"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

var ErrMalformedBody = errors.New("malformed inference response")

type HuggingFaceConfig struct {
	Endpoint string
	// Token is sent as a bearer token when set.
	Token string
	// Timeout of zero keeps the transport default.
	Timeout time.Duration
}

type HuggingFaceClient struct {
	Client   *http.Client
	endpoint string
}

func NewHuggingFaceClient(cfg HuggingFaceConfig) *HuggingFaceClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = HF_INFERENCE_ENDPOINT
	}

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
			Base:   http.DefaultTransport,
		}
	}

	slog.Info("[HuggingFaceClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", cfg.Timeout),
		slog.Bool("authenticated", cfg.Token != ""))

	return &HuggingFaceClient{
		Client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		endpoint: endpoint,
	}
}

// Classify issues exactly one inference request. It never retries; a 503 is
// reported back as RetryableUnavailable for the caller to surface.
func (h *HuggingFaceClient) Classify(ctx context.Context, text string) models.Outcome {
	start := time.Now()

	body, err := json.Marshal(models.InferenceRequest{Inputs: text})
	if err != nil {
		return h.fail(models.ReasonNetwork, fmt.Errorf("failed to marshal input: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return h.fail(models.ReasonNetwork, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := h.Client.Do(req)
	if err != nil {
		return h.fail(models.ReasonNetwork, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		_, _ = io.Copy(io.Discard, resp.Body)
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		slog.Warn("[HuggingFaceClient] Model is loading",
			slog.Int("retry_after", retryAfter),
			slog.Duration("elapsed", time.Since(start)))
		return models.RetryableUnavailable{RetryAfterSeconds: retryAfter}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return h.fail(models.ReasonHTTPError, fmt.Errorf("status code %d", resp.StatusCode))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return h.fail(models.ReasonNetwork, fmt.Errorf("failed to read response: %w", err))
	}

	raw, err := parseInferenceBody(respBody)
	if err != nil {
		slog.Warn("[HuggingFaceClient] Unusable response body",
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return h.fail(models.ReasonMalformedBody, err)
	}

	slog.Info("[HuggingFaceClient] Classification request successful",
		slog.String("label", raw.Label),
		slog.Float64("score", raw.Score),
		slog.Duration("elapsed", time.Since(start)))

	return models.Success{Raw: raw}
}

// AnalyzerHealthCheck reports whether a probe classification succeeds.
func (h *HuggingFaceClient) AnalyzerHealthCheck(ctx context.Context) bool {
	_, ok := h.Classify(ctx, HEALTHCHECK_TEXT).(models.Success)
	return ok
}

func (h *HuggingFaceClient) fail(reason models.FailureReason, err error) models.HardFailure {
	slog.Warn("[HuggingFaceClient] Classification request failed",
		slog.String("endpoint", h.endpoint),
		slog.String("reason", string(reason)),
		slog.String("error", err.Error()))
	return models.HardFailure{Reason: reason, Detail: err}
}

// parseInferenceBody accepts either {label, score} or a sequence whose first
// element is that object. The label must be a non-empty string and the score
// a finite number in [0,1].
func parseInferenceBody(body []byte) (models.RawClassifierOutput, error) {
	var out models.RawClassifierOutput

	if !gjson.ValidBytes(body) {
		return out, fmt.Errorf("%w: invalid json", ErrMalformedBody)
	}

	result := gjson.ParseBytes(body)
	if result.IsArray() {
		result = result.Get("0")
	}
	if !result.IsObject() {
		return out, fmt.Errorf("%w: expected an object or a sequence of objects", ErrMalformedBody)
	}

	label := result.Get("label")
	if label.Type != gjson.String || label.Str == "" {
		return out, fmt.Errorf("%w: missing label", ErrMalformedBody)
	}

	score := result.Get("score")
	if score.Type != gjson.Number {
		return out, fmt.Errorf("%w: missing score", ErrMalformedBody)
	}
	value := score.Float()
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > 1 {
		return out, fmt.Errorf("%w: score %s out of range", ErrMalformedBody, score.Raw)
	}

	out.Label = label.Str
	out.Score = value
	return out, nil
}

// parseRetryAfter only understands delta-seconds; anything else falls back to
// DEFAULT_RETRY_AFTER.
func parseRetryAfter(header string) int {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds < 0 {
		return DEFAULT_RETRY_AFTER
	}
	return seconds
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
