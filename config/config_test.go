package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "HF_ENDPOINT", "HF_API_TOKEN", "REMOTE_TIMEOUT",
	"FALLBACK_ENABLED", "LOCAL_CLASSIFIER", "HEALTHCHECK_INTERVAL", "HTTP_ADDR",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	require.Contains(t, cfg.HFEndpoint, "distilbert-base-uncased-finetuned-sst-2-english")
	require.Empty(t, cfg.HFToken)
	require.Zero(t, cfg.Timeout)
	require.True(t, cfg.FallbackEnabled)
	require.Equal(t, "lexical", cfg.LocalClassifier)
	require.Zero(t, cfg.HealthcheckInterval)
	require.Equal(t, "localhost:8080", cfg.HTTPAddr)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HF_ENDPOINT", "http://127.0.0.1:9999/models/test")
	t.Setenv("HF_API_TOKEN", "hf_secret")
	t.Setenv("REMOTE_TIMEOUT", "3s")
	t.Setenv("FALLBACK_ENABLED", "false")
	t.Setenv("LOCAL_CLASSIFIER", "vader")
	t.Setenv("HEALTHCHECK_INTERVAL", "30s")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, "http://127.0.0.1:9999/models/test", cfg.HFEndpoint)
	require.Equal(t, "hf_secret", cfg.HFToken)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.False(t, cfg.FallbackEnabled)
	require.Equal(t, "vader", cfg.LocalClassifier)
	require.Equal(t, 30*time.Second, cfg.HealthcheckInterval)
	require.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"LOCAL_CLASSIFIER": "bert",
		"LOG_LEVEL":        "LOUD",
		"HF_ENDPOINT":      "not a url",
		"REMOTE_TIMEOUT":   "-1s",
		"FALLBACK_ENABLED": "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", "localhost:7000")

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ENV_DIR), 0o755))
	env := "LOCAL_CLASSIFIER=vader\nHTTP_ADDR=localhost:1234\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ENV_DIR, ".env.test"), []byte(env), 0o600))
	chdir(t, dir)

	LoadEnv("test")
	t.Cleanup(func() { _ = os.Unsetenv("LOCAL_CLASSIFIER") })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "vader", cfg.LocalClassifier)
	require.Equal(t, "localhost:7000", cfg.HTTPAddr, "environment wins over the file")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NotPanics(t, func() { LoadEnv("nope") })
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working directory
// and restores the previous one when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
