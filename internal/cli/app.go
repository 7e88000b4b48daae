package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spacesedan/sentilite/config"
	"github.com/spacesedan/sentilite/internal/clients"
	"github.com/spacesedan/sentilite/internal/monitoring"
	"github.com/spacesedan/sentilite/internal/pipeline"
	"github.com/spacesedan/sentilite/internal/sentiment"
	"github.com/spacesedan/sentilite/internal/server"
)

// Analyzer resolves one piece of text.
type Analyzer = server.Analyzer

// App holds what the commands share.
type App struct {
	Config   config.AppConfig
	Analyzer Analyzer
	Prober   monitoring.AnalyzerProber
	In       io.Reader
	Out      io.Writer
}

// NewApp builds the remote client, the local classifier and the resolver
// from cfg.
func NewApp(cfg config.AppConfig) (*App, error) {
	local, err := sentiment.NewLocalClassifier(cfg.LocalClassifier)
	if err != nil {
		return nil, fmt.Errorf("local classifier: %w", err)
	}

	remote := clients.NewHuggingFaceClient(clients.HuggingFaceConfig{
		Endpoint: cfg.HFEndpoint,
		Token:    cfg.HFToken,
		Timeout:  cfg.Timeout,
	})

	resolver := pipeline.NewResolver(remote, local).WithFallback(cfg.FallbackEnabled)

	slog.Info("[App] Initialized",
		slog.String("endpoint", cfg.HFEndpoint),
		slog.Bool("token", cfg.HFToken != ""),
		slog.String("local_classifier", local.Name()),
		slog.Bool("fallback_enabled", cfg.FallbackEnabled))

	return &App{
		Config:   cfg,
		Analyzer: resolver,
		Prober:   remote,
		In:       os.Stdin,
		Out:      os.Stdout,
	}, nil
}
