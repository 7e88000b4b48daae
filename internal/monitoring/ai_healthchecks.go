package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// AnalyzerProber is implemented by clients.HuggingFaceClient.
type AnalyzerProber interface {
	AnalyzerHealthCheck(ctx context.Context) bool
}

// MonitorAnalyzerHealth probes the remote analyzer once immediately and then
// every interval until ctx is done, storing the latest answer in healthy.
// The result is informational only; resolution never consults it.
func MonitorAnalyzerHealth(ctx context.Context, prober AnalyzerProber, interval time.Duration, healthy *atomic.Bool) {
	if interval <= 0 {
		slog.Debug("[HealthCheck] Analyzer probing disabled")
		return
	}

	probe := func() {
		probeCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		isHealthy := prober.AnalyzerHealthCheck(probeCtx)
		if healthy.Swap(isHealthy) != isHealthy || !isHealthy {
			if isHealthy {
				slog.Info("[HealthCheck] Analyzer is healthy")
			} else {
				slog.Warn("[HealthCheck] Analyzer is unhealthy")
			}
		}
	}

	probe()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
