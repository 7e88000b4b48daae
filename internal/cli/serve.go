package cli

import (
	"context"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentilite/internal/monitoring"
	"github.com/spacesedan/sentilite/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var healthy *atomic.Bool
			if app.Prober != nil && app.Config.HealthcheckInterval > 0 {
				healthy = &atomic.Bool{}
				go monitoring.MonitorAnalyzerHealth(ctx, app.Prober, app.Config.HealthcheckInterval, healthy)
			}

			if addr == "" {
				addr = app.Config.HTTPAddr
			}
			gin.SetMode(server.ModeFor(app.Config.Env))
			return server.New(app.Analyzer, healthy).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides HTTP_ADDR)")
	return cmd
}
