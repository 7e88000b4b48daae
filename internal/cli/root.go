// Package cli holds the cobra commands for the sentilite binary.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sentilite",
		Short:         "Sentiment analysis with a remote model and a local fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(app.In)
	root.SetOut(app.Out)

	root.AddCommand(newAnalyzeCmd(app))
	root.AddCommand(newServeCmd(app))
	root.AddCommand(versionCmd)
	return root
}
