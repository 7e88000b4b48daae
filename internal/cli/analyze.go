package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spacesedan/sentilite/internal/pipeline"
	"github.com/spacesedan/sentilite/internal/presentation"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		interactive bool
		chartPath   string
	)

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Classify the sentiment of a sentence",
		Long: "Classify the sentiment of a sentence. With --interactive (or no text) " +
			"every line read from stdin is analyzed when Enter is pressed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			term := presentation.NewTerminal(cmd.OutOrStdout())
			term.ChartPath = chartPath

			if interactive || len(args) == 0 {
				return runInteractive(cmd.Context(), app.Analyzer, cmd.InOrStdin(), cmd.OutOrStdout(), term)
			}
			return analyzeOnce(cmd.Context(), app.Analyzer, strings.Join(args, " "), term)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read sentences line by line from stdin")
	cmd.Flags().StringVar(&chartPath, "chart", "", "Write the distribution chart as HTML to this file")
	return cmd
}

func analyzeOnce(ctx context.Context, analyzer Analyzer, text string, term *presentation.Terminal) error {
	ctx = pipeline.WithRequestID(ctx, uuid.NewString())

	res, err := analyzer.Resolve(ctx, text)
	if err != nil {
		term.ShowError(err)
		if errors.Is(err, pipeline.ErrEmptyInput) {
			return nil
		}
		return fmt.Errorf("analyze: %w", err)
	}
	return term.Show(res)
}

// runInteractive analyzes each line as it is entered. A new line supersedes
// an analysis still in flight; the stale result is never shown.
func runInteractive(ctx context.Context, analyzer Analyzer, in io.Reader, out io.Writer, term *presentation.Terminal) error {
	session := presentation.NewSession()
	defer session.Close()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	fmt.Fprintln(out, "Type a sentence and press Enter (Ctrl-D to quit).")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		runCtx, ticket := session.Begin(ctx)
		runCtx = pipeline.WithRequestID(runCtx, uuid.NewString())

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer session.Finish(ticket)

			res, err := analyzer.Resolve(runCtx, line)

			mu.Lock()
			defer mu.Unlock()
			if !session.Current(ticket) {
				return
			}
			if err != nil {
				term.ShowError(err)
				return
			}
			if err := term.Show(res); err != nil {
				fmt.Fprintln(out, err)
			}
		}()
	}

	wg.Wait()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
