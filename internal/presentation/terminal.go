package presentation

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spacesedan/sentilite/internal/models"
)

var (
	noticeStyle   = color.New(color.FgCyan)
	advisoryStyle = color.New(color.FgYellow)
	errorStyle    = color.New(color.FgRed)
)

// Terminal writes resolutions to a terminal. When ChartPath is set the
// distribution chart is also written there as an HTML file.
type Terminal struct {
	out       io.Writer
	chart     *ChartRenderer
	ChartPath string
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out, chart: NewChartRenderer()}
}

func (t *Terminal) Show(res models.Resolution) error {
	v := NewView(res)

	if v.Advisory != "" {
		fmt.Fprintln(t.out, advisoryStyle.Render(v.Advisory))
		return nil
	}
	if v.Result == nil {
		return nil
	}

	fmt.Fprintln(t.out, v.Display.Style.Render(v.Headline))
	fmt.Fprintf(t.out, "Confidence: %s\n", v.Confidence)
	if v.Notice != "" {
		fmt.Fprintln(t.out, noticeStyle.Render(v.Notice))
	}

	t.writeTable(*v.Distribution)

	if t.ChartPath != "" {
		if err := t.writeChart(*v.Distribution); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) ShowError(err error) {
	fmt.Fprintln(t.out, errorStyle.Render(UserMessage(err)))
}

func (t *Terminal) writeTable(dist models.ConfidenceDistribution) {
	table := tablewriter.NewWriter(t.out)
	table.SetHeader([]string{"Sentiment", "Weight"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")

	for _, b := range dist {
		table.Append([]string{Headline(b.Label), FormatPercent(b.Weight)})
	}
	table.Render()
}

func (t *Terminal) writeChart(dist models.ConfidenceDistribution) error {
	f, err := os.Create(t.ChartPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	return t.chart.Render(f, dist)
}
