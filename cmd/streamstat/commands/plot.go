package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/streamstat/internal/config"
	"github.com/Sumatoshi-tech/streamstat/pkg/stats"
)

const (
	plotCmdUse   = "plot [file]"
	plotCmdShort = "Render a histogram of the distribution as HTML"
	plotMaxArgs  = 1

	plotOutputFlag  = "output"
	plotOutputShort = "o"
	plotOutputUsage = "output HTML file path"
	plotBinsFlag    = "bins"
	plotBinsUsage   = "number of histogram buckets"

	plotChartTitle     = "Value distribution"
	plotSeriesName     = "observations"
	plotLabelPrecision = 2
)

// ErrNoOutputPath is returned when the --output flag is not set.
var ErrNoOutputPath = errors.New("output path is required (use --output)")

// NewPlotCommand creates the plot subcommand.
func NewPlotCommand() *cobra.Command {
	var (
		configPath string
		outputPath string
		bins       int
	)

	cmd := &cobra.Command{
		Use:   plotCmdUse,
		Short: plotCmdShort,
		Args:  cobra.MaximumNArgs(plotMaxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			ApplyConfigLevel(cfg.Logging.Level)

			if outputPath == "" {
				return ErrNoOutputPath
			}

			if cmd.Flags().Changed(plotBinsFlag) {
				cfg.Plot.Bins = bins
			}

			validateErr := cfg.Validate()
			if validateErr != nil {
				return validateErr
			}

			return runPlot(inputPath(args), outputPath, cfg.Plot.Bins)
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)
	cmd.Flags().StringVarP(&outputPath, plotOutputFlag, plotOutputShort, "", plotOutputUsage)
	cmd.Flags().IntVar(&bins, plotBinsFlag, 0, plotBinsUsage)

	return cmd
}

func runPlot(path, outputPath string, bins int) error {
	values, err := readInputFile(path)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return ErrNoValues
	}

	summary := stats.Summarize(values)
	hist := buildHistogram(values, bins)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    plotChartTitle,
			Subtitle: summary.String(),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Observations"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	data := make([]opts.BarData, len(hist.counts))
	for i, c := range hist.counts {
		data[i] = opts.BarData{Value: c}
	}

	bar.SetXAxis(hist.labels)
	bar.AddSeries(plotSeriesName, data)

	f, createErr := os.Create(outputPath)
	if createErr != nil {
		return fmt.Errorf("create output: %w", createErr)
	}

	defer f.Close()

	renderErr := bar.Render(f)
	if renderErr != nil {
		return fmt.Errorf("render chart: %w", renderErr)
	}

	slog.Info("histogram written", "path", outputPath, "bins", bins, "values", len(values))

	return nil
}

// histogram holds equal-width bucket labels and per-bucket counts.
type histogram struct {
	labels []string
	counts []int
}

// buildHistogram buckets values into bins equal-width intervals spanning
// [min, max]. Each label carries the lower edge of its bucket. When
// every value is identical the single populated bucket absorbs them all.
func buildHistogram(values []float64, bins int) histogram {
	summary := stats.Summarize(values)
	lo := summary.Min()
	width := (summary.Max() - lo) / float64(bins)

	counts := make([]int, bins)
	labels := make([]string, bins)

	for i := range labels {
		labels[i] = strconv.FormatFloat(lo+width*float64(i), 'f', plotLabelPrecision, 64)
	}

	if width == 0 {
		counts[0] = len(values)

		return histogram{labels: labels, counts: counts}
	}

	for _, v := range values {
		idx := int((v - lo) / width)

		// The maximum lands exactly on the upper edge of the last bucket.
		if idx >= bins {
			idx = bins - 1
		}

		counts[idx]++
	}

	return histogram{labels: labels, counts: counts}
}
