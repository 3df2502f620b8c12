package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/streamstat/internal/config"
	"github.com/Sumatoshi-tech/streamstat/pkg/stats"
)

const (
	describeCmdUse   = "describe [file]"
	describeCmdShort = "Summarize a number stream"
	describeCmdLong  = `Describe reads whitespace-separated numbers from a file or stdin and
prints their descriptive statistics: count, extrema, arithmetic and
geometric means, spread, distribution shape, median, and median
absolute deviation.`
	describeMaxArgs = 1

	configFlag      = "config"
	configUsage     = "config file path"
	formatFlag      = "format"
	formatUsage     = "output format: table, json, or plain"
	precisionFlag   = "precision"
	precisionUsage  = "fractional digits per statistic"
	noColorFlag     = "no-color"
	noColorUsage    = "disable colored output"
	undefinedMarker = "n/a"
)

// Report holds every statistic describe computes over one input.
type Report struct {
	Count    uint64
	Sum      float64
	Min      float64
	Max      float64
	Mean     float64
	GeoMean  float64
	Variance float64
	StdDev   float64
	Skewness float64
	Kurtosis float64
	Median   float64
	MAD      float64
}

// BuildReport computes the full describe report for values.
func BuildReport(values []float64) Report {
	summary := stats.Summarize(values)
	median, mad := stats.MedianAbsDev(values)

	return Report{
		Count:    summary.Count(),
		Sum:      summary.Sum(),
		Min:      summary.Min(),
		Max:      summary.Max(),
		Mean:     summary.Mean(),
		GeoMean:  stats.GeoMeanOf(values),
		Variance: summary.Variance(),
		StdDev:   summary.StdDev(),
		Skewness: summary.Skewness(),
		Kurtosis: summary.Kurtosis(),
		Median:   median,
		MAD:      mad,
	}
}

// NewDescribeCommand creates the describe subcommand.
func NewDescribeCommand() *cobra.Command {
	var (
		configPath string
		format     string
		precision  int
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   describeCmdUse,
		Short: describeCmdShort,
		Long:  describeCmdLong,
		Args:  cobra.MaximumNArgs(describeMaxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			ApplyConfigLevel(cfg.Logging.Level)

			if cmd.Flags().Changed(formatFlag) {
				cfg.Output.Format = format
			}

			if cmd.Flags().Changed(precisionFlag) {
				cfg.Output.Precision = precision
			}

			if noColor {
				cfg.Output.Color = false
			}

			validateErr := cfg.Validate()
			if validateErr != nil {
				return validateErr
			}

			return runDescribe(cmd.OutOrStdout(), inputPath(args), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)
	cmd.Flags().StringVarP(&format, formatFlag, "f", config.FormatTable, formatUsage)
	cmd.Flags().IntVarP(&precision, precisionFlag, "p", 0, precisionUsage)
	cmd.Flags().BoolVar(&noColor, noColorFlag, false, noColorUsage)

	return cmd
}

func runDescribe(w io.Writer, path string, cfg *config.Config) error {
	values, err := readInputFile(path)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return ErrNoValues
	}

	slog.Debug("input parsed", "values", len(values), "source", pathOrStdin(path))

	report := BuildReport(values)

	switch cfg.Output.Format {
	case config.FormatJSON:
		return renderJSON(w, report)
	case config.FormatPlain:
		renderPlain(w, report, cfg.Output.Precision)

		return nil
	default:
		renderTable(w, report, cfg)

		return nil
	}
}

// reportRows returns the report as ordered label/value pairs, with
// undefined statistics rendered as the n/a marker.
func reportRows(r Report, precision int) [][2]string {
	return [][2]string{
		{"Count", humanize.Comma(int64(r.Count))}, //nolint:gosec // counts fit in int64
		{"Sum", formatStat(r.Sum, precision)},
		{"Min", formatStat(r.Min, precision)},
		{"Max", formatStat(r.Max, precision)},
		{"Mean", formatStat(r.Mean, precision)},
		{"Geometric mean", formatStat(r.GeoMean, precision)},
		{"Std dev", formatStat(r.StdDev, precision)},
		{"Variance", formatStat(r.Variance, precision)},
		{"Skewness", formatStat(r.Skewness, precision)},
		{"Kurtosis", formatStat(r.Kurtosis, precision)},
		{"Median", formatStat(r.Median, precision)},
		{"Median abs dev", formatStat(r.MAD, precision)},
	}
}

func renderTable(w io.Writer, r Report, cfg *config.Config) {
	header := color.New(color.FgCyan, color.Bold)
	if !cfg.Output.Color {
		header.DisableColor()
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{header.Sprint("Statistic"), header.Sprint("Value")})

	for _, row := range reportRows(r, cfg.Output.Precision) {
		tw.AppendRow(table.Row{row[0], row[1]})
	}

	tw.Render()
}

func renderPlain(w io.Writer, r Report, precision int) {
	for _, row := range reportRows(r, precision) {
		fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
}

// jsonReport mirrors Report with pointers so undefined (NaN) statistics
// serialize as null instead of failing to encode.
type jsonReport struct {
	Count    uint64   `json:"count"`
	Sum      *float64 `json:"sum"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Mean     *float64 `json:"mean"`
	GeoMean  *float64 `json:"geomean"`
	Variance *float64 `json:"variance"`
	StdDev   *float64 `json:"stddev"`
	Skewness *float64 `json:"skewness"`
	Kurtosis *float64 `json:"kurtosis"`
	Median   *float64 `json:"median"`
	MAD      *float64 `json:"mad"`
}

func renderJSON(w io.Writer, r Report) error {
	out := jsonReport{
		Count:    r.Count,
		Sum:      jsonStat(r.Sum),
		Min:      jsonStat(r.Min),
		Max:      jsonStat(r.Max),
		Mean:     jsonStat(r.Mean),
		GeoMean:  jsonStat(r.GeoMean),
		Variance: jsonStat(r.Variance),
		StdDev:   jsonStat(r.StdDev),
		Skewness: jsonStat(r.Skewness),
		Kurtosis: jsonStat(r.Kurtosis),
		Median:   jsonStat(r.Median),
		MAD:      jsonStat(r.MAD),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	_, writeErr := fmt.Fprintln(w, string(encoded))

	return writeErr
}

func jsonStat(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func formatStat(v float64, precision int) string {
	if math.IsNaN(v) {
		return undefinedMarker
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pathOrStdin(path string) string {
	if path == "" {
		return "stdin"
	}

	return path
}
