package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/streamstat/internal/config"
	"github.com/Sumatoshi-tech/streamstat/pkg/seq"
)

const (
	zscoreCmdUse   = "zscore [file]"
	zscoreCmdShort = "Standardize a number stream"
	zscoreCmdLong  = `Zscore reads whitespace-separated numbers from a file or stdin and
prints each value standardized to (x - mean) / stddev, one per line.
By default the mean and standard deviation are computed from the input;
both can be supplied instead with --mean and --stddev.`
	zscoreMaxArgs = 1

	meanFlag    = "mean"
	meanUsage   = "use this mean instead of computing it from the input"
	stddevFlag  = "stddev"
	stddevUsage = "use this standard deviation instead of computing it from the input"
)

// ErrMeanStdDevPair is returned when only one of --mean and --stddev is set.
var ErrMeanStdDevPair = errors.New("--mean and --stddev must be supplied together")

// ErrZeroStdDev is returned when --stddev is zero.
var ErrZeroStdDev = errors.New("--stddev must be non-zero")

// NewZScoreCommand creates the zscore subcommand.
func NewZScoreCommand() *cobra.Command {
	var (
		configPath string
		precision  int
		mean       float64
		stddev     float64
	)

	cmd := &cobra.Command{
		Use:   zscoreCmdUse,
		Short: zscoreCmdShort,
		Long:  zscoreCmdLong,
		Args:  cobra.MaximumNArgs(zscoreMaxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			ApplyConfigLevel(cfg.Logging.Level)

			if cmd.Flags().Changed(precisionFlag) {
				cfg.Output.Precision = precision
			}

			meanSet := cmd.Flags().Changed(meanFlag)
			stddevSet := cmd.Flags().Changed(stddevFlag)

			if meanSet != stddevSet {
				return ErrMeanStdDevPair
			}

			if stddevSet && stddev == 0 {
				return ErrZeroStdDev
			}

			opts := zscoreOpts{
				precision:   cfg.Output.Precision,
				precomputed: meanSet,
				mean:        mean,
				stddev:      stddev,
			}

			return runZScore(cmd.OutOrStdout(), inputPath(args), opts)
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)
	cmd.Flags().IntVarP(&precision, precisionFlag, "p", 0, precisionUsage)
	cmd.Flags().Float64Var(&mean, meanFlag, 0, meanUsage)
	cmd.Flags().Float64Var(&stddev, stddevFlag, 0, stddevUsage)

	return cmd
}

type zscoreOpts struct {
	precision   int
	precomputed bool
	mean        float64
	stddev      float64
}

func runZScore(w io.Writer, path string, opts zscoreOpts) error {
	values, err := readInputFile(path)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return ErrNoValues
	}

	var view seq.Sequence

	if opts.precomputed {
		view = seq.ZScoreWith(seq.Slice(values), opts.mean, opts.stddev)
	} else {
		view = seq.ZScore(seq.Slice(values))
	}

	slog.Debug("standardizing input", "values", len(values), "precomputed", opts.precomputed)

	for v := range view.All() {
		_, writeErr := fmt.Fprintln(w, strconv.FormatFloat(v, 'f', opts.precision, 64))
		if writeErr != nil {
			return fmt.Errorf("write output: %w", writeErr)
		}
	}

	return nil
}
