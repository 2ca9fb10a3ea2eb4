package main

import (
	"fmt"

	"github.com/Benarrt/FiltFilt/internal/report"
	"github.com/Benarrt/FiltFilt/internal/signalio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCompareCmd(a *app) *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "compare [flags] output reference",
		Short: "Compare a filtered signal against a reference",
		Long: `Report the maximum and RMS difference, SNR and correlation between
two signals, e.g. this tool's output and another implementation's. Both
files are read with the same column options. With --tolerance the command
fails when any sample differs by more than the tolerance.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := signalio.ColumnOptions{
				Delimiter: a.cfg.DelimiterRune(),
				Column:    a.cfg.Files.Column,
				SkipRows:  a.cfg.Files.SkipRows,
			}

			output, err := signalio.ReadColumnFile(args[0], opts)
			if err != nil {
				return err
			}
			reference, err := signalio.ReadColumnFile(args[1], opts)
			if err != nil {
				return err
			}

			cmp, err := report.Compare(output, reference)
			if err != nil {
				return err
			}
			a.logger.Debug("compared signals",
				zap.String("output", args[0]),
				zap.String("reference", args[1]),
				zap.Float64("max_abs_diff", cmp.MaxAbsDiff))

			r := report.Report{Samples: cmp.Samples, Comparison: &cmp}
			if err := report.Render(cmd.OutOrStdout(), a.format, r); err != nil {
				return err
			}

			if tolerance > 0 && !cmp.Within(tolerance) {
				return fmt.Errorf("max abs diff %g exceeds tolerance %g", cmp.MaxAbsDiff, tolerance)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	addColumnFlags(fs)
	fs.Float64Var(&tolerance, "tolerance", 0, "fail when a sample differs by more than this")
	return cmd
}
