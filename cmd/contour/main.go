// Command contour traces isolines of a gridded field stored in a YAML or JSON
// document and prints them.
//
// Usage:
//
//	contour trace field.yaml                 # 10 automatic levels, YAML output
//	contour trace field.yaml -n 4 -f json    # 4 automatic levels, JSON output
//	contour trace field.yaml -l 2,3          # explicit levels
//	contour levels field.yaml -n 4           # only print the chosen levels
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isoline/contour"
	"github.com/katalvlaran/isoline/internal/gridfile"
	"github.com/katalvlaran/isoline/levels"
	"github.com/katalvlaran/isoline/march"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "contour",
		Short:         "Trace isolines of a gridded scalar field",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				contour.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-level statistics to stderr")
	root.AddCommand(newTraceCmd(), newLevelsCmd())

	return root
}

type traceFlags struct {
	levels     []float64
	count      int
	format     string
	workers    int
	partitions int
	decider    string
}

func newTraceCmd() *cobra.Command {
	var f traceFlags
	cmd := &cobra.Command{
		Use:   "trace FILE",
		Short: "Trace contours and print them as YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, args[0], f)
		},
	}
	cmd.Flags().Float64SliceVarP(&f.levels, "levels", "l", nil, "explicit levels to trace (overrides --count)")
	cmd.Flags().IntVarP(&f.count, "count", "n", levels.DefaultCount, "number of automatic levels")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(gridfile.FormatYAML), "output format: yaml or json")
	cmd.Flags().IntVar(&f.workers, "workers", contour.DefaultWorkers, "levels traced concurrently (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&f.partitions, "partitions", contour.DefaultPartitions, "concurrent cell bands per level")
	cmd.Flags().StringVar(&f.decider, "decider", contour.DefaultDecider.String(), "saddle decider: mean or saddle")

	return cmd
}

func runTrace(cmd *cobra.Command, path string, f traceFlags) error {
	if f.workers < 0 {
		return fmt.Errorf("--workers must be >= 0, got %d", f.workers)
	}
	if f.partitions < 1 {
		return fmt.Errorf("--partitions must be >= 1, got %d", f.partitions)
	}
	d, ok := march.ParseDecider(f.decider)
	if !ok {
		return fmt.Errorf("--decider: unknown decider %q", f.decider)
	}
	for _, l := range f.levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return fmt.Errorf("--levels: level %g is not finite", l)
		}
	}
	format := gridfile.Format(f.format)
	if format != gridfile.FormatYAML && format != gridfile.FormatJSON {
		return fmt.Errorf("--format: unknown format %q", f.format)
	}

	g, err := gridfile.LoadFile(path)
	if err != nil {
		return err
	}
	opts := []contour.Option{
		contour.WithWorkers(f.workers),
		contour.WithPartitions(f.partitions),
		contour.WithDecider(d),
	}

	var c contour.Collection
	if cmd.Flags().Changed("levels") {
		c, err = contour.ContoursAt(g, f.levels, opts...)
	} else {
		c, err = contour.ContoursN(g, f.count, opts...)
	}
	if err != nil {
		return err
	}

	return gridfile.Write(cmd.OutOrStdout(), c, format)
}

func newLevelsCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "levels FILE",
		Short: "Print the automatically chosen levels for a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gridfile.LoadFile(args[0])
			if err != nil {
				return err
			}
			lv, err := contour.ContourLevels(g.Rows(), count)
			if err != nil {
				return err
			}
			for _, l := range lv {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", l)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", levels.DefaultCount, "number of levels")

	return cmd
}
