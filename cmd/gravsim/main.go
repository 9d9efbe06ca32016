package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	count      int
	ticks      int
	seed       int64
	boundary   string
	generator  string
	noMerge    bool
	svgOut     string
	size       int
	axes       []string
	seeds      int
	workers    int
	metric     string
	maximize   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gravsim",
		Short:         "2d gravitational n-body sandbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveGUI()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "data directory")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "open the simulation in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run the simulation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick and tune a preset in the terminal, then run it live",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run headless and record samples",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [preset]",
		Short: "write an svg of the frame after --ticks ticks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshot,
	}
	addSimFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().IntVar(&size, "size", 800, "image size in pixels")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure tick throughput for growing populations",
		Args:  cobra.NoArgs,
		RunE:  bench,
	}
	addSimFlags(benchCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded samples",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the particle count as svg")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "run a parameter grid over several seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&axes, "param", nil, "swept parameter as name=v1,v2 (repeatable)")
	sweepCmd.Flags().IntVar(&seeds, "seeds", 3, "seeds per grid cell")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (default GOMAXPROCS)")
	sweepCmd.Flags().StringVar(&metric, "metric", "final_count", "metric to summarize")
	sweepCmd.Flags().BoolVar(&maximize, "max", false, "pick the cell with the highest mean")

	rootCmd.AddCommand(guiCmd, liveCmd, tuiCmd, runCmd, snapshotCmd, benchCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, scenarioCmd, sweepCmd)
	return rootCmd
}

func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.IntVar(&count, "count", 0, "number of particles")
	f.IntVar(&ticks, "ticks", 0, "number of ticks")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.StringVar(&boundary, "boundary", "", "boundary mode")
	f.StringVar(&generator, "generator", "", "generator mode")
	f.BoolVar(&noMerge, "no-merge", false, "disable merging on overlap")
}
