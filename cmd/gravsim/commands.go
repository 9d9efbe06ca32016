package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravsim/internal/automation"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/experiment"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/gui"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/storage"
	"github.com/san-kum/gravsim/internal/viz"
	"github.com/spf13/cobra"
)

// resolveConfig layers the configuration: preset, then config file, then
// explicitly set flags. A positional preset wins over --preset.
func resolveConfig(cmd *cobra.Command, args []string) (string, *config.Config, error) {
	name := "default"
	if preset != "" {
		name = preset
	}
	if len(args) > 0 {
		name = args[0]
	}

	cfg := config.GetPreset(name)
	if cfg == nil {
		return "", nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return "", nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Generator.Count = count
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("boundary") {
		cfg.Boundary.Mode = boundary
	}
	if flags.Changed("generator") {
		cfg.Generator.Mode = generator
	}
	if flags.Changed("no-merge") {
		cfg.Merge = !noMerge
	}

	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}
	return name, cfg, nil
}

func runInteractiveGUI() error {
	return gui.RunInteractive()
}

func runTUI(cmd *cobra.Command, args []string) error {
	return viz.RunInteractive()
}

func runGUI(cmd *cobra.Command, args []string) error {
	name, cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	return gui.Run(name, cfg)
}

func runLive(cmd *cobra.Command, args []string) error {
	name, cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	registry := experiment.NewRegistry()
	return viz.Run(name, func() (*dynamo.Simulator, error) {
		return registry.Build(cfg)
	})
}

func runSimulation(cmd *cobra.Command, args []string) error {
	name, cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s: %d particles, %d ticks, seed %d\n", name, exp.GetSimulator().Count(), cfg.Ticks, cfg.Seed)
	start := time.Now()
	rec, runErr := exp.Run(ctx)
	elapsed := time.Since(start)
	if rec == nil || rec.Result == nil {
		return runErr
	}

	st := storage.New(dataDir)
	runID, err := st.Save(name, cfg, rec.Result, rec.Samples)
	if err != nil {
		return err
	}

	res := rec.Result
	fmt.Printf("run: %s\n", runID)
	fmt.Printf("ticks: %d/%d in %v\n", res.TicksTaken, cfg.Ticks, elapsed.Round(time.Millisecond))
	fmt.Printf("particles: %d -> %d (%d merges)\n\n", res.InitialCount, res.FinalCount, res.Merges)

	names := make([]string, 0, len(res.Metrics))
	for k := range res.Metrics {
		names = append(names, k)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, k := range names {
		fmt.Fprintf(w, "%s\t%.6g\n", k, res.Metrics[k])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func snapshot(cmd *cobra.Command, args []string) error {
	_, cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	sim, err := experiment.NewRegistry().Build(cfg)
	if err != nil {
		return err
	}
	if _, err := sim.Run(cmd.Context(), cfg.Ticks); err != nil {
		return err
	}

	svg := export.FrameToSVG(sim.Frame(), size, "#eeeeee", "#444466")
	if svgOut == "" {
		_, err = fmt.Print(svg)
		return err
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d particles after %d ticks)\n", svgOut, sim.Count(), sim.Ticks())
	return nil
}

func bench(cmd *cobra.Command, args []string) error {
	_, base, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	benchTicks := 100
	if cmd.Flags().Changed("ticks") {
		benchTicks = base.Ticks
	}

	registry := experiment.NewRegistry()
	fmt.Printf("benchmarking %s/%s\n\n", base.Generator.Mode, base.Boundary.Mode)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COUNT\tTICKS\tFINAL\tTIME\tTICKS/SEC")

	for _, n := range []int{100, 200, 400, 800} {
		cfg := base.Clone()
		cfg.Generator.Count = n
		sim, err := registry.Build(cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := sim.Run(cmd.Context(), benchTicks)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
			n, res.TicksTaken, res.FinalCount, elapsed.Round(time.Microsecond), float64(res.TicksTaken)/elapsed.Seconds())
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tTICKS\tPARTICLES\tMERGES\tBOUNDARY\tGENERATOR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d->%d\t%d\t%s\t%s\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TicksTaken,
			run.InitialCount,
			run.FinalCount,
			run.Merges,
			run.Boundary,
			run.Generator,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Name)
	fmt.Printf("samples: %d\n\n", len(samples))

	plots := []struct {
		caption string
		value   func(metrics.Sample) float64
	}{
		{"particles", func(s metrics.Sample) float64 { return float64(s.Count) }},
		{"total energy", metrics.Sample.Energy},
		{"kinetic energy", func(s metrics.Sample) float64 { return s.KineticEnergy }},
		{"angular momentum", func(s metrics.Sample) float64 { return s.AngularMomentum }},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(metrics.Series(samples, p.value),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if svgOut != "" {
		xs := metrics.Series(samples, func(s metrics.Sample) float64 { return float64(s.Tick) })
		counts := metrics.Series(samples, func(s metrics.Sample) float64 { return float64(s.Count) })
		svg := export.SeriesToSVG(xs, counts, 800, 300, "#3366cc")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportCSV(os.Stdout, args[0])
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tCOUNT\tGENERATOR\tBOUNDARY\tMERGE\tTICKS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%t\t%d\n",
			name, p.Generator.Count, p.Generator.Mode, p.Boundary.Mode, p.Merge, p.Ticks)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if scenario.Description != "" {
		fmt.Printf("%s: %s\n", scenario.Name, scenario.Description)
	}

	results, err := scenario.Run(cmd.Context(), experiment.NewRegistry(), storage.New(dataDir), os.Stdout)
	if len(results) > 0 {
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tNAME\tTICKS\tPARTICLES\tMERGES\tRUN")
		for _, r := range results {
			res := r.Record.Result
			fmt.Fprintf(w, "%d\t%s\t%d\t%d->%d\t%d\t%s\n",
				r.Step, r.Name, res.TicksTaken, res.InitialCount, res.FinalCount, res.Merges, r.RunID)
		}
		if ferr := w.Flush(); ferr != nil {
			return ferr
		}
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	_, cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	grid := &automation.Grid{Base: cfg, Seeds: seeds, Workers: workers}
	for _, s := range axes {
		axis, err := automation.ParseAxis(s)
		if err != nil {
			return err
		}
		grid.Axes = append(grid.Axes, axis)
	}

	start := time.Now()
	points, err := grid.Run(cmd.Context(), experiment.NewRegistry())
	if err != nil {
		return err
	}
	sums, err := automation.Summarize(points, metric)
	if err != nil {
		return err
	}
	fmt.Printf("%d runs in %v\n\n", len(points), time.Since(start).Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CELL\tRUNS\tMEAN(%s)\tSTDDEV\tMIN\tMAX\n", metric)
	for _, s := range sums {
		cell := automation.FormatValues(s.Values)
		if cell == "" {
			cell = "(base)"
		}
		fmt.Fprintf(w, "%s\t%d\t%.6g\t%.3g\t%.6g\t%.6g\n", cell, s.Runs, s.Mean, s.StdDev, s.Min, s.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := automation.Best(sums, maximize); ok && len(sums) > 1 {
		fmt.Printf("\nbest: %s (mean %.6g)\n", automation.FormatValues(best.Values), best.Mean)
	}
	return nil
}
