package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mkarpis/partbox/internal/config"
	"github.com/mkarpis/partbox/internal/metrics"
	"github.com/mkarpis/partbox/internal/sim"
	"github.com/mkarpis/partbox/internal/storage"
	"github.com/mkarpis/partbox/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	timeScale  int
	configFile string
	axis       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "partbox",
		Short: "2D particle physics sandbox",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".partbox", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a headless simulation and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (overrides scene setting)")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration (overrides scene setting)")
	runCmd.Flags().IntVar(&timeScale, "timescale", 0, "physics ticks per frame (overrides scene setting)")
	runCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (overrides scene setting)")
	liveCmd.Flags().IntVar(&timeScale, "timescale", 0, "physics ticks per frame (overrides scene setting)")
	liveCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded state column over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&axis, "axis", 0, "state column index (px0 py0 vx0 vy0 px1 ...)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScene resolves a preset name or config file into a run config,
// applying CLI flag overrides.
func loadScene(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	name := "water"
	if len(args) > 0 {
		name = args[0]
	}

	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load scene file: %w", err)
		}
		cfg = loaded
		name = strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
	} else {
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("timescale") {
		cfg.TimeScale = timeScale
	}
	return cfg, name, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	s, err := cfg.ToScene()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.New(s)
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMomentumDrift())
	runner.AddMetric(metrics.NewBondCount())

	runCfg := sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, TimeScale: cfg.TimeScale}

	fmt.Printf("running %s...\n", name)
	start := time.Now()

	result, err := runner.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(name, runCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d (%d physics ticks)\n", len(result.States), result.StepsTaken)
	if result.Warnings > 0 {
		fmt.Printf("warning: solver hit its iteration cap on %d ticks; results may be unstable\n", result.Warnings)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	s, err := cfg.ToScene()
	if err != nil {
		return err
	}

	return viz.Run(s, name, cfg.Dt, cfg.TimeScale)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tPARTICLES\tDT\tDURATION\tWARNINGS\tBONDS LEFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.1f\t%d\t%d\n",
			run.ID, run.Scene, run.Particles, run.Dt, run.Duration, run.Warnings, run.BondsLeft)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("run %s has no recorded frames", args[0])
	}
	if axis < 0 || axis >= len(states[0]) {
		return fmt.Errorf("axis %d out of range (run has %d state columns)", axis, len(states[0]))
	}

	series := make([]float64, len(states))
	for i, row := range states {
		series[i] = row[axis]
	}

	labels := []string{"px", "py", "vx", "vy"}
	caption := fmt.Sprintf("%s%d", labels[axis%4], axis/4)
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(16), asciigraph.Width(70), asciigraph.Caption(caption)))
	return nil
}
