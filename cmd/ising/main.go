package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ising/internal/command"
	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/experiment"
	"github.com/san-kum/ising/internal/export"
	"github.com/san-kum/ising/internal/render"
	"github.com/san-kum/ising/internal/scan"
	"github.com/san-kum/ising/internal/sim"
	"github.com/san-kum/ising/internal/viz"
)

var (
	verbose bool

	width       int
	height      int
	temperature float64
	coupling    float64
	seed        int64
	sweeps      int
	initMode    string
	format      string
	outPath     string
	svgPath     string
	configFile  string
	preset      string

	// live view
	burst     int
	frameRate int
	theme     string
	logFile   string

	// scan
	scanWidth  int
	scanHeight int
	scanSweeps int
	scanSeed   int64
	scanInit   string
	tMin       float64
	tMax       float64
	points     int
	workers    int
)

// main registers the ising subcommands and exits with status 1 on error.
// With no subcommand it opens the live view at default settings.
func main() {
	rootCmd := &cobra.Command{
		Use:           "ising",
		Short:         "2D Ising model Metropolis simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLive,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log simulator events to stderr")
	addLiveFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a fixed number of sweeps and print the final lattice",
		Args:  cobra.NoArgs,
		RunE:  runBatch,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addLiveFlags(liveCmd)

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "magnetisation across a temperature range",
		Args:  cobra.NoArgs,
		RunE:  runScan,
	}
	scanCmd.Flags().IntVar(&scanWidth, "width", 32, "lattice width")
	scanCmd.Flags().IntVar(&scanHeight, "height", 32, "lattice height")
	scanCmd.Flags().Float64Var(&tMin, "tmin", 1.0, "lowest temperature")
	scanCmd.Flags().Float64Var(&tMax, "tmax", 4.0, "highest temperature")
	scanCmd.Flags().IntVar(&points, "points", 16, "number of temperatures")
	scanCmd.Flags().IntVar(&scanSweeps, "sweeps", 200, "sweeps per temperature")
	scanCmd.Flags().Int64Var(&scanSeed, "seed", 1, "seed of the first temperature; point i uses seed+i")
	scanCmd.Flags().StringVar(&scanInit, "init", config.InitUp, "initial lattice: down, up or random")
	scanCmd.Flags().IntVar(&workers, "workers", 0, "concurrent simulators (0 means one per point)")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a yaml command script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().StringVar(&format, "format", string(render.FormatText), "output format: text or binary")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, scanCmd, scriptCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "lattice width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "lattice height")
	cmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemperature, "temperature")
	cmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCoupling, "coupling constant J")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the OS)")
	cmd.Flags().IntVar(&sweeps, "sweeps", config.DefaultSweeps, "number of sweeps (W·H updates each)")
	cmd.Flags().StringVar(&initMode, "init", config.InitDown, "initial lattice: down, up or random")
	cmd.Flags().StringVar(&format, "format", string(render.FormatText), "output format: text or binary")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the final lattice to a file instead of stdout")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also write the final lattice as SVG")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", sim.DefaultWidth, "lattice width")
	cmd.Flags().IntVar(&height, "height", sim.DefaultHeight, "lattice height")
	cmd.Flags().Float64Var(&temperature, "temp", sim.DefaultTemperature, "temperature")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the OS)")
	cmd.Flags().StringVar(&initMode, "init", sim.InitDown, "initial lattice: down, up or random")
	cmd.Flags().IntVar(&burst, "burst", sim.DefaultBurstSize, "updates per frame while running")
	cmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	cmd.Flags().StringVar(&theme, "theme", viz.ThemeNames()[0], fmt.Sprintf("color theme %v", viz.ThemeNames()))
	cmd.Flags().StringVar(&logFile, "log", "", "append simulator logs to this file")
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ising",
		Level:           log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("temp") {
		cfg.Temperature = temperature
	}
	if flags.Changed("coupling") {
		cfg.Coupling = coupling
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("sweeps") {
		cfg.Sweeps = sweeps
	}
	if flags.Changed("init") {
		cfg.Init = initMode
	}
	if flags.Changed("format") {
		cfg.Format = format
	}

	return cfg, cfg.Validate()
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	f, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	if err := render.Write(out, f, result.Final, cfg.Width); err != nil {
		return err
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.LatticeSVG(result.Final, cfg.Width, 8)), 0644); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "lattice %dx%d  T=%.3f  seed=%d  updates=%d  M=%.4f\nhash: %s\n",
		cfg.Width, cfg.Height, cfg.Temperature, exp.Seed(), result.Updates, result.Magnetisation, render.Hash(result.Final))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	logOut := io.Discard
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer file.Close()
		logOut = file
	}
	logger := newLogger(logOut)

	opts := []sim.Option{sim.WithBurstSize(burst), sim.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, sim.WithSeed(seed))
	}
	s, err := sim.New(width, height, temperature, opts...)
	if err != nil {
		return err
	}
	if err := s.Prepare(initMode); err != nil {
		return err
	}

	return viz.Run(s, frameRate, viz.ThemeByName(theme), logger)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	results, err := scan.Run(ctx, scan.Config{
		Width: scanWidth, Height: scanHeight,
		TMin: tMin, TMax: tMax, Points: points,
		Sweeps: scanSweeps, Seed: scanSeed, Init: scanInit, Workers: workers,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\t|M|/N")
	mags := make([]float64, len(results))
	for i, p := range results {
		fmt.Fprintf(w, "%.3f\t%.4f\n", p.Temperature, p.Magnetisation)
		mags[i] = p.Magnetisation
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(mags) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(mags,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("|M|/N for T in [%.2f, %.2f]", tMin, tMax)),
		))
	}
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	sc, err := command.LoadScript(args[0])
	if err != nil {
		return err
	}

	s, err := sc.NewSimulator(sim.WithLogger(newLogger(os.Stderr)))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if err := sc.Run(ctx, s); err != nil {
		return err
	}

	w, _ := s.Dimensions()
	if err := render.Write(cmd.OutOrStdout(), f, s.Snapshot(), w); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d updates, T=%.3f, M=%.4f\n", sc.Name, s.Steps(), s.Temperature(), s.Magnetisation())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tT\tSWEEPS\tINIT\tSEED")
	for _, name := range config.ListPresets() {
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%.3f\t%d\t%s\t%d\n", name, p.Width, p.Height, p.Temperature, p.Sweeps, p.Init, p.Seed)
	}
	return w.Flush()
}
