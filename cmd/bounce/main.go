package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/export"
	"github.com/san-kum/bounce/internal/gui"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/scene"
	"github.com/san-kum/bounce/internal/sim"
	"github.com/san-kum/bounce/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile      string
	preset          string
	title           string
	width           int
	height          int
	fps             int
	groundTolerance float64
	debug           bool

	// tui
	hold    int
	braille bool

	// trace
	frames    int
	keySpec   string
	bodyIndex int
	jsonOut   string
	svgOut    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bounce",
		Short:        "bouncing body simulation",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "scene file (yaml)")
	pf.StringVar(&preset, "preset", "default", "scene preset")
	pf.StringVar(&title, "title", config.DefaultTitle, "window title")
	pf.IntVar(&width, "width", config.DefaultWidth, "viewport width")
	pf.IntVar(&height, "height", config.DefaultHeight, "viewport height")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	pf.Float64Var(&groundTolerance, "ground-tolerance", 0, "slack for the on-ground jump test (0 = exact)")
	pf.BoolVar(&debug, "debug", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerminal,
	}
	tuiCmd.Flags().IntVar(&hold, "hold", viz.DefaultHold, "frames a key press stays held")
	tuiCmd.Flags().BoolVar(&braille, "braille", false, "start in braille mode")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and plot a body's height",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	traceCmd.Flags().StringVar(&keySpec, "keys", "", "key schedule, e.g. \"d:0-60,w:120\"")
	traceCmd.Flags().IntVar(&bodyIndex, "body", 0, "body to trace")
	traceCmd.Flags().StringVar(&jsonOut, "json", "", "write a JSON report to this path (- for stdout)")
	traceCmd.Flags().StringVar(&svgOut, "svg", "", "write the height plot as SVG to this path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg, _ := config.GetPreset(name)
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %dx%d, %d bodies\n", name, cfg.Width, cfg.Height, len(cfg.Bodies))
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, tuiCmd, traceCmd, presetsCmd)
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves the scene: preset, then config file, then any flag set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.GetPreset(preset)
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("ground-tolerance") {
		cfg.GroundTolerance = groundTolerance
	}

	return cfg, cfg.Validate()
}

func buildEngine(cmd *cobra.Command, log *slog.Logger, opts ...sim.Option) (*config.Config, *sim.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, sim.WithLogger(log))
	eng, err := scene.Build(cfg, scene.NewRegistry(), opts...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, eng, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, eng, err := buildEngine(cmd, log)
	if err != nil {
		return err
	}
	log.Info("opening window", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "fps", cfg.FPS)
	return gui.Run(eng, cfg.Title, cfg.FPS, log)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, eng, err := buildEngine(cmd, log)
	if err != nil {
		return err
	}
	return viz.Run(eng, viz.Options{
		Title:   cfg.Title,
		FPS:     cfg.FPS,
		Hold:    hold,
		Braille: braille,
		Log:     log,
	})
}

func runTrace(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, eng, err := buildEngine(cmd, log)
	if err != nil {
		return err
	}
	if bodyIndex < 0 || bodyIndex >= len(eng.Bodies()) {
		return fmt.Errorf("body %d out of range (scene has %d)", bodyIndex, len(eng.Bodies()))
	}

	surface := sim.NewHeadless(frames)
	if err := parseKeySchedule(keySpec, surface); err != nil {
		return err
	}

	trace := metrics.NewTrace(bodyIndex)
	eng.AddObserver(trace)
	ms := metrics.Defaults(cfg.Physics.Gravity)
	for _, m := range ms {
		eng.AddObserver(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := eng.Run(ctx, surface); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := export.NewReport(cfg.Title, eng, trace, bodyIndex, ms)
	if svgOut != "" {
		if err := export.ExportSVG(svgOut, report, 800, 300); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		log.Info("wrote plot", "path", svgOut)
	}
	switch jsonOut {
	case "":
	case "-":
		return export.WriteJSON(out, report)
	default:
		if err := export.ExportJSON(jsonOut, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Info("wrote report", "path", jsonOut)
	}

	fmt.Fprintf(out, "scene: %s (%dx%d)\n", cfg.Title, cfg.Width, cfg.Height)
	fmt.Fprintf(out, "frames: %d\n\n", eng.Frame())

	if values := trace.Values(); len(values) > 0 {
		fmt.Fprintln(out, asciigraph.Plot(values,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d height above floor (px)", bodyIndex)),
		))
		fmt.Fprintln(out)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.4f\n", m.Name(), m.Value())
	}
	for i, b := range eng.Bodies() {
		st := b.State()
		fmt.Fprintf(w, "body %d\tpos (%.3f, %.3f) vel (%.3f, %.3f)\n", i, st.Pos.X, st.Pos.Y, st.Vel.X, st.Vel.Y)
	}
	return w.Flush()
}

// parseKeySchedule reads "key:from-to" or "key:frame" entries separated by
// commas. Ranges are half-open.
func parseKeySchedule(schedule string, h *sim.Headless) error {
	if strings.TrimSpace(schedule) == "" {
		return nil
	}
	for _, entry := range strings.Split(schedule, ",") {
		name, span, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return fmt.Errorf("invalid key entry %q (want key:from-to)", entry)
		}
		key := dynamo.ParseKey(name)
		if key == dynamo.KeyUnknown {
			return fmt.Errorf("unknown key %q", name)
		}

		fromStr, toStr, isRange := strings.Cut(span, "-")
		from, err := strconv.Atoi(fromStr)
		if err != nil {
			return fmt.Errorf("invalid frame in %q: %w", entry, err)
		}
		to := from + 1
		if isRange {
			if to, err = strconv.Atoi(toStr); err != nil {
				return fmt.Errorf("invalid frame in %q: %w", entry, err)
			}
		}
		if to <= from {
			return fmt.Errorf("empty frame range in %q", entry)
		}
		h.Hold(from, to, key)
	}
	return nil
}
