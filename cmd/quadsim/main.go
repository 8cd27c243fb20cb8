package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/quadsim/internal/analysis"
	"github.com/san-kum/quadsim/internal/automation"
	"github.com/san-kum/quadsim/internal/config"
	"github.com/san-kum/quadsim/internal/export"
	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/logging"
	"github.com/san-kum/quadsim/internal/metrics"
	"github.com/san-kum/quadsim/internal/optim"
	"github.com/san-kum/quadsim/internal/sim"
	"github.com/san-kum/quadsim/internal/tui"
)

var (
	logLevel   string
	configFile string
	preset     string
	// mission
	start     string
	waypoints []string
	rtl       bool
	// controller
	kp            float64
	ki            float64
	kd            float64
	integralLimit float64
	losGain       float64
	yawLaw        string
	yawGain       float64
	// loop
	dt           float64
	ticks        int
	maxTicks     int
	historyLimit int
	approachGain float64
	// output
	outFile     string
	format      string
	summaryFile string
	fromFile    string
	axisName    string
	// tuning
	kpGrid  []float64
	kiGrid  []float64
	kdGrid  []float64
	metric  string
	workers int
	topN    int
	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "quadsim",
		Short:         "quadrotor waypoint flight-control simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error, off)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a mission and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runMission,
	}
	addMissionFlags(runCmd)
	runCmd.Flags().StringVarP(&outFile, "out", "o", "", "write frames to file")
	runCmd.Flags().StringVar(&format, "format", "", "frame format: csv or json (default from --out extension)")
	runCmd.Flags().StringVar(&summaryFile, "summary", "", "write run summary json to file")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot altitude, attitude, thrust and motor 1",
		Args:  cobra.NoArgs,
		RunE:  plotMission,
	}
	addMissionFlags(plotCmd)
	plotCmd.Flags().StringVar(&fromFile, "from", "", "plot frames from a csv or json-lines file instead of running")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "fly the mission in a live terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addMissionFlags(liveCmd)

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search over PID gains",
		Args:  cobra.NoArgs,
		RunE:  tuneGains,
	}
	addMissionFlags(tuneCmd)
	tuneCmd.Flags().Float64SliceVar(&kpGrid, "kp-grid", []float64{0.5, 1, 2}, "kp values")
	tuneCmd.Flags().Float64SliceVar(&kiGrid, "ki-grid", []float64{0, 0.05}, "ki values")
	tuneCmd.Flags().Float64SliceVar(&kdGrid, "kd-grid", []float64{0, 0.1, 0.5}, "kd values")
	tuneCmd.Flags().StringVar(&metric, "metric", "tracking_error", "metric to minimise")
	tuneCmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (0 = GOMAXPROCS)")
	tuneCmd.Flags().IntVar(&topN, "top", 5, "number of trials to print")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of a control axis and the ground track",
		Args:  cobra.NoArgs,
		RunE:  analyzeMission,
	}
	addMissionFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&fromFile, "from", "", "analyse frames from a csv or json-lines file instead of running")
	analyzeCmd.Flags().StringVar(&axisName, "axis", "roll", "control axis: roll, pitch, yaw or thrust")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark tick throughput",
		Args:  cobra.NoArgs,
		RunE:  benchTicks,
	}
	addMissionFlags(benchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list mission presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario <file>",
		Short: "run a scripted sequence of missions from yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one tunable and tabulate the metrics",
		Args:  cobra.NoArgs,
		RunE:  sweepParameter,
	}
	addMissionFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "kp", "tunable: kp, ki, kd, integral_limit or los_gain")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 2, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (0 = GOMAXPROCS)")

	rootCmd.AddCommand(runCmd, plotCmd, analyzeCmd, liveCmd, tuneCmd, benchCmd, scenarioCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addMissionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset mission")

	f.StringVar(&start, "start", "", "launch position lat,lon,alt")
	f.StringArrayVarP(&waypoints, "waypoint", "w", nil, "waypoint lat,lon,alt (repeatable)")
	f.BoolVar(&rtl, "rtl", false, "return to launch")

	f.Float64Var(&kp, "kp", config.DefaultKp, "pid kp")
	f.Float64Var(&ki, "ki", config.DefaultKi, "pid ki")
	f.Float64Var(&kd, "kd", config.DefaultKd, "pid kd")
	f.Float64Var(&integralLimit, "integral-limit", 0, "clamp each pid integral to +/- this value (0 = unbounded)")
	f.Float64Var(&losGain, "los-gain", config.DefaultLOSGain, "line-of-sight gain")
	f.StringVar(&yawLaw, "yaw-law", "zero", "yaw law: zero or heading")
	f.Float64Var(&yawGain, "yaw-gain", 1, "heading yaw gain")

	f.Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	f.IntVarP(&ticks, "ticks", "n", config.DefaultTicks, "number of ticks")
	f.IntVar(&maxTicks, "max-ticks", 0, "step budget (0 = unbounded)")
	f.IntVar(&historyLimit, "history-limit", 0, "keep only the newest frames (0 = all)")
	f.Float64Var(&approachGain, "approach-gain", 0, "position approach gain (0 = default)")
}

// loadConfig layers defaults, preset, config file and changed flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		p, err := parsePosition(start)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		cfg.Start = p
	}
	if flags.Changed("waypoint") {
		cfg.Waypoints = cfg.Waypoints[:0]
		for _, s := range waypoints {
			p, err := parsePosition(s)
			if err != nil {
				return nil, fmt.Errorf("--waypoint %q: %w", s, err)
			}
			cfg.Waypoints = append(cfg.Waypoints, p)
		}
	}
	if flags.Changed("rtl") {
		cfg.RTL = rtl
	}
	if flags.Changed("kp") {
		cfg.Controller.Kp = kp
	}
	if flags.Changed("ki") {
		cfg.Controller.Ki = ki
	}
	if flags.Changed("kd") {
		cfg.Controller.Kd = kd
	}
	if flags.Changed("integral-limit") {
		cfg.Controller.IntegralLimit = integralLimit
	}
	if flags.Changed("los-gain") {
		cfg.LOSGain = losGain
	}
	if flags.Changed("yaw-law") {
		cfg.Yaw.Law = yawLaw
	}
	if flags.Changed("yaw-gain") {
		cfg.Yaw.Gain = yawGain
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("max-ticks") {
		cfg.MaxTicks = maxTicks
	}
	if flags.Changed("history-limit") {
		cfg.HistoryLimit = historyLimit
	}
	if flags.Changed("approach-gain") {
		cfg.ApproachGain = approachGain
	}
	return cfg, nil
}

func parsePosition(s string) (flight.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return flight.Position{}, fmt.Errorf("want lat,lon,alt, got %d fields", len(parts))
	}
	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return flight.Position{}, err
		}
		v[i] = f
	}
	return flight.Position{Lat: v[0], Lon: v[1], Alt: v[2]}, nil
}

func newLogger() (*zap.Logger, error) {
	return logging.New(logLevel)
}

func runMission(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	s := sim.New(sim.WithLogger(logger), sim.WithMetric(metrics.Defaults()...))

	var flush func() error
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()

		switch frameFormat(outFile) {
		case "csv":
			w := export.NewCSVWriter(f)
			s.AddObserver(w)
			flush = w.Flush
		case "json":
			w := export.NewJSONLinesWriter(f)
			s.AddObserver(w)
			flush = w.Err
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	handle, err := s.Start(params)
	if err != nil {
		return err
	}

	began := time.Now()
	frames, err := s.Run(ctx, cfg.Ticks)
	elapsed := time.Since(began)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if flush != nil {
		if err := flush(); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
	}

	res := s.Result()
	s.Stop()

	fmt.Printf("run id:   %s\n", handle.ID)
	fmt.Printf("ticks:    %s in %v (%s ticks/s)\n",
		humanize.Comma(int64(len(frames))),
		elapsed.Round(time.Microsecond),
		tickRate(len(frames), elapsed))
	if n := len(frames); n > 0 {
		last := frames[n-1]
		fmt.Printf("sim time: %.2fs\n", last.Time)
		fmt.Printf("position: %.7f, %.7f, %.3f\n", last.Position.Lat, last.Position.Lon, last.Position.Alt)
		fmt.Printf("control:  roll=%+.4f pitch=%+.4f yaw=%+.4f thrust=%.4f\n",
			last.ControlState.Roll, last.ControlState.Pitch, last.ControlState.Yaw, last.ControlState.Thrust)
		fmt.Printf("motors:   %v\n", last.MotorCommands)
	}
	switch {
	case params.RTL:
		fmt.Println("mission:  return to launch")
	default:
		fmt.Printf("mission:  %d/%d waypoints\n", min(res.Mission.Index, len(params.Waypoints)), len(params.Waypoints))
	}
	if outFile != "" {
		if info, err := os.Stat(outFile); err == nil {
			fmt.Printf("frames:   %s (%s)\n", outFile, humanize.Bytes(uint64(info.Size())))
		}
	}

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%.6g\n", name, res.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if summaryFile != "" {
		f, err := os.Create(summaryFile)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteSummary(f, export.NewSummary(res))
	}
	return nil
}

func tickRate(n int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}
	return humanize.Comma(int64(float64(n) / elapsed.Seconds()))
}

func frameFormat(path string) string {
	if format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".ndjson":
		return "json"
	}
	return "csv"
}

// loadFrames reads --from when set, otherwise flies the configured
// mission.
func loadFrames(cmd *cobra.Command) ([]flight.Frame, error) {
	if fromFile != "" {
		f, err := os.Open(fromFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		var frames []flight.Frame
		if frameFormat(fromFile) == "json" {
			frames, err = export.ReadJSONLines(f)
		} else {
			frames, err = export.ReadCSV(f)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fromFile, err)
		}
		fmt.Printf("source:  %s\n", fromFile)
		return frames, nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	defer logger.Sync()

	s := sim.New(sim.WithLogger(logger))
	if _, err := s.Start(params); err != nil {
		return nil, err
	}
	return s.Run(context.Background(), cfg.Ticks)
}

func plotMission(cmd *cobra.Command, args []string) error {
	frames, err := loadFrames(cmd)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}
	fmt.Printf("samples: %s\n\n", humanize.Comma(int64(len(frames))))

	series := []struct {
		caption string
		value   func(f flight.Frame) float64
	}{
		{"altitude", func(f flight.Frame) float64 { return f.Position.Alt }},
		{"thrust", func(f flight.Frame) float64 { return f.ControlState.Thrust }},
		{"roll", func(f flight.Frame) float64 { return f.ControlState.Roll }},
		{"pitch", func(f flight.Frame) float64 { return f.ControlState.Pitch }},
		{"motor 1 (pwm)", func(f flight.Frame) float64 { return float64(f.MotorCommands[0]) }},
	}

	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.value(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeMission(cmd *cobra.Command, args []string) error {
	axis, err := parseAxis(axisName)
	if err != nil {
		return err
	}
	frames, err := loadFrames(cmd)
	if err != nil {
		return err
	}

	ps, err := analysis.AxisSpectrum(frames, axis)
	if err != nil {
		return err
	}

	plotData := ps.Power[:max(len(ps.Power)/4, 1)]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", axis)),
	)
	fmt.Println(graph)
	fmt.Println()

	if freq, _, ok := ps.Dominant(); ok {
		fmt.Printf("dominant frequency: %.3f hz\n", freq)
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	} else {
		fmt.Println("dominant frequency: none (axis is steady)")
	}

	fmt.Println("\nground track (north up):")
	fmt.Print(analysis.GroundTrack(frames).ASCII(80, 20))
	return nil
}

func parseAxis(name string) (flight.Axis, error) {
	for a := flight.Roll; a < flight.NumAxes; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown axis: %s", name)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ticks") || cfg.MaxTicks == 0 {
		params.MaxTicks = cfg.Ticks
	}

	// stderr logging would tear the alternate screen
	return tui.Run(sim.New(), params)
}

func tuneGains(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	grid := optim.NewGridSearch(
		[]string{"kp", "ki", "kd"},
		[][]float64{kpGrid, kiGrid, kdGrid},
		sim.WithWorkers(workers),
		sim.WithEnsembleLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n := len(kpGrid) * len(kiGrid) * len(kdGrid)
	fmt.Printf("searching %s combinations x %s ticks...\n\n", humanize.Comma(int64(n)), humanize.Comma(int64(cfg.Ticks)))
	began := time.Now()

	best, trials, err := grid.Search(ctx, params, cfg.Ticks, metric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\tKP\tKI\tKD\t%s\n", strings.ToUpper(metric))
	for i, t := range trials {
		if i >= topN {
			break
		}
		fmt.Fprintf(w, "%d\t%g\t%g\t%g\t%.6g\n", i+1, t.Params["kp"], t.Params["ki"], t.Params["kd"], t.Score)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest: kp=%g ki=%g kd=%g (%s=%.6g) in %v\n",
		best.Params["kp"], best.Params["ki"], best.Params["kd"], metric, best.Score,
		time.Since(began).Round(time.Millisecond))
	return nil
}

func benchTicks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	base, err := cfg.Params()
	if err != nil {
		return err
	}

	dts := []float64{0.1, 0.05, 0.01}
	counts := []int{1_000, 10_000, 100_000}

	fmt.Println("benchmarking tick loop")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tTICKS\tHISTORY\tTIME\tTICKS/SEC")

	for _, n := range counts {
		for _, step := range dts {
			p := base
			p.Dt = step
			p.MaxTicks = 0

			s := sim.New()
			if _, err := s.Start(p); err != nil {
				return err
			}

			began := time.Now()
			if _, err := s.Run(context.Background(), n); err != nil {
				return err
			}
			elapsed := time.Since(began)

			fmt.Fprintf(w, "%.2fs\t%s\t%s\t%v\t%s\n",
				step,
				humanize.Comma(int64(n)),
				humanize.Comma(int64(len(s.History()))),
				elapsed.Round(time.Microsecond),
				tickRate(n, elapsed),
			)
		}
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if sc.Description != "" {
		fmt.Printf("%s: %s\n\n", sc.Name, sc.Description)
	}
	began := time.Now()
	results, err := automation.RunScenario(ctx, sc, logger)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tNAME\tFRAMES\tWAYPOINT\tTRACKING\tEFFORT\tSAVED")
	for i, r := range results {
		step := sc.Steps[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%.6g\t%.6g\t%s\n",
			i+1, step.Name, humanize.Comma(int64(len(r.Frames))),
			r.Mission.Index, len(r.Mission.Waypoints),
			r.Metrics["tracking_error"], r.Metrics["control_effort"], step.SaveAs)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	fmt.Printf("\n%d steps in %v\n", len(results), time.Since(began).Round(time.Millisecond))
	return nil
}

func sweepParameter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.ParameterSweep{
		Base:      params,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Ticks:     cfg.Ticks,
	}, sim.WithWorkers(workers), sim.WithEnsembleLogger(logger))
	if err != nil {
		return err
	}

	names := make([]string, 0)
	if len(results) > 0 {
		for name := range results[0].Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tWAYPOINT\tALT", strings.ToUpper(sweepParam))
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(name))
	}
	fmt.Fprintln(w)
	for _, r := range results {
		fmt.Fprintf(w, "%g\t%d\t%.3f", r.ParamValue, r.Waypoint, r.Final.Position.Alt)
		for _, name := range names {
			fmt.Fprintf(w, "\t%.6g", r.Metrics[name])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWAYPOINTS\tDT\tTICKS\tRTL\tYAW\tGAINS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		law := p.Yaw.Law
		if law == "" {
			law = "zero"
		}
		fmt.Fprintf(w, "%s\t%d\t%.2fs\t%s\t%v\t%s\tkp=%g ki=%g kd=%g\n",
			name, len(p.Waypoints), p.Dt, humanize.Comma(int64(p.Ticks)), p.RTL, law,
			p.Controller.Kp, p.Controller.Ki, p.Controller.Kd)
	}
	return w.Flush()
}
