package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/mkarev/trajlab/internal/analysis"
	"github.com/mkarev/trajlab/internal/audio"
	"github.com/mkarev/trajlab/internal/config"
	"github.com/mkarev/trajlab/internal/export"
	"github.com/mkarev/trajlab/internal/game"
	"github.com/mkarev/trajlab/internal/gui"
	"github.com/mkarev/trajlab/internal/physics"
	"github.com/mkarev/trajlab/internal/storage"
	"github.com/mkarev/trajlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string

	velocity      float64
	angle         float64
	initialHeight float64
	finalHeight   float64
	preset        string
	seed          int64

	dt           float64
	themeName    string
	spriteSrc    string
	noSound      bool
	practiceMode bool
	dataFile     string
	saveRun      bool

	outFile   string
	svgWidth  int
	svgHeight int

	sweepFrom  float64
	sweepTo    float64
	sweepSteps int

	asJSON bool
)

// main is the entry point for the trajlab CLI. It registers all commands
// and flags, opens the interactive terminal app when no subcommand is
// given, and exits with status 1 if execution fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "trajlab",
		Short: "Projectile motion teaching lab",
		Long:  "trajlab solves, animates, and quizzes projectile motion: launch a flight, watch it in the terminal or a window, and work through the practice levels.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, false)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", config.DefaultDataDir, "data directory for saved runs and progress")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	displayFlags(rootCmd)

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a launch and print the flight report",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}
	launchFlags(solveCmd)
	solveCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run to the data directory")
	solveCmd.Flags().Int64Var(&seed, "seed", 0, "seed recorded with a saved run")

	simCmd := &cobra.Command{
		Use:   "sim",
		Short: "Cross-check the closed-form solver against RK4 integration",
		Args:  cobra.NoArgs,
		RunE:  runSim,
	}
	launchFlags(simCmd)
	simCmd.Flags().Float64Var(&dt, "dt", 0.01, "integrator time step (s)")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Animate a flight in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	launchFlags(playCmd)
	displayFlags(playCmd)
	playCmd.Flags().StringVar(&dataFile, "data", "", "trajectory payload (json file) instead of solving")
	playCmd.Flags().BoolVar(&practiceMode, "practice", false, "mask numeric results")

	practiceCmd := &cobra.Command{
		Use:   "practice",
		Short: "Jump straight into the practice game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, true)
		},
	}
	displayFlags(practiceCmd)
	practiceCmd.Flags().Int64Var(&seed, "seed", 0, "practice question seed (0 = clock)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "Animate a flight in a raylib window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	launchFlags(guiCmd)
	displayFlags(guiCmd)
	guiCmd.Flags().BoolVar(&practiceMode, "practice", false, "mask numeric results")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "Plot height and speed curves as ascii graphs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	launchFlags(plotCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "Write the full solution as json to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportJSON,
	}
	launchFlags(exportJSONCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "Write trajectory samples as csv to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCSV,
	}
	launchFlags(exportCSVCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "Render the flight scene as an svg document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportSVG,
	}
	launchFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 960, "picture width (px)")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 540, "picture height (px)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the launch angle and find the best range",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	launchFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 5, "first angle (deg)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 85, "last angle (deg)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 16, "number of sweep intervals")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "Report sampled-vs-analytic flight statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	launchFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as json")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named launch presets",
		Args:  cobra.NoArgs,
		RunE:  runPresets,
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset practice progress to level 1",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}

	rootCmd.AddCommand(solveCmd, simCmd, playCmd, practiceCmd, guiCmd,
		listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd,
		sweepCmd, analyzeCmd, presetsCmd, resetCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// launchFlags registers the launch parameters shared by every command
// that solves a flight.
func launchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "launch speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngle, "launch angle (deg from horizontal)")
	cmd.Flags().Float64Var(&initialHeight, "height", 0, "launch height (m)")
	cmd.Flags().Float64Var(&finalHeight, "target-height", 0, "landing height (m)")
	cmd.Flags().StringVar(&preset, "preset", "", "named launch preset")
}

func displayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	cmd.Flags().StringVar(&spriteSrc, "sprite", "", "actor image (file path or url)")
	cmd.Flags().BoolVar(&noSound, "no-sound", false, "disable sound cues")
}

func loadConfigFile() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveLaunch builds the launch from the config file, the preset, and
// the flags, in rising order of precedence.
func resolveLaunch(cmd *cobra.Command) (physics.Launch, error) {
	cfg, err := loadConfigFile()
	if err != nil {
		return physics.Launch{}, err
	}
	var l physics.Launch
	for name, val := range cfg.LaunchParams() {
		l.SetParam(name, val)
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return l, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		l.Velocity = p.Velocity
		l.Angle = p.Angle
		l.InitialHeight = p.InitialHeight
		l.FinalHeight = p.FinalHeight
	}

	if cmd.Flags().Changed("velocity") {
		l.Velocity = velocity
	}
	if cmd.Flags().Changed("angle") {
		l.Angle = angle
	}
	if cmd.Flags().Changed("height") {
		l.InitialHeight = initialHeight
	}
	if cmd.Flags().Changed("target-height") {
		l.FinalHeight = finalHeight
	}
	return l, nil
}

func launchGiven(cmd *cobra.Command) bool {
	for _, name := range []string{"velocity", "angle", "height", "target-height", "preset"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// openStore resolves the data directory (flag over config file) and
// returns a store rooted there.
func openStore(cmd *cobra.Command) *storage.Store {
	dir := dataDir
	if !cmd.Flags().Changed("data-dir") && configFile != "" {
		if cfg, err := config.Load(configFile); err == nil && cfg.DataDir != "" {
			dir = cfg.DataDir
		}
	}
	return storage.New(dir)
}

func applyTheme(cmd *cobra.Command, cfg *config.Config) {
	name := cfg.Display.Theme
	if cmd.Flags().Changed("theme") {
		name = themeName
	}
	viz.SetTheme(name)
}

func resolveSprite(cmd *cobra.Command, cfg *config.Config) *viz.Sprite {
	src := cfg.Display.Sprite
	if cmd.Flags().Changed("sprite") {
		src = spriteSrc
	}
	if src == "" {
		return nil
	}
	return viz.LoadSprite(src)
}

// soundCues starts the synth when sound is wanted. A missing audio
// device degrades to a silent run instead of failing the command.
func soundCues(enabled bool) (viz.Notifier, func()) {
	if !enabled || noSound {
		return nil, func() {}
	}
	player := audio.NewPlayer()
	if err := player.Start(); err != nil {
		return nil, func() {}
	}
	return player, player.Stop
}

// runApp opens the full terminal app: preset menu, flight animation,
// and the practice game, with progress persisted across sessions.
func runApp(cmd *cobra.Command, startPractice bool) error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}
	applyTheme(cmd, cfg)

	st := openStore(cmd)
	if err := st.Init(); err != nil {
		return err
	}

	sessionSeed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		sessionSeed = seed
	}

	cues, stop := soundCues(cfg.Practice.Sound)
	defer stop()

	var launch physics.Launch
	for name, val := range cfg.LaunchParams() {
		launch.SetParam(name, val)
	}

	opts := viz.Options{
		Session:         game.NewSession(st.LoadProgress(), sessionSeed),
		Sprite:          resolveSprite(cmd, cfg),
		Cues:            cues,
		Launch:          launch,
		OnLevelChange:   func(level int) { _ = st.SaveProgress(level) },
		StartInPractice: startPractice,
	}
	return viz.RunInteractive(opts)
}

func runSolve(cmd *cobra.Command, args []string) error {
	l, err := resolveLaunch(cmd)
	if err != nil {
		return err
	}
	sol, err := l.Solve()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "velocity\t%.2f m/s\n", sol.Velocity)
	fmt.Fprintf(w, "angle\t%.2f deg\n", sol.Angle)
	fmt.Fprintf(w, "launch height\t%.2f m\n", sol.InitialHeight)
	fmt.Fprintf(w, "landing height\t%.2f m\n", sol.FinalHeight)
	fmt.Fprintln(w, "\t")
	fmt.Fprintf(w, "max height\t%.2f m at %.2f s\n", sol.MaxHeight, sol.MaxHeightTime)
	fmt.Fprintf(w, "range\t%.2f m\n", sol.Range)
	fmt.Fprintf(w, "flight time\t%.2f s\n", sol.TotalTime)
	fmt.Fprintf(w, "impact velocity\t%.2f m/s\n", sol.ImpactVelocity)
	fmt.Fprintf(w, "impact angle\t%.2f deg\n", sol.ImpactAngle)
	fmt.Fprintf(w, "samples\t%d\n", len(sol.Trajectory))
	if err := w.Flush(); err != nil {
		return err
	}

	if saveRun {
		st := openStore(cmd)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveRun(l, seed, sol)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func runSim(cmd *cobra.Command, args []string) error {
	l, err := resolveLaunch(cmd)
	if err != nil {
		return err
	}
	sol, err := l.Solve()
	if err != nil {
		return err
	}
	samples, err := l.Integrate(dt)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("integration produced no samples")
	}

	drift := analysis.NewDriftMeter()
	for _, s := range samples {
		drift.Observe(s)
	}
	last := samples[len(samples)-1]

	fmt.Printf("rk4 cross-check, dt=%.4f s, %d steps\n\n", dt, len(samples))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tCLOSED FORM\tRK4")
	fmt.Fprintf(w, "range\t%.4f m\t%.4f m\n", sol.Range, last.X)
	fmt.Fprintf(w, "flight time\t%.4f s\t%.4f s\n", sol.TotalTime, last.Time)
	fmt.Fprintf(w, "impact velocity\t%.4f m/s\t%.4f m/s\n", sol.ImpactVelocity, last.V)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nrelative energy drift: %.3e\n", drift.Value())
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}
	applyTheme(cmd, cfg)

	var sol *physics.Solution
	if dataFile != "" {
		data, err := os.ReadFile(dataFile)
		if err != nil {
			return err
		}
		sol, err = physics.ParseSolution(data)
		if err != nil {
			return fmt.Errorf("bad trajectory payload %s: %w", dataFile, err)
		}
	} else {
		l, err := resolveLaunch(cmd)
		if err != nil {
			return err
		}
		sol, err = l.Solve()
		if err != nil {
			return err
		}
	}

	cues, stop := soundCues(cfg.Practice.Sound)
	defer stop()

	m := viz.NewModel(sol, resolveSprite(cmd, cfg), practiceMode)
	m.Cues = cues
	return tea.NewProgram(m, tea.WithAltScreen()).Start()
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}
	l, err := resolveLaunch(cmd)
	if err != nil {
		return err
	}

	cues, stop := soundCues(cfg.Practice.Sound)
	defer stop()

	opts := gui.Options{
		Launch: l,
		Sprite: resolveSprite(cmd, cfg),
		Cues:   cues,
		Masked: practiceMode,
	}
	if launchGiven(cmd) {
		gui.Run(opts)
		return nil
	}
	gui.RunInteractive(opts)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	runs, err := openStore(cmd).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tVELOCITY\tANGLE\tRANGE\tMAX H")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f m/s\t%.1f deg\t%.2f m\t%.2f m\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Velocity,
			run.Angle,
			run.Summary["range"],
			run.Summary["max_height"])
	}
	return w.Flush()
}

// samplesFor loads a stored run's samples when a run id is given,
// otherwise it solves the launch flags.
func samplesFor(cmd *cobra.Command, args []string) ([]physics.Sample, error) {
	if len(args) == 1 {
		return openStore(cmd).LoadSamples(args[0])
	}
	l, err := resolveLaunch(cmd)
	if err != nil {
		return nil, err
	}
	sol, err := l.Solve()
	if err != nil {
		return nil, err
	}
	return sol.Trajectory, nil
}

// solutionFor re-solves a stored run's launch when a run id is given,
// otherwise it solves the launch flags.
func solutionFor(cmd *cobra.Command, args []string) (*physics.Solution, error) {
	var l physics.Launch
	if len(args) == 1 {
		meta, err := openStore(cmd).Load(args[0])
		if err != nil {
			return nil, err
		}
		l = physics.Launch{
			Velocity:      meta.Velocity,
			Angle:         meta.Angle,
			InitialHeight: meta.InitialHeight,
			FinalHeight:   meta.FinalHeight,
		}
	} else {
		var err error
		l, err = resolveLaunch(cmd)
		if err != nil {
			return nil, err
		}
	}
	return l.Solve()
}

func runPlot(cmd *cobra.Command, args []string) error {
	samples, err := samplesFor(cmd, args)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	fmt.Printf("%d samples over %.2f s\n\n", len(samples), samples[len(samples)-1].Time)
	fmt.Println(asciigraph.Plot(analysis.Heights(samples),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("height (m)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(analysis.Speeds(samples),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("speed (m/s)")))
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	sol, err := solutionFor(cmd, args)
	if err != nil {
		return err
	}
	data, err := sol.EncodeJSON()
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	samples, err := samplesFor(cmd, args)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples to export")
	}
	return storage.WriteSamplesCSV(os.Stdout, samples)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	sol, err := solutionFor(cmd, args)
	if err != nil {
		return err
	}
	svg := export.FlightToSVG(sol, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("no flight to export")
	}
	if outFile == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	l, err := resolveLaunch(cmd)
	if err != nil {
		return err
	}
	points := physics.SweepAngles(l, sweepFrom, sweepTo, sweepSteps)
	if len(points) == 0 {
		return fmt.Errorf("no solvable angle in [%.1f, %.1f]", sweepFrom, sweepTo)
	}

	ranges := make([]float64, len(points))
	for i, p := range points {
		ranges[i] = p.Range
	}
	fmt.Println(asciigraph.Plot(ranges,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("range (m), angle %.0f..%.0f deg", sweepFrom, sweepTo))))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANGLE\tRANGE\tMAX H\tTIME")
	for _, p := range points {
		fmt.Fprintf(w, "%.1f deg\t%.2f m\t%.2f m\t%.2f s\n", p.Angle, p.Range, p.MaxHeight, p.TotalTime)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, rng := physics.BestAngle(l, sweepFrom, sweepTo)
	fmt.Printf("\nbest angle %.2f deg for range %.2f m\n", best, rng)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sol, err := solutionFor(cmd, args)
	if err != nil {
		return err
	}
	rep, err := analysis.Analyze(sol)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "sampled apex\t%.3f m at %.3f s\n", rep.SampledApex, rep.ApexTime)
	fmt.Fprintf(w, "apex gap\t%.4f m\n", rep.ApexGap)
	fmt.Fprintf(w, "path length\t%.2f m\n", rep.PathLength)
	fmt.Fprintf(w, "average speed\t%.2f m/s\n", rep.AvgSpeed)
	fmt.Fprintf(w, "impact gap\t%.4f m\n", rep.ImpactGap)
	fmt.Fprintf(w, "energy drift\t%.3e\n", rep.EnergyDrift)
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVELOCITY\tANGLE\tHEIGHT\tTARGET")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f m/s\t%.0f deg\t%.0f m\t%.0f m\n",
			name, p.Velocity, p.Angle, p.InitialHeight, p.FinalHeight)
	}
	return w.Flush()
}

func runReset(cmd *cobra.Command, args []string) error {
	st := openStore(cmd)
	if err := st.Init(); err != nil {
		return err
	}
	if err := st.SaveProgress(1); err != nil {
		return err
	}
	fmt.Println("practice progress reset to level 1")
	return nil
}
