package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yinebebt/cpusched/internal/config"
	"github.com/yinebebt/cpusched/internal/export"
	"github.com/yinebebt/cpusched/internal/input"
	"github.com/yinebebt/cpusched/internal/logging"
	"github.com/yinebebt/cpusched/internal/report"
	"github.com/yinebebt/cpusched/internal/watch"
	"github.com/yinebebt/cpusched/sched"
)

// app is the state shared by every command once setup has run.
type app struct {
	cfgManager *config.Manager
	cfg        *config.Config
	log        *slog.Logger
	out        io.Writer
}

var state app

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	m := config.NewManager(configFile)
	if err := m.Load(); err != nil {
		return err
	}
	cfg := m.Get()

	flags := cmd.Flags()
	if flags.Changed("quantum") {
		cfg.Simulation.DefaultQuantum = quantum
	}
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(formatFlag)
	}
	if flags.Changed("xlsx") {
		cfg.Output.XLSX = xlsxPath
	}
	if noColor {
		off := false
		cfg.Output.Color = &off
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers = workers
	}
	if flags.Changed("policies") {
		cfg.Simulation.ComparePolicies = policiesFlag
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	state = app{
		cfgManager: m,
		cfg:        cfg,
		log:        logging.Build(cfg.Logging.Level, cfg.Logging.Format, os.Stderr),
		out:        cmd.OutOrStdout(),
	}
	return nil
}

func workerCount() int {
	if state.cfg.Simulation.Workers > 0 {
		return state.cfg.Simulation.Workers
	}
	return runtime.NumCPU()
}

// loadInput parses path into a simulation input.
func loadInput(path string) (*input.Document, sched.Input, error) {
	doc, err := input.ParseFile(path)
	if err != nil {
		return nil, sched.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	in, err := doc.Input(state.cfg.Simulation.DefaultQuantum)
	if err != nil {
		return nil, sched.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, in, nil
}

// outcome ties a result to its run id and source file.
type outcome struct {
	runID  string
	source string
	result sched.Result
}

func newOutcome(source string, res sched.Result) outcome {
	o := outcome{runID: uuid.NewString(), source: source, result: res}
	state.log.Debug("simulation complete",
		slog.String("run_id", o.runID),
		slog.String("source", source),
		slog.String("policy", string(res.Policy)),
		slog.Int("processes", len(res.Processes)),
		slog.Int("total_time", res.TotalTime),
		slog.Int("context_switches", res.ContextSwitches),
	)
	return o
}

// emit renders outcomes in the configured format and writes the workbook
// when one is configured.
func emit(outcomes []outcome, compare bool) error {
	runs := make([]export.Run, len(outcomes))
	for i, o := range outcomes {
		runs[i] = export.FromResult(o.runID, o.source, o.result)
	}

	switch state.cfg.Output.Format {
	case "", "table":
		p := report.NewPrinter(state.out, state.cfg.Output.ColorEnabled())
		results := make([]sched.Result, len(outcomes))
		for i, o := range outcomes {
			results[i] = o.result
			if err := p.Result(o.result); err != nil {
				return err
			}
		}
		if compare && len(results) > 1 {
			p.Comparison(results)
		}
	default:
		format, err := export.ParseFormat(state.cfg.Output.Format)
		if err != nil {
			return err
		}
		if err := export.Write(state.out, format, runs); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
	}

	if path := state.cfg.Output.XLSX; path != "" {
		if err := export.WriteWorkbook(path, runs); err != nil {
			return err
		}
		state.log.Info("workbook written", slog.String("path", path), slog.Int("runs", len(runs)))
	}
	return nil
}

func runRun(cmd *cobra.Command, args []string) error {
	doc, in, err := loadInput(inputFile)
	if err != nil {
		return err
	}
	if policyFlag != "" {
		p, err := sched.ParsePolicy(policyFlag)
		if err != nil {
			return err
		}
		in.Policy = p
	}

	if echoInput {
		report.NewPrinter(state.out, state.cfg.Output.ColorEnabled()).Echo(doc.Format())
	}

	res, err := sched.Run(in)
	if err != nil {
		state.log.Error("simulation failed", slog.String("source", inputFile), logging.ErrAttr(err))
		return err
	}
	return emit([]outcome{newOutcome(inputFile, res)}, false)
}

// comparePolicies resolves the configured policy list, defaulting to every
// policy the input has data for.
func comparePolicies(in sched.Input) ([]sched.Policy, error) {
	names := state.cfg.Simulation.ComparePolicies
	if len(names) == 0 {
		return in.Applicable(), nil
	}
	policies := make([]sched.Policy, 0, len(names))
	for _, name := range names {
		p, err := sched.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	_, in, err := loadInput(inputFile)
	if err != nil {
		return err
	}
	policies, err := comparePolicies(in)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := sched.Compare(ctx, in, policies, workerCount())
	if err != nil {
		return err
	}

	outcomes := make([]outcome, len(results))
	for i, res := range results {
		outcomes[i] = newOutcome(inputFile, res)
	}
	return emit(outcomes, true)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	outcomes := make([]outcome, len(args))
	failed := make([]error, len(args))

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	var barMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount())

	for i, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, in, err := loadInput(path)
			if err == nil {
				var res sched.Result
				if res, err = sched.Run(in); err == nil {
					outcomes[i] = newOutcome(path, res)
				}
			}

			barMu.Lock()
			bar.Add(1)
			barMu.Unlock()

			if err != nil {
				state.log.Error("simulation failed", slog.String("source", path), logging.ErrAttr(err))
				failed[i] = err
				if failFast {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	bar.Finish()

	var ok []outcome
	var errs []string
	for i := range args {
		if failed[i] != nil {
			errs = append(errs, failed[i].Error())
			continue
		}
		ok = append(ok, outcomes[i])
	}

	if err := emit(ok, false); err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed:\n  %s", len(errs), len(args), strings.Join(errs, "\n  "))
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	simulate := func(path string) error {
		_, in, err := loadInput(path)
		if err != nil {
			return err
		}
		res, err := sched.Run(in)
		if err != nil {
			return err
		}
		return emit([]outcome{newOutcome(path, res)}, false)
	}

	if err := simulate(inputFile); err != nil {
		state.log.Error("simulation failed", slog.String("source", inputFile), logging.ErrAttr(err))
	}

	w, err := watch.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	w.OnChange = simulate
	w.OnError = func(path string, err error) {
		state.log.Error("watch", slog.String("source", path), logging.ErrAttr(err))
	}
	if err := w.Watch(inputFile); err != nil {
		return err
	}
	state.log.Info("watching", slog.String("source", inputFile))

	ctx, cancel := signalContext()
	defer cancel()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	in := demoInput()
	if cmd.Flags().Changed("quantum") {
		in.Quantum = quantum
	}

	fmt.Fprintln(state.out, "CPU Scheduling Simulation")
	fmt.Fprintf(state.out, "Processes: %d | Total Burst Time: %d units\n", len(in.Numbers), totalBurst(in.Bursts))
	fmt.Fprintln(state.out, "Process Mix: Long CPU-bound, Interactive, Batch, Background tasks")

	results, err := sched.Compare(context.Background(), in, sched.Policies, workerCount())
	if err != nil {
		return err
	}
	outcomes := make([]outcome, len(results))
	for i, res := range results {
		outcomes[i] = newOutcome("demo", res)
	}
	return emit(outcomes, true)
}

// demoInput is a sample process set:
// P1 long CPU-bound (video encoding), P2 medium interactive, P3 long batch
// job, P4 medium background task, P5 short interactive task.
func demoInput() sched.Input {
	return sched.Input{
		Numbers:    []int{1, 2, 3, 4, 5},
		Arrivals:   []int{0, 1, 2, 3, 4},
		Bursts:     []int{8, 4, 9, 5, 2},
		Priorities: []int{2, 1, 3, 2, 1},
		Quantum:    3,
	}
}

func totalBurst(bursts []int) int {
	total := 0
	for _, b := range bursts {
		total += b
	}
	return total
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := state.cfgManager.Marshal()
	if err != nil {
		return err
	}
	for _, p := range state.cfgManager.GetPaths() {
		fmt.Fprintf(state.out, "# loaded: %s\n", p)
	}
	_, err = state.out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := config.UserPath(home)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := state.cfgManager.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(state.out, "wrote %s\n", path)
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
