package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cxd309/aero-engine/internal/chart"
	"github.com/cxd309/aero-engine/internal/config"
	"github.com/cxd309/aero-engine/internal/cornering"
	"github.com/cxd309/aero-engine/internal/sweep"
	"github.com/cxd309/aero-engine/internal/vehicle"
	"github.com/gdamore/tcell/v2"
)

type cornerOpts struct {
	preset string
	fleet  string
	name   string
	angle  float64
	radius float64
	mu     float64
}

type plotOpts struct {
	input   string
	fleet   string
	radius  float64
	mu      float64
	start   float64
	end     float64
	steps   int
	metrics []string
}

// loadSolver resolves configuration and logging and returns the solver to use.
func loadSolver(g *globalFlags) (cornering.Solver, error) {
	setupLogging(g.debug)
	cfg, err := config.Load(g.envFile)
	if err != nil {
		return cornering.Solver{}, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Debug && !g.debug {
		setupLogging(true)
	}
	log.Printf("solver config: %+v", cfg.Solver)
	return cornering.New(cfg.Solver), nil
}

func runSweep(g *globalFlags, path string, stdin io.Reader, stdout io.Writer) error {
	solver, err := loadSolver(g)
	if err != nil {
		return err
	}

	data, err := readInput(path, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := sweep.RunJSON(string(data), solver)
	if err != nil {
		return fmt.Errorf("sweep error: %w", err)
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func runCorner(g *globalFlags, o cornerOpts, stdout io.Writer) error {
	solver, err := loadSolver(g)
	if err != nil {
		return err
	}

	v, err := pickVehicle(o)
	if err != nil {
		return err
	}

	turn := cornering.Turn{Radius: o.radius, Mu: o.mu}
	res, err := solver.Solve(v, o.angle, turn)
	if err != nil {
		return err
	}
	printCornerResult(stdout, v, o.angle, turn, res)
	return nil
}

func pickVehicle(o cornerOpts) (vehicle.Vehicle, error) {
	if o.fleet != "" {
		fleet, err := vehicle.LoadFleet(o.fleet)
		if err != nil {
			return vehicle.Vehicle{}, err
		}
		if o.name == "" {
			return fleet[0], nil
		}
		return vehicle.Find(fleet, o.name)
	}
	v, ok := vehicle.Preset(o.preset)
	if !ok {
		return vehicle.Vehicle{}, fmt.Errorf("unknown vehicle preset %q (want fs or f1)", o.preset)
	}
	return v, nil
}

// plotInput builds the SweepInput for the plot command from a file or flags.
func plotInput(o plotOpts) (sweep.SweepInput, error) {
	if o.input != "" {
		data, err := os.ReadFile(o.input)
		if err != nil {
			return sweep.SweepInput{}, fmt.Errorf("reading input: %w", err)
		}
		var in sweep.SweepInput
		if err := json.Unmarshal(data, &in); err != nil {
			return sweep.SweepInput{}, fmt.Errorf("invalid input JSON: %w", err)
		}
		return in, nil
	}

	in := sweep.SweepInput{
		Meta: sweep.SweepMeta{SweepID: "plot", AngleStart: o.start, AngleEnd: o.end, AngleSteps: o.steps},
		Turn: cornering.Turn{Radius: o.radius, Mu: o.mu},
	}
	if o.fleet != "" {
		fleet, err := vehicle.LoadFleet(o.fleet)
		if err != nil {
			return sweep.SweepInput{}, err
		}
		in.Vehicles = fleet
	}
	return in, nil
}

func plotMetrics(names []string) ([]chart.Metric, error) {
	if len(names) == 0 {
		return chart.Metrics, nil
	}
	out := make([]chart.Metric, 0, len(names))
	for _, n := range names {
		m, err := chart.ParseMetric(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func runPlot(g *globalFlags, o plotOpts) error {
	solver, err := loadSolver(g)
	if err != nil {
		return err
	}
	metrics, err := plotMetrics(o.metrics)
	if err != nil {
		return err
	}
	in, err := plotInput(o)
	if err != nil {
		return err
	}

	sw, err := sweep.NewSweep(in, solver)
	if err != nil {
		return err
	}
	result, err := sw.Run()
	if err != nil {
		return err
	}

	charts := make([]chart.Chart, 0, len(metrics))
	for _, m := range metrics {
		charts = append(charts, chart.FromSweep(result, m))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()

	chart.Run(screen, charts)
	return nil
}
