// Package sweep runs the wing-angle sweep.
//
// For every vehicle and every sampled wing angle the sweep records:
//
//  1. Straight-line figures: drag-limited top speed, and the drag and downforce
//     produced at that speed.
//  2. Cornering figures: the cornering solver's speed for the configured turn,
//     along with its iteration count and convergence flag.
package sweep

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/cxd309/aero-engine/internal/cornering"
	"github.com/cxd309/aero-engine/internal/vehicle"
)

// Sweep holds a validated sweep ready to run.
type Sweep struct {
	meta     SweepMeta
	turn     cornering.Turn
	vehicles []vehicle.Vehicle
	solver   cornering.Solver
}

// NewSweep validates input and constructs a Sweep that solves corners with solver.
func NewSweep(input SweepInput, solver cornering.Solver) (*Sweep, error) {
	if input.Meta.AngleSteps < 1 {
		return nil, fmt.Errorf("sweep %q: angle_steps must be at least 1, got %d", input.Meta.SweepID, input.Meta.AngleSteps)
	}
	if err := input.Turn.Validate(); err != nil {
		return nil, fmt.Errorf("sweep %q: %w", input.Meta.SweepID, err)
	}

	vehicles := input.Vehicles
	if len(vehicles) == 0 {
		vehicles = vehicle.DefaultFleet()
	}
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("sweep %q: %w", input.Meta.SweepID, err)
		}
	}

	return &Sweep{
		meta:     input.Meta,
		turn:     input.Turn,
		vehicles: vehicles,
		solver:   solver,
	}, nil
}

// Angles returns the sampled wing angles, evenly spaced with both endpoints included.
func (s *Sweep) Angles() []float64 {
	return Linspace(s.meta.AngleStart, s.meta.AngleEnd, s.meta.AngleSteps)
}

// Run executes the sweep and returns the log.
func (s *Sweep) Run() (SweepLog, error) {
	out := SweepLog{Meta: s.meta, Turn: s.turn}
	angles := s.Angles()
	for _, v := range s.vehicles {
		series := Series{Vehicle: v.Name, Rows: make([]SweepRow, 0, len(angles))}
		for _, angle := range angles {
			row, err := s.sample(v, angle)
			if err != nil {
				return SweepLog{}, fmt.Errorf("vehicle %q at %.2f°: %w", v.Name, angle, err)
			}
			series.Rows = append(series.Rows, row)
		}
		out.Series = append(out.Series, series)
	}
	return out, nil
}

// sample computes one row for v at angle.
func (s *Sweep) sample(v vehicle.Vehicle, angle float64) (SweepRow, error) {
	cd, cl := v.Coefficients(angle)
	if !(cd > 0) {
		return SweepRow{}, fmt.Errorf("drag coefficient must be positive, got %v: %w", cd, vehicle.ErrInvalidParameter)
	}
	top := v.TopSpeed(angle)

	res, err := s.solver.Solve(v, angle, s.turn)
	if err != nil {
		return SweepRow{}, err
	}
	if !res.Converged {
		log.Printf("sweep %s: %s at %.2f° did not converge after %d iterations, using %.3f m/s",
			s.meta.SweepID, v.Name, angle, res.Iterations, res.Speed)
	}

	return SweepRow{
		Angle:          angle,
		Cd:             cd,
		Cl:             cl,
		TopSpeed:       top,
		TopSpeedKmh:    top * MsToKmh,
		DragAtTop:      v.Drag(top, angle),
		DownforceAtTop: v.Downforce(top, angle),
		CornerSpeed:    res.Speed,
		CornerSpeedKmh: res.Speed * MsToKmh,
		Iterations:     res.Iterations,
		Converged:      res.Converged,
		Branch:         res.Branch,
	}, nil
}

// Linspace returns n evenly spaced samples over [start, end]. A single sample is start.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = end
	return out
}

// RunJSON is the primary entry point for the CLI and WASM targets.
// It accepts a JSON-encoded SweepInput, runs the sweep with solver, and returns a
// JSON-encoded SweepLog.
func RunJSON(jsonInput string, solver cornering.Solver) (string, error) {
	var input SweepInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	sw, err := NewSweep(input, solver)
	if err != nil {
		return "", err
	}

	sweepLog, err := sw.Run()
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(sweepLog)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
