// Package cornering computes the maximum steady-state cornering speed of a vehicle
// whose available grip grows with its own speed through aerodynamic downforce.
//
// For tight and medium corners the speed is implicit (downforce depends on speed, the
// speed depends on grip, grip depends on downforce) and is found by fixed-point
// iteration. Corners above Config.StraightRadius are treated as straights and return
// the drag-limited top speed instead.
package cornering

import (
	"fmt"
	"math"

	"github.com/cxd309/aero-engine/internal/aero"
	"github.com/cxd309/aero-engine/internal/vehicle"
)

// ErrInvalidParameter is returned for non-positive physical inputs.
var ErrInvalidParameter = vehicle.ErrInvalidParameter

// Branch names the regime the solver used.
type Branch string

const (
	BranchGrip     Branch = "grip"     // fixed-point iteration on lateral grip
	BranchStraight Branch = "straight" // drag-limited top speed
)

// Config holds the solver's numeric constants.
type Config struct {
	Gravity        float64 // m/s²
	StraightRadius float64 // m; radii above this are straights
	Seed           float64 // m/s, initial iterate
	Floor          float64 // m/s, lower clamp on every iterate
	Tolerance      float64 // m/s, convergence threshold on |v_new - v|
	MaxIterations  int
}

// DefaultConfig returns the standard solver constants.
func DefaultConfig() Config {
	return Config{
		Gravity:        9.81,
		StraightRadius: 1e4,
		Seed:           5.0,
		Floor:          0.1,
		Tolerance:      1e-4,
		MaxIterations:  100,
	}
}

// Turn is the corner geometry and tyre grip.
type Turn struct {
	Radius float64 `json:"radius"` // m
	Mu     float64 `json:"mu"`     // tyre friction coefficient
}

// Validate checks radius and mu are positive and finite.
func (t Turn) Validate() error {
	if !(t.Radius > 0) || math.IsInf(t.Radius, 1) {
		return fmt.Errorf("turn radius must be positive, got %v: %w", t.Radius, ErrInvalidParameter)
	}
	if !(t.Mu > 0) || math.IsInf(t.Mu, 1) {
		return fmt.Errorf("friction coefficient must be positive, got %v: %w", t.Mu, ErrInvalidParameter)
	}
	return nil
}

// Result is the solver output.
// Converged is false when the iteration cap was hit before the tolerance was met;
// Speed is then the last iterate, a best-effort estimate.
type Result struct {
	Speed      float64 `json:"speed"` // m/s
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
	Branch     Branch  `json:"branch"`
}

// Solver computes cornering speeds. The zero value is not usable; use New.
// A Solver holds no mutable state and is safe for concurrent use.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) Solver {
	return Solver{cfg: cfg}
}

// Config returns the solver's constants.
func (s Solver) Config() Config { return s.cfg }

// Solve returns the maximum cornering speed of v at the given wing angle (degrees)
// through turn.
func (s Solver) Solve(v vehicle.Vehicle, angle float64, turn Turn) (Result, error) {
	if err := v.Validate(); err != nil {
		return Result{}, err
	}
	if err := turn.Validate(); err != nil {
		return Result{}, err
	}

	cd, cl := v.Coefficients(angle)

	if turn.Radius > s.cfg.StraightRadius {
		if !(cd > 0) {
			return Result{}, fmt.Errorf("vehicle %q: drag coefficient at %v° must be positive, got %v: %w",
				v.Name, angle, cd, ErrInvalidParameter)
		}
		return Result{Speed: v.TopSpeed(angle), Converged: true, Branch: BranchStraight}, nil
	}

	speed, n, ok := s.iterate(v, cl, turn)
	return Result{Speed: speed, Iterations: n, Converged: ok, Branch: BranchGrip}, nil
}

// iterate runs the Picard iteration v ← sqrt(mu·(m·g + F_down(v))·r/m).
func (s Solver) iterate(v vehicle.Vehicle, cl float64, turn Turn) (float64, int, bool) {
	speed := s.cfg.Seed
	next := speed
	for i := 1; i <= s.cfg.MaxIterations; i++ {
		downforce := aero.DynamicPressure(v.AirDensity, speed) * cl * v.FrontalArea
		normal := v.Mass*s.cfg.Gravity + downforce
		maxLateral := turn.Mu * normal

		next = s.cfg.Floor
		// A negative radicand (lift instead of downforce) or NaN clamps to the floor.
		if radicand := maxLateral * turn.Radius / v.Mass; radicand > 0 {
			next = math.Max(math.Sqrt(radicand), s.cfg.Floor)
		}

		if math.Abs(next-speed) < s.cfg.Tolerance {
			return next, i, true
		}
		speed = next
	}
	return next, s.cfg.MaxIterations, false
}

// Solve runs the default solver and returns only the speed, in m/s.
func Solve(v vehicle.Vehicle, angle, radius, mu float64) (float64, error) {
	res, err := New(DefaultConfig()).Solve(v, angle, Turn{Radius: radius, Mu: mu})
	if err != nil {
		return 0, err
	}
	return res.Speed, nil
}
