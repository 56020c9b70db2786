package sweep

import (
	"github.com/cxd309/aero-engine/internal/cornering"
	"github.com/cxd309/aero-engine/internal/vehicle"
)

// MsToKmh converts metres per second to kilometres per hour.
const MsToKmh = 3.6

// SweepMeta holds the identity and angle range for a sweep run.
type SweepMeta struct {
	SweepID    string  `json:"sweep_id"`
	AngleStart float64 `json:"angle_start"` // degrees
	AngleEnd   float64 `json:"angle_end"`   // degrees
	AngleSteps int     `json:"angle_steps"` // samples, endpoints included
}

// DefaultMeta returns the 0–15° range in 30 samples.
func DefaultMeta() SweepMeta {
	return SweepMeta{SweepID: "default", AngleStart: 0, AngleEnd: 15, AngleSteps: 30}
}

// SweepInput is the JSON-serialisable input to a sweep.
// An empty Vehicles list sweeps vehicle.DefaultFleet.
type SweepInput struct {
	Meta     SweepMeta         `json:"sweep_meta"`
	Turn     cornering.Turn    `json:"turn"`
	Vehicles []vehicle.Vehicle `json:"vehicles,omitempty"`
}

// SweepRow is the state of one vehicle at a single wing angle.
type SweepRow struct {
	Angle          float64          `json:"angle"` // degrees
	Cd             float64          `json:"cd"`
	Cl             float64          `json:"cl"`
	TopSpeed       float64          `json:"top_speed"`        // m/s
	TopSpeedKmh    float64          `json:"top_speed_kmh"`    // km/h
	DragAtTop      float64          `json:"drag_at_top"`      // N
	DownforceAtTop float64          `json:"downforce_at_top"` // N
	CornerSpeed    float64          `json:"corner_speed"`     // m/s
	CornerSpeedKmh float64          `json:"corner_speed_kmh"` // km/h
	Iterations     int              `json:"iterations"`
	Converged      bool             `json:"converged"`
	Branch         cornering.Branch `json:"branch"`
}

// Series is the complete sweep output for one vehicle.
type Series struct {
	Vehicle string     `json:"vehicle"`
	Rows    []SweepRow `json:"rows"`
}

// SweepLog is the complete output of a sweep run.
type SweepLog struct {
	Meta   SweepMeta      `json:"sweep_meta"`
	Turn   cornering.Turn `json:"turn"`
	Series []Series       `json:"series"`
}
