package aero

// LinearModelName is the discriminator string for the Linear model.
const LinearModelName = "linear"

// Default linear coefficients, taken from the power-based car model.
const (
	DefaultBaseDrag  = 0.70
	DefaultDragSlope = 0.02
	DefaultBaseLift  = 0.50
	DefaultLiftSlope = 0.05
)

// Linear implements CoefficientModel with coefficients that shift linearly with angle:
//
//	C_d = BaseDrag + DragSlope·angle
//	C_L = BaseLift + LiftSlope·angle
//
// Discriminator: "model": "linear"
type Linear struct {
	BaseDrag  float64 `json:"base_cd" yaml:"base_cd"`
	DragSlope float64 `json:"k_cd" yaml:"k_cd"` // per degree
	BaseLift  float64 `json:"base_cl" yaml:"base_cl"`
	LiftSlope float64 `json:"k_cl" yaml:"k_cl"` // per degree
}

// DefaultLinear returns the single coefficient convention used by the built-in vehicles.
func DefaultLinear() Linear {
	return Linear{
		BaseDrag:  DefaultBaseDrag,
		DragSlope: DefaultDragSlope,
		BaseLift:  DefaultBaseLift,
		LiftSlope: DefaultLiftSlope,
	}
}

func (l Linear) Coefficients(angle float64) (float64, float64) {
	return l.BaseDrag + l.DragSlope*angle, l.BaseLift + l.LiftSlope*angle
}
