// Package aero defines the CoefficientModel interface that maps a rear-wing angle to
// drag and lift coefficients, along with built-in implementations.
//
// Adding a new coefficient model requires only implementing CoefficientModel and
// registering it in the discriminator switch in the vehicle package; the solver and
// sweep code never need to change.
package aero

// CoefficientModel is the aerodynamic contract every coefficient model must satisfy.
// Angles are in degrees. Coefficients are dimensionless.
type CoefficientModel interface {
	// Coefficients returns the drag coefficient C_d and lift (downforce) coefficient
	// C_L at the given wing angle. Implementations must be pure.
	Coefficients(angle float64) (cd, cl float64)
}

// DynamicPressure returns 0.5·rho·v², in pascals.
func DynamicPressure(rho, v float64) float64 {
	return 0.5 * rho * v * v
}
