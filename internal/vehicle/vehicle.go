// Package vehicle defines the vehicle parameters fed to the cornering solver and the
// sweep runner, along with JSON/YAML decoding, validation and built-in presets.
package vehicle

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/cxd309/aero-engine/internal/aero"
	"gopkg.in/yaml.v3"
)

// StandardAirDensity is sea-level ISA air density, kg/m³.
const StandardAirDensity = 1.225

// ErrInvalidParameter reports a physical parameter outside its valid range.
var ErrInvalidParameter = errors.New("invalid parameter")

// Vehicle holds the static parameters of a vehicle.
// The wing-angle aerodynamics are encapsulated by the Aero field; adding a new model
// only requires implementing aero.CoefficientModel and registering it in decodeAero.
type Vehicle struct {
	Name        string                `json:"name"`
	Mass        float64               `json:"mass"`         // kg
	FrontalArea float64               `json:"frontal_area"` // m²
	AirDensity  float64               `json:"air_density"`  // kg/m³
	EnginePower float64               `json:"engine_power"` // W
	Aero        aero.CoefficientModel `json:"-"`            // set by UnmarshalJSON / UnmarshalYAML
}

// aeroDisc is the minimum structure needed to read the model discriminator.
type aeroDisc struct {
	Model string `json:"model" yaml:"model"`
}

// vehicleJSON is the raw JSON shape of a Vehicle, before the aero model is resolved.
type vehicleJSON struct {
	Name        string          `json:"name"`
	Mass        float64         `json:"mass"`
	FrontalArea float64         `json:"frontal_area"`
	AirDensity  *float64        `json:"air_density"`
	EnginePower float64         `json:"engine_power"`
	Aero        json.RawMessage `json:"aero"`
}

// vehicleYAML is the raw YAML shape of a Vehicle.
type vehicleYAML struct {
	Name        string    `yaml:"name"`
	Mass        float64   `yaml:"mass"`
	FrontalArea float64   `yaml:"frontal_area"`
	AirDensity  *float64  `yaml:"air_density"`
	EnginePower float64   `yaml:"engine_power"`
	Aero        yaml.Node `yaml:"aero"`
}

// UnmarshalJSON implements json.Unmarshaler for Vehicle.
// The optional "aero" object carries a "model" discriminator that selects the concrete
// coefficient model; when absent the default linear model is used. An absent
// air_density defaults to StandardAirDensity.
//
// Supported models:
//   - "linear": base_cd / k_cd / base_cl / k_cl.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var aux vehicleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v.setScalars(aux.Name, aux.Mass, aux.FrontalArea, aux.AirDensity, aux.EnginePower)

	if len(aux.Aero) == 0 {
		v.Aero = aero.DefaultLinear()
		return nil
	}

	var disc aeroDisc
	if err := json.Unmarshal(aux.Aero, &disc); err != nil {
		return fmt.Errorf("vehicle %q: reading aero model discriminator: %w", v.Name, err)
	}
	m, err := decodeAero(disc.Model, func(out any) error { return json.Unmarshal(aux.Aero, out) })
	if err != nil {
		return fmt.Errorf("vehicle %q: %w", v.Name, err)
	}
	v.Aero = m
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Vehicle with the same rules as UnmarshalJSON.
func (v *Vehicle) UnmarshalYAML(node *yaml.Node) error {
	var aux vehicleYAML
	if err := node.Decode(&aux); err != nil {
		return err
	}
	v.setScalars(aux.Name, aux.Mass, aux.FrontalArea, aux.AirDensity, aux.EnginePower)

	if aux.Aero.Kind == 0 {
		v.Aero = aero.DefaultLinear()
		return nil
	}

	var disc aeroDisc
	if err := aux.Aero.Decode(&disc); err != nil {
		return fmt.Errorf("vehicle %q: reading aero model discriminator: %w", v.Name, err)
	}
	m, err := decodeAero(disc.Model, aux.Aero.Decode)
	if err != nil {
		return fmt.Errorf("vehicle %q: %w", v.Name, err)
	}
	v.Aero = m
	return nil
}

// MarshalJSON writes the vehicle in the same shape UnmarshalJSON reads.
func (v Vehicle) MarshalJSON() ([]byte, error) {
	type out struct {
		Name        string  `json:"name"`
		Mass        float64 `json:"mass"`
		FrontalArea float64 `json:"frontal_area"`
		AirDensity  float64 `json:"air_density"`
		EnginePower float64 `json:"engine_power"`
		Aero        any     `json:"aero,omitempty"`
	}
	o := out{v.Name, v.Mass, v.FrontalArea, v.AirDensity, v.EnginePower, nil}
	if l, ok := v.Aero.(aero.Linear); ok {
		o.Aero = struct {
			Model string `json:"model"`
			aero.Linear
		}{aero.LinearModelName, l}
	}
	return json.Marshal(o)
}

// setScalars copies decoded scalars; rho is nil when air_density was absent.
func (v *Vehicle) setScalars(name string, mass, area float64, rho *float64, power float64) {
	v.Name = name
	v.Mass = mass
	v.FrontalArea = area
	v.AirDensity = StandardAirDensity
	if rho != nil {
		v.AirDensity = *rho
	}
	v.EnginePower = power
}

// decodeAero resolves a model discriminator to a concrete aero.CoefficientModel,
// using decode to fill the model's own fields.
func decodeAero(model string, decode func(out any) error) (aero.CoefficientModel, error) {
	switch model {
	case aero.LinearModelName:
		var l aero.Linear
		if err := decode(&l); err != nil {
			return nil, fmt.Errorf("parsing linear aero model: %w", err)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown aero model %q", model)
	}
}

// Validate checks that every scalar parameter is positive and finite and that an
// aero model is set. Errors wrap ErrInvalidParameter.
func (v Vehicle) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"mass", v.Mass},
		{"frontal_area", v.FrontalArea},
		{"air_density", v.AirDensity},
		{"engine_power", v.EnginePower},
	}
	for _, f := range fields {
		if !(f.val > 0) || math.IsInf(f.val, 1) {
			return fmt.Errorf("vehicle %q: %s must be positive, got %v: %w", v.Name, f.name, f.val, ErrInvalidParameter)
		}
	}
	if v.Aero == nil {
		return fmt.Errorf("vehicle %q: missing aero model: %w", v.Name, ErrInvalidParameter)
	}
	return nil
}

// Coefficients returns (C_d, C_L) at the given wing angle.
func (v Vehicle) Coefficients(angle float64) (float64, float64) {
	return v.Aero.Coefficients(angle)
}

// Drag returns the aerodynamic drag force (N) at velocity (m/s) and wing angle.
func (v Vehicle) Drag(velocity, angle float64) float64 {
	cd, _ := v.Coefficients(angle)
	return aero.DynamicPressure(v.AirDensity, velocity) * cd * v.FrontalArea
}

// Downforce returns the aerodynamic downforce (N) at velocity (m/s) and wing angle.
func (v Vehicle) Downforce(velocity, angle float64) float64 {
	_, cl := v.Coefficients(angle)
	return aero.DynamicPressure(v.AirDensity, velocity) * cl * v.FrontalArea
}

// TopSpeed returns the drag-limited straight-line speed (m/s): the speed at which
// engine power equals drag power, P = 0.5·rho·C_d·A·v³.
func (v Vehicle) TopSpeed(angle float64) float64 {
	cd, _ := v.Coefficients(angle)
	return math.Cbrt(2 * v.EnginePower / (v.AirDensity * cd * v.FrontalArea))
}
