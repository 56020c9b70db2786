package vehicle

import "github.com/cxd309/aero-engine/internal/aero"

// FormulaStudent returns the light, low-power archetype.
func FormulaStudent() Vehicle {
	return Vehicle{
		Name:        "Formula Student",
		Mass:        300,
		FrontalArea: 1.2,
		AirDensity:  StandardAirDensity,
		EnginePower: 80_000,
		Aero:        aero.DefaultLinear(),
	}
}

// F1Concept returns the heavy, high-power archetype.
func F1Concept() Vehicle {
	return Vehicle{
		Name:        "F1 Concept",
		Mass:        700,
		FrontalArea: 1.7,
		AirDensity:  StandardAirDensity,
		EnginePower: 750_000,
		Aero:        aero.DefaultLinear(),
	}
}

// DefaultFleet returns the two archetypes compared by default.
func DefaultFleet() []Vehicle {
	return []Vehicle{FormulaStudent(), F1Concept()}
}

// Preset looks up a built-in vehicle by short key ("fs" or "f1").
func Preset(key string) (Vehicle, bool) {
	switch key {
	case "fs", "formula-student":
		return FormulaStudent(), true
	case "f1", "f1-concept":
		return F1Concept(), true
	}
	return Vehicle{}, false
}
