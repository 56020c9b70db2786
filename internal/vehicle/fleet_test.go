package vehicle

import (
	"errors"
	"testing"

	"github.com/cxd309/aero-engine/internal/aero"
)

func TestLoadFleet(t *testing.T) {
	fleet, err := LoadFleet("testdata/fleet.yaml")
	if err != nil {
		t.Fatalf("LoadFleet failed: %v", err)
	}
	if len(fleet) != 2 {
		t.Fatalf("fleet size = %d, want 2", len(fleet))
	}

	fs := fleet[0]
	if fs.AirDensity != StandardAirDensity {
		t.Errorf("air_density = %v, want default", fs.AirDensity)
	}
	if fs.Aero != aero.CoefficientModel(aero.DefaultLinear()) {
		t.Errorf("aero = %#v, want default linear", fs.Aero)
	}

	ld, err := Find(fleet, "Low Drag")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ld.AirDensity != 1.2 {
		t.Errorf("air_density = %v, want 1.2", ld.AirDensity)
	}
	cd, cl := ld.Coefficients(0)
	if cd != 0.30 || cl != 0.50 {
		t.Errorf("coefficients = (%v, %v), want (0.30, 0.50)", cd, cl)
	}
}

func TestLoadFleetMissingFile(t *testing.T) {
	if _, err := LoadFleet("testdata/nope.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseFleetErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "vehicles: []\n"},
		{"bad yaml", "vehicles: [\n"},
		{"unknown model", "vehicles:\n  - name: a\n    mass: 1\n    frontal_area: 1\n    engine_power: 1\n    aero:\n      model: table\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFleet([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFleetValidates(t *testing.T) {
	doc := "vehicles:\n  - name: ghost\n    mass: 0\n    frontal_area: 1\n    engine_power: 1\n"
	_, err := ParseFleet([]byte(doc))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestFindMissing(t *testing.T) {
	if _, err := Find(DefaultFleet(), "Kart"); err == nil {
		t.Error("expected error for unknown vehicle")
	}
}

func TestParseFleetExplicitZeroDensity(t *testing.T) {
	doc := "vehicles:\n  - name: vacuum\n    mass: 1\n    frontal_area: 1\n    air_density: 0\n    engine_power: 1\n"
	_, err := ParseFleet([]byte(doc))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}
