package vehicle

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cxd309/aero-engine/internal/aero"
)

func TestUnmarshalJSONLinear(t *testing.T) {
	data := `{
		"name": "Test Car",
		"mass": 700,
		"frontal_area": 1.0,
		"engine_power": 7000,
		"aero": {"model": "linear", "base_cd": 0.3, "k_cd": 0.02, "base_cl": 0.5, "k_cl": 0.05}
	}`
	var v Vehicle
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Name != "Test Car" || v.Mass != 700 || v.FrontalArea != 1.0 || v.EnginePower != 7000 {
		t.Errorf("scalars = %+v", v)
	}
	if v.AirDensity != StandardAirDensity {
		t.Errorf("air_density = %v, want default %v", v.AirDensity, StandardAirDensity)
	}
	want := aero.Linear{BaseDrag: 0.3, DragSlope: 0.02, BaseLift: 0.5, LiftSlope: 0.05}
	if got, ok := v.Aero.(aero.Linear); !ok || got != want {
		t.Errorf("aero = %#v, want %#v", v.Aero, want)
	}
}

func TestUnmarshalJSONDefaultsAero(t *testing.T) {
	var v Vehicle
	if err := json.Unmarshal([]byte(`{"name":"x","mass":1,"frontal_area":1,"engine_power":1}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Aero != aero.CoefficientModel(aero.DefaultLinear()) {
		t.Errorf("aero = %#v, want default linear", v.Aero)
	}
}

func TestUnmarshalJSONUnknownModel(t *testing.T) {
	var v Vehicle
	err := json.Unmarshal([]byte(`{"name":"x","aero":{"model":"cfd"}}`), &v)
	if err == nil || !strings.Contains(err.Error(), `unknown aero model "cfd"`) {
		t.Errorf("err = %v, want unknown aero model", err)
	}
}

func TestJSONRoundTripKeepsModel(t *testing.T) {
	in := F1Concept()
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"model":"linear"`) {
		t.Errorf("marshalled vehicle missing discriminator: %s", data)
	}
	var out Vehicle
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Name != in.Name || out.Aero != in.Aero || out.EnginePower != in.EnginePower {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestValidate(t *testing.T) {
	good := F1Concept()
	if err := good.Validate(); err != nil {
		t.Fatalf("preset should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Vehicle)
		field  string
	}{
		{"zero mass", func(v *Vehicle) { v.Mass = 0 }, "mass"},
		{"negative area", func(v *Vehicle) { v.FrontalArea = -1 }, "frontal_area"},
		{"zero density", func(v *Vehicle) { v.AirDensity = 0 }, "air_density"},
		{"NaN power", func(v *Vehicle) { v.EnginePower = math.NaN() }, "engine_power"},
		{"infinite mass", func(v *Vehicle) { v.Mass = math.Inf(1) }, "mass"},
		{"no aero", func(v *Vehicle) { v.Aero = nil }, "aero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := F1Concept()
			tt.mutate(&v)
			err := v.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("err %q does not name field %q", err, tt.field)
			}
		})
	}
}

func TestForces(t *testing.T) {
	v := Vehicle{Mass: 700, FrontalArea: 1.0, AirDensity: 1.225, EnginePower: 1, Aero: aero.DefaultLinear()}

	// q = 0.5·1.225·20² = 245 Pa
	if got := v.Drag(20, 0); math.Abs(got-245*0.70) > 1e-9 {
		t.Errorf("Drag = %v, want %v", got, 245*0.70)
	}
	if got := v.Downforce(20, 10); math.Abs(got-245*1.00) > 1e-9 {
		t.Errorf("Downforce = %v, want %v", got, 245*1.00)
	}
}

func TestTopSpeedBalancesPower(t *testing.T) {
	v := F1Concept()
	for _, angle := range []float64{0, 5, 15} {
		top := v.TopSpeed(angle)
		dragPower := v.Drag(top, angle) * top
		if math.Abs(dragPower-v.EnginePower)/v.EnginePower > 1e-9 {
			t.Errorf("angle %v: drag power at top speed = %v, want %v", angle, dragPower, v.EnginePower)
		}
	}
	if v.TopSpeed(15) >= v.TopSpeed(0) {
		t.Error("more wing should lower top speed")
	}
}

func TestPreset(t *testing.T) {
	if v, ok := Preset("fs"); !ok || v.Name != "Formula Student" {
		t.Errorf("Preset(fs) = %v, %v", v.Name, ok)
	}
	if v, ok := Preset("f1-concept"); !ok || v.Mass != 700 {
		t.Errorf("Preset(f1-concept) = %v, %v", v.Name, ok)
	}
	if _, ok := Preset("kart"); ok {
		t.Error("Preset(kart) should not exist")
	}
	if n := len(DefaultFleet()); n != 2 {
		t.Errorf("DefaultFleet has %d vehicles, want 2", n)
	}
}

func TestUnmarshalJSONKeepsExplicitZeroDensity(t *testing.T) {
	var v Vehicle
	if err := json.Unmarshal([]byte(`{"name":"vacuum","mass":1,"frontal_area":1,"air_density":0,"engine_power":1}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.AirDensity != 0 {
		t.Errorf("air_density = %v, want explicit 0", v.AirDensity)
	}
	err := v.Validate()
	if !errors.Is(err, ErrInvalidParameter) || !strings.Contains(err.Error(), "air_density") {
		t.Errorf("err = %v, want air_density ErrInvalidParameter", err)
	}
}
