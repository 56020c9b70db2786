package vehicle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fleet is the document shape of a fleet file.
type Fleet struct {
	Vehicles []Vehicle `yaml:"vehicles"`
}

// LoadFleet reads and validates a fleet of vehicles from a YAML file.
func LoadFleet(path string) ([]Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet file: %w", err)
	}
	return ParseFleet(data)
}

// ParseFleet decodes and validates a YAML fleet document.
func ParseFleet(data []byte) ([]Vehicle, error) {
	var f Fleet
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fleet YAML: %w", err)
	}
	if len(f.Vehicles) == 0 {
		return nil, fmt.Errorf("fleet has no vehicles")
	}
	for _, v := range f.Vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Vehicles, nil
}

// Find returns the vehicle with the given name.
func Find(fleet []Vehicle, name string) (Vehicle, error) {
	for _, v := range fleet {
		if v.Name == name {
			return v, nil
		}
	}
	return Vehicle{}, fmt.Errorf("no vehicle named %q in fleet", name)
}
