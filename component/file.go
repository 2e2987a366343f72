package component

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a component seed list.
type File struct {
	Components []Component `yaml:"components"`
}

// LoadFile reads a YAML seed file into a fresh, sealed inventory.
// Every entry goes through New, so the usual truncation and
// validation rules apply.
func LoadFile(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read components file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML seed data into a fresh, sealed inventory.
func Parse(data []byte) (*Inventory, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse components file: %w", err)
	}
	if len(f.Components) == 0 {
		return nil, fmt.Errorf("components file lists no components")
	}

	inv := NewInventory()
	for i, raw := range f.Components {
		c, err := New(raw.Name, raw.Type, raw.Priority)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
		if err := inv.Add(c); err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
	}
	inv.Seal()
	return inv, nil
}
