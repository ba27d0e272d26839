// Package catalog holds the indicator definitions of the award program and
// loads them from embedded or external YAML catalogs.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultBuiltin is the catalog used when no other is configured.
const DefaultBuiltin = "premio-cnj-2025"

// Comparison is the polarity of an indicator threshold.
type Comparison string

const (
	// ComparisonMaxAllowed passes when the computed percent is at most the threshold.
	ComparisonMaxAllowed Comparison = "max_allowed"
)

func (c Comparison) Valid() bool {
	return c == ComparisonMaxAllowed
}

// Definition describes one scored indicator. Definitions are read-only once
// a Registry has been built from them.
type Definition struct {
	ReferenceCode    string     `yaml:"reference_code" json:"reference_code" validate:"required"`
	Title            string     `yaml:"title" json:"title" validate:"required"`
	Description      string     `yaml:"description,omitempty" json:"description,omitempty"`
	MaxPoints        int        `yaml:"max_points" json:"max_points" validate:"gt=0"`
	ThresholdPercent float64    `yaml:"threshold_percent" json:"threshold_percent" validate:"gte=0"`
	Comparison       Comparison `yaml:"comparison" json:"comparison" validate:"oneof=max_allowed"`
	Implemented      bool       `yaml:"implemented" json:"implemented"`
	TargetLabel      string     `yaml:"target_label,omitempty" json:"target_label,omitempty"`
}

// Catalog is a named, versioned list of indicator definitions.
type Catalog struct {
	Name        string       `yaml:"name" json:"name"`
	Version     int          `yaml:"version" json:"version"`
	Description string       `yaml:"description" json:"description,omitempty"`
	LegalBasis  []string     `yaml:"legal_basis" json:"legal_basis,omitempty"`
	Indicators  []Definition `yaml:"indicators" json:"indicators"`
}

// LoadBuiltin loads an embedded catalog by name.
func LoadBuiltin(name string) (*Catalog, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadBuiltin: unknown catalog %q: %w", name, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadBuiltin: parse %q: %w", name, err)
	}
	return c, nil
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: parse %s: %w", path, err)
	}
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns the names of the award catalogs compiled into the binary,
// e.g. "premio-cnj-2025". Any of them can be passed to LoadBuiltin.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
