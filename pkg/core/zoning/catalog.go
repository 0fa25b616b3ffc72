// Package zoning holds the fixed zoning preset table used to resolve
// floor factors for feasibility scenarios.
package zoning

import "fmt"

// Preset describes one zoning classification.
type Preset struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	FloorFactor   float64 `json:"floor_factor"`   // permissible built floor area / land area
	CoverageRatio float64 `json:"coverage_ratio"` // fraction of the footprint that may be covered
}

// UnknownPresetError is returned when a preset id is not in the catalog.
// It is a user-input error: surface the message, never crash.
type UnknownPresetError struct {
	ID string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown zoning preset: %q", e.ID)
}

// The catalog is fixed data. Order matters for presentation (dropdowns follow it).
var presets = []Preset{
	{ID: "GR2", Label: "GR2 (Residential - 1.0 FF)", FloorFactor: 1.0, CoverageRatio: 0.60},
	{ID: "GR4", Label: "GR4 (High Density - 1.5 FF)", FloorFactor: 1.5, CoverageRatio: 0.60},
	{ID: "MU1", Label: "MU1 (Mixed Use - 1.5 FF)", FloorFactor: 1.5, CoverageRatio: 0.75},
	{ID: "MU2", Label: "MU2 (High Density Mixed - 4.0 FF)", FloorFactor: 4.0, CoverageRatio: 1.00},
	{ID: "GB7", Label: "GB7 (CBD/High Rise - 12.0 FF)", FloorFactor: 12.0, CoverageRatio: 1.00},
}

var byID = func() map[string]Preset {
	m := make(map[string]Preset, len(presets))
	for _, p := range presets {
		m[p.ID] = p
	}
	return m
}()

// Lookup resolves a preset by id. There is no default preset: an id outside
// the fixed set returns *UnknownPresetError.
func Lookup(id string) (Preset, error) {
	p, ok := byID[id]
	if !ok {
		return Preset{}, &UnknownPresetError{ID: id}
	}
	return p, nil
}

// Presets returns the catalog in display order. The returned slice is a copy.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
