package feasibility

import (
	"fmt"
	"strings"

	"land_valuation/pkg/core/valuation"
	"land_valuation/pkg/core/zoning"
)

// Parking zones recognized by the input layer. The construction cost
// adjustment is applied here, before anything reaches the engine.
const (
	ParkingStandard = "Standard"
	ParkingPT1      = "PT1"
	ParkingPT2      = "PT2"
)

// AdjustedConstructionCost applies the parking-zone multiplier to the base
// construction cost: Standard ×1.00, PT1 ×0.95, PT2 ×0.85. Long display
// labels ("PT1 (Reduced)", "PT2 (Zero)") are accepted; anything else is
// treated as Standard.
func AdjustedConstructionCost(base float64, parkingZone string) float64 {
	switch {
	case strings.HasPrefix(parkingZone, ParkingPT2):
		return base * 0.85
	case strings.HasPrefix(parkingZone, ParkingPT1):
		return base * 0.95
	default:
		return base
	}
}

// ScenarioRequest is the wire form of a single-scenario evaluation. The
// zoning id resolves the floor factor; FloorFactor overrides the catalog
// when set (advanced callers, tests).
type ScenarioRequest struct {
	LandArea         float64  `json:"land_area"`
	ZoningID         string   `json:"zoning_id"`
	FloorFactor      *float64 `json:"floor_factor,omitempty"`
	ParkingZone      string   `json:"parking_zone"`
	MarketPrice      float64  `json:"market_price"`
	ConstructionCost float64  `json:"construction_cost"` // base, pre parking adjustment
	InclusionaryPct  float64  `json:"inclusionary_pct"`
	DensityBonusPct  float64  `json:"density_bonus_pct"`
}

// Validate enforces the input ranges the engine assumes. The engine itself
// stays guard-free; this is the boundary where bad input stops.
func (r *ScenarioRequest) Validate() error {
	if r.LandArea < 1 {
		return fmt.Errorf("land_area must be at least 1, got %g", r.LandArea)
	}
	if r.MarketPrice < 20000 || r.MarketPrice > 80000 {
		return fmt.Errorf("market_price must be within [20000, 80000], got %g", r.MarketPrice)
	}
	if r.ConstructionCost < 12000 || r.ConstructionCost > 25000 {
		return fmt.Errorf("construction_cost must be within [12000, 25000], got %g", r.ConstructionCost)
	}
	if r.InclusionaryPct < 0 || r.InclusionaryPct > 30 {
		return fmt.Errorf("inclusionary_pct must be within [0, 30], got %g", r.InclusionaryPct)
	}
	if r.DensityBonusPct < 0 || r.DensityBonusPct > 100 {
		return fmt.Errorf("density_bonus_pct must be within [0, 100], got %g", r.DensityBonusPct)
	}
	return nil
}

// Resolve turns the wire request into a validated engine input. Returns the
// matched preset when the floor factor came from the catalog.
func (r *ScenarioRequest) Resolve() (valuation.ScenarioInput, *zoning.Preset, error) {
	if err := r.Validate(); err != nil {
		return valuation.ScenarioInput{}, nil, err
	}

	var preset *zoning.Preset
	ff := 0.0
	if r.FloorFactor != nil {
		ff = *r.FloorFactor
	} else {
		p, err := zoning.Lookup(r.ZoningID)
		if err != nil {
			return valuation.ScenarioInput{}, nil, err
		}
		preset = &p
		ff = p.FloorFactor
	}

	return valuation.ScenarioInput{
		LandArea:         r.LandArea,
		FloorFactor:      ff,
		DensityBonusPct:  r.DensityBonusPct,
		InclusionaryPct:  r.InclusionaryPct,
		MarketPrice:      r.MarketPrice,
		ConstructionCost: AdjustedConstructionCost(r.ConstructionCost, r.ParkingZone),
	}, preset, nil
}
