// Package valuation provides deterministic residual land value calculations.
// All functions are pure: same inputs, same outputs, no side effects.
package valuation

// Fixed rates. Point estimates from the underlying appraisal model; they stay
// constants until a requirement to parameterize them exists.
const (
	DCRate       = 514.10 // development charge, currency per m² of market-rate bulk
	IHCapPrice   = 15000  // capped sale price for inclusionary bulk, currency per m²
	FeeRate      = 0.125  // professional/consultant fees as a share of construction
	ProfitMargin = 0.20   // developer's required margin as a share of GDV
)

// ScenarioInput holds the parameters for one valuation. Constructed fresh per
// evaluation, never mutated. Callers validate ranges; the engine does not.
type ScenarioInput struct {
	LandArea         float64 `json:"land_area"`         // m²
	FloorFactor      float64 `json:"floor_factor"`      // resolved from a zoning preset
	DensityBonusPct  float64 `json:"density_bonus_pct"` // [0,100], percentage points of extra bulk
	InclusionaryPct  float64 `json:"inclusionary_pct"`  // [0,100], share of bulk sold at the capped price
	MarketPrice      float64 `json:"market_price"`      // currency per m², market-rate sales
	ConstructionCost float64 `json:"construction_cost"` // currency per m² of built bulk
}

// ScenarioOutput holds the derived financial metrics. RLV may be negative
// (infeasible land value); clamping to zero is a presentation concern only.
type ScenarioOutput struct {
	RLV          float64 `json:"rlv"`
	TotalBulk    float64 `json:"total_bulk"` // gross buildable area incl. density bonus
	DevCharges   float64 `json:"dev_charges"`
	GDV          float64 `json:"gdv"` // gross development value
	IHBulk       float64 `json:"ih_bulk"`
	MarketBulk   float64 `json:"market_bulk"`
	Construction float64 `json:"construction"`
	Fees         float64 `json:"fees"`
	ProfitTarget float64 `json:"profit_target"`
}

// ComputeMetrics runs the residual appraisal: value in, minus all costs and
// the required margin, leaves what the developer can pay for the land.
//
// FORMULA:
//
//	TotalBulk = Land × FF × (1 + Bonus/100)
//	GDV       = MarketBulk × MarketPrice + IHBulk × IHCapPrice
//	RLV       = GDV − Construction − DevCharges − Fees − ProfitTarget
//
// The operation order below is fixed; tests depend on it reproducing the
// same floating-point results every time.
func ComputeMetrics(input ScenarioInput) ScenarioOutput {
	// 1. Bulk split: inclusionary portion sells at the cap, the rest at market
	totalBulk := (input.LandArea * input.FloorFactor) * (1 + input.DensityBonusPct/100)
	ihBulk := totalBulk * (input.InclusionaryPct / 100)
	marketBulk := totalBulk - ihBulk

	// 2. Revenue
	gdv := (marketBulk * input.MarketPrice) + (ihBulk * IHCapPrice)

	// 3. Costs: development charges hit market bulk only, construction hits all bulk
	devCharges := marketBulk * DCRate
	construction := totalBulk * input.ConstructionCost
	fees := construction * FeeRate
	profitTarget := gdv * ProfitMargin

	// 4. Residual
	rlv := gdv - construction - devCharges - fees - profitTarget

	return ScenarioOutput{
		RLV:          rlv,
		TotalBulk:    totalBulk,
		DevCharges:   devCharges,
		GDV:          gdv,
		IHBulk:       ihBulk,
		MarketBulk:   marketBulk,
		Construction: construction,
		Fees:         fees,
		ProfitTarget: profitTarget,
	}
}
