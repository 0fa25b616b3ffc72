// verify_formula recomputes the worked reference scenario and prints a
// PASS/FAIL line per metric. Run it after touching the engine.
package main

import (
	"fmt"
	"math"

	"land_valuation/pkg/core/valuation"
	"land_valuation/pkg/core/zoning"
)

func main() {
	preset, err := zoning.Lookup("GR2")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Reference: 1000 m² GR2 parcel, 20% bonus, 20% IH, R45k sales, R17k build
	out := valuation.ComputeMetrics(valuation.ScenarioInput{
		LandArea:         1000,
		FloorFactor:      preset.FloorFactor,
		DensityBonusPct:  20,
		InclusionaryPct:  20,
		MarketPrice:      45000,
		ConstructionCost: 17000,
	})

	fmt.Println("--- Reference Scenario (1000 m² GR2) ---")
	check("TotalBulk", out.TotalBulk, 1200)
	check("IHBulk", out.IHBulk, 240)
	check("MarketBulk", out.MarketBulk, 960)
	check("GDV", out.GDV, 46_800_000)
	check("DevCharges", out.DevCharges, 493_536)
	check("Construction", out.Construction, 20_400_000)
	check("Fees", out.Fees, 2_550_000)
	check("ProfitTarget", out.ProfitTarget, 9_360_000)
	check("RLV", out.RLV, 13_996_464)

	fmt.Println("--- Grid Consistency ---")
	grid := valuation.BuildGrid(1000, preset.FloorFactor, 45000, 17000)
	base := valuation.ComputeMetrics(valuation.ScenarioInput{
		LandArea: 1000, FloorFactor: preset.FloorFactor,
		MarketPrice: 45000, ConstructionCost: 17000,
	})
	check("Cell[0% IH][+0% Bonus]", grid.Cells[0][0], valuation.RoundMillions(base.RLV))
}

func check(name string, got, want float64) {
	status := "PASS"
	if math.Abs(got-want) > 1e-6 {
		status = "FAIL"
	}
	fmt.Printf("[%s] %s: got %.6f, want %.6f\n", status, name, got, want)
}
