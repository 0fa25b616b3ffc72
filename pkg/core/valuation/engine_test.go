package valuation

import (
	"math"
	"testing"
)

const eps = 1e-6

func TestComputeMetricsReferenceScenario(t *testing.T) {
	// 1000 m² GR2 parcel (FF 1.0), 20% bonus, 20% IH, R45k sales, R17k build.
	// TotalBulk = 1000 * 1.0 * 1.20 = 1200
	// IHBulk = 240, MarketBulk = 960
	// GDV = 960*45000 + 240*15000 = 43,200,000 + 3,600,000 = 46,800,000
	// DevCharges = 960 * 514.10 = 493,536
	// Construction = 1200 * 17000 = 20,400,000
	// Fees = 20,400,000 * 0.125 = 2,550,000
	// ProfitTarget = 46,800,000 * 0.20 = 9,360,000
	// RLV = 46,800,000 - 20,400,000 - 493,536 - 2,550,000 - 9,360,000 = 13,996,464
	out := ComputeMetrics(ScenarioInput{
		LandArea:         1000,
		FloorFactor:      1.0,
		DensityBonusPct:  20,
		InclusionaryPct:  20,
		MarketPrice:      45000,
		ConstructionCost: 17000,
	})

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"TotalBulk", out.TotalBulk, 1200},
		{"IHBulk", out.IHBulk, 240},
		{"MarketBulk", out.MarketBulk, 960},
		{"GDV", out.GDV, 46_800_000},
		{"DevCharges", out.DevCharges, 493_536},
		{"Construction", out.Construction, 20_400_000},
		{"Fees", out.Fees, 2_550_000},
		{"ProfitTarget", out.ProfitTarget, 9_360_000},
		{"RLV", out.RLV, 13_996_464},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > eps {
			t.Errorf("%s: expected %f, got %f", c.name, c.want, c.got)
		}
	}
}

func TestComputeMetricsIsPure(t *testing.T) {
	input := ScenarioInput{
		LandArea:         2345.6,
		FloorFactor:      1.5,
		DensityBonusPct:  37.5,
		InclusionaryPct:  12.5,
		MarketPrice:      63000,
		ConstructionCost: 19500,
	}
	a := ComputeMetrics(input)
	b := ComputeMetrics(input)
	// Bit-exact: identical inputs must yield identical outputs.
	if a != b {
		t.Errorf("expected identical outputs for identical inputs: %+v vs %+v", a, b)
	}
}

func TestTotalBulkMonotonicInBonus(t *testing.T) {
	prev := -1.0
	for bonus := 0.0; bonus <= 100; bonus += 5 {
		out := ComputeMetrics(ScenarioInput{
			LandArea:         1000,
			FloorFactor:      1.5,
			DensityBonusPct:  bonus,
			InclusionaryPct:  10,
			MarketPrice:      45000,
			ConstructionCost: 17000,
		})
		if out.TotalBulk < prev {
			t.Errorf("TotalBulk decreased at bonus %.0f: %f < %f", bonus, out.TotalBulk, prev)
		}
		prev = out.TotalBulk
	}
}

func TestGDVMonotonicInMarketPrice(t *testing.T) {
	prev := -1.0
	for price := 20000.0; price <= 80000; price += 10000 {
		out := ComputeMetrics(ScenarioInput{
			LandArea:         1000,
			FloorFactor:      4.0,
			DensityBonusPct:  20,
			InclusionaryPct:  30,
			MarketPrice:      price,
			ConstructionCost: 17000,
		})
		if out.GDV < prev {
			t.Errorf("GDV decreased at price %.0f: %f < %f", price, out.GDV, prev)
		}
		prev = out.GDV
	}
}

func TestGDVAtInclusionaryExtremes(t *testing.T) {
	base := ScenarioInput{
		LandArea:         800,
		FloorFactor:      1.5,
		DensityBonusPct:  40,
		MarketPrice:      52000,
		ConstructionCost: 15000,
	}

	// At 0% IH the whole bulk sells at market price.
	base.InclusionaryPct = 0
	out := ComputeMetrics(base)
	if math.Abs(out.GDV-out.TotalBulk*base.MarketPrice) > eps {
		t.Errorf("at 0%% IH expected GDV = TotalBulk*MarketPrice, got %f vs %f",
			out.GDV, out.TotalBulk*base.MarketPrice)
	}

	// At 100% IH the whole bulk sells at the cap. The engine must not assume
	// the 30% presentation-layer ceiling.
	base.InclusionaryPct = 100
	out = ComputeMetrics(base)
	if math.Abs(out.GDV-out.TotalBulk*IHCapPrice) > eps {
		t.Errorf("at 100%% IH expected GDV = TotalBulk*IHCapPrice, got %f vs %f",
			out.GDV, out.TotalBulk*IHCapPrice)
	}
}

func TestDevChargesMarketBulkOnly(t *testing.T) {
	out := ComputeMetrics(ScenarioInput{
		LandArea:         1500,
		FloorFactor:      4.0,
		DensityBonusPct:  60,
		InclusionaryPct:  25,
		MarketPrice:      38000,
		ConstructionCost: 21000,
	})
	if math.Abs(out.DevCharges-out.MarketBulk*DCRate) > eps {
		t.Errorf("expected DevCharges = MarketBulk*DCRate, got %f vs %f",
			out.DevCharges, out.MarketBulk*DCRate)
	}
}

func TestNegativeRLVNotClamped(t *testing.T) {
	// Cheap sales, expensive build: clearly infeasible.
	// TotalBulk = 1000, GDV = 20,000,000, Construction = 25,000,000
	// RLV = 20M - 25M - 514,100 - 3,125,000 - 4,000,000 = -12,639,100
	out := ComputeMetrics(ScenarioInput{
		LandArea:         1000,
		FloorFactor:      1.0,
		DensityBonusPct:  0,
		InclusionaryPct:  0,
		MarketPrice:      20000,
		ConstructionCost: 25000,
	})
	if math.Abs(out.RLV-(-12_639_100)) > eps {
		t.Errorf("expected RLV -12,639,100 (unclamped), got %f", out.RLV)
	}
}
