package valuation

import (
	"fmt"
	"math"
)

// Policy lever levels swept by the sensitivity grid. Row/column order follows
// these slices; the presentation layer relies on both being ascending.
var (
	InclusionaryLevels = []int{0, 10, 20, 30}
	BonusLevels        = []int{0, 20, 40, 60, 80, 100}
)

// Matrix is a labeled grid of RLV values in millions, rounded to 2 decimals.
// Dimensions are always len(RowLabels) × len(ColumnLabels).
type Matrix struct {
	RowLabels    []string    `json:"row_labels"`
	ColumnLabels []string    `json:"column_labels"`
	Cells        [][]float64 `json:"cells"`
}

// BuildGrid evaluates the engine across every (inclusionary, bonus) pair,
// holding the other four scenario fields fixed. 24 evaluations, each
// independent; no shared state between cells.
func BuildGrid(landArea, floorFactor, marketPrice, constructionCost float64) Matrix {
	m := Matrix{
		RowLabels:    make([]string, len(InclusionaryLevels)),
		ColumnLabels: make([]string, len(BonusLevels)),
		Cells:        make([][]float64, len(InclusionaryLevels)),
	}
	for j, b := range BonusLevels {
		m.ColumnLabels[j] = fmt.Sprintf("+%d%% Bonus", b)
	}
	for i, ih := range InclusionaryLevels {
		m.RowLabels[i] = fmt.Sprintf("%d%% IH", ih)
		row := make([]float64, len(BonusLevels))
		for j, b := range BonusLevels {
			out := ComputeMetrics(ScenarioInput{
				LandArea:         landArea,
				FloorFactor:      floorFactor,
				DensityBonusPct:  float64(b),
				InclusionaryPct:  float64(ih),
				MarketPrice:      marketPrice,
				ConstructionCost: constructionCost,
			})
			row[j] = RoundMillions(out.RLV)
		}
		m.Cells[i] = row
	}
	return m
}

// RoundMillions scales a currency amount to millions, rounded to 2 decimals.
func RoundMillions(v float64) float64 {
	return math.Round(v/1e6*100) / 100
}
