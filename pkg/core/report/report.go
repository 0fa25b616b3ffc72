// Package report renders feasibility results for human consumption.
// Display-only rules (like clamping a negative RLV to zero) live here,
// never in the engine.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"land_valuation/pkg/core/valuation"
)

// Scenario bundles everything a report needs. Matrix is optional; when nil
// the sensitivity section is omitted.
type Scenario struct {
	ZoneLabel   string
	ParkingZone string
	Input       valuation.ScenarioInput
	Output      valuation.ScenarioOutput
	Matrix      *valuation.Matrix
}

// RenderMarkdown produces the feasibility report as Markdown.
func RenderMarkdown(s Scenario) string {
	var b strings.Builder

	b.WriteString("# Residual Land Value Report\n\n")
	fmt.Fprintf(&b, "Scenario: %s in a %s area with %.0f%% Inclusionary Housing.\n\n",
		s.ZoneLabel, s.ParkingZone, s.Input.InclusionaryPct)

	// Metric cards. A negative RLV displays as zero; the raw value stays
	// available in the JSON API.
	b.WriteString("## Key Metrics\n\n")
	fmt.Fprintf(&b, "- **Residual Land Value**: R %.2fM\n", math.Max(0, s.Output.RLV)/1e6)
	fmt.Fprintf(&b, "- **Total Bulk (GBA)**: %.0f m²\n", s.Output.TotalBulk)
	fmt.Fprintf(&b, "- **Dev Charges**: R %.0fk\n", s.Output.DevCharges/1e3)
	fmt.Fprintf(&b, "- **Total GDV**: R %.2fM\n", s.Output.GDV/1e6)

	if s.Matrix != nil {
		b.WriteString("\n## Sensitivity: How Density Bonuses offset Inclusionary Requirements\n\n")
		b.WriteString("Land Value Matrix (ZAR Millions)\n\n")
		writeMatrixTable(&b, s.Matrix)
		b.WriteString("\nNote: higher cells indicate higher land value; low cells show the policy making the land less valuable.\n")
	}

	return b.String()
}

// RenderHTML converts a Markdown report to HTML. GFM is enabled for the
// sensitivity table.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

func writeMatrixTable(b *strings.Builder, m *valuation.Matrix) {
	b.WriteString("| |")
	for _, col := range m.ColumnLabels {
		fmt.Fprintf(b, " %s |", col)
	}
	b.WriteString("\n|---|")
	for range m.ColumnLabels {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for i, row := range m.Cells {
		fmt.Fprintf(b, "| %s |", m.RowLabels[i])
		for _, cell := range row {
			fmt.Fprintf(b, " %.2f |", cell)
		}
		b.WriteString("\n")
	}
}
