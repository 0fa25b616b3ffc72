// calc-engine is a flag-driven calculator for one-off evaluations.
// Scenario payloads may be strict JSON or hand-written HJSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"land_valuation/pkg/api/feasibility"
	"land_valuation/pkg/core/utils"
	"land_valuation/pkg/core/valuation"
)

func main() {
	mode := flag.String("mode", "metrics", "Mode: metrics or grid")
	dataStr := flag.String("data", "", "Scenario payload (JSON/HJSON)")
	file := flag.String("file", "", "Scenario file path (JSON/HJSON)")
	flag.Parse()

	payload := *dataStr
	if *file != "" {
		bytes, err := os.ReadFile(*file)
		if err != nil {
			fmt.Printf("Error reading scenario file: %v\n", err)
			os.Exit(1)
		}
		payload = string(bytes)
	}
	if payload == "" {
		fmt.Println("Error: no scenario provided (use -data or -file)")
		os.Exit(1)
	}

	var req feasibility.ScenarioRequest
	if _, err := utils.ParseLenient(payload, &req); err != nil {
		fmt.Printf("Error parsing scenario: %v\n", err)
		os.Exit(1)
	}

	input, _, err := req.Resolve()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "metrics":
		printJSON(valuation.ComputeMetrics(input))
	case "grid":
		printJSON(valuation.BuildGrid(input.LandArea, input.FloorFactor, input.MarketPrice, input.ConstructionCost))
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
