// Package utils provides lenient parsing helpers for hand-written scenario
// payloads (CLI flags, scenario files).
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common errors in hand-written JSON:
// single quotes, unquoted keys, trailing commas, unclosed brackets.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %v", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (comments, unquoted keys, optional
// commas) and returns equivalent standard JSON.
func ParseHJSON(input string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(input), &result); err != nil {
		return "", fmt.Errorf("hjson parse error: %v", err)
	}
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("json marshal error: %v", err)
	}
	return string(jsonBytes), nil
}

// ParseLenient tries multiple strategies to decode a scenario payload into
// schema. Order of attempts:
// 1. Standard JSON parse
// 2. JSON repair
// 3. Hjson parse (most lenient)
// Returns the normalized JSON that successfully decoded.
func ParseLenient(input string, schema interface{}) (string, error) {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	if normalized, err := ParseHJSON(input); err == nil {
		if err := json.Unmarshal([]byte(normalized), schema); err == nil {
			return normalized, nil
		}
	}

	return "", fmt.Errorf("all parsing strategies failed for scenario payload")
}
