package ourairports

import (
	"encoding/json"
	"fmt"
)

// ToJSON encodes a record, a slice of records or a table compactly.
func ToJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(b), nil
}

// ToJSONPretty is ToJSON with two-space indentation.
func ToJSONPretty(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(b), nil
}
