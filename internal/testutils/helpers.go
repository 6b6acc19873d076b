package testutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verticelabs/tracediff/internal/decode"
	"github.com/verticelabs/tracediff/pkg/domain"
)

// Raw parses a JSON object literal into the untyped map form a trace
// document arrives in. It fails the test immediately on malformed JSON.
func Raw(t *testing.T, jsonText string) map[string]any {
	t.Helper()

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(jsonText), &raw), "fixture is not valid JSON")
	return raw
}

// Document parses and decodes a JSON trace document literal.
func Document(t *testing.T, jsonText string) *domain.TraceDocument {
	t.Helper()
	return decode.Document(Raw(t, jsonText))
}

// Steps parses a JSON array literal into decoded step records.
func Steps(t *testing.T, jsonText string) []domain.StepRecord {
	t.Helper()

	var raw []any
	require.NoError(t, json.Unmarshal([]byte(jsonText), &raw), "fixture is not valid JSON")
	return decode.Steps(raw)
}
