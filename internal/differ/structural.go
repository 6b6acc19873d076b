package differ

import (
	"encoding/json"
	"fmt"

	"github.com/verticelabs/tracediff/pkg/domain"
)

// canon renders a value to its canonical JSON form for equality checks.
// encoding/json writes map keys in sorted order, so the result is stable for
// structurally equal values. Unmarshalable values fall back to fmt, which is
// still deterministic for the same input.
func canon(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// structuralChanges is the shared shallow compare: for the union of keys in
// both objects, it reports a before/after pair for every key whose canonical
// JSON value differs. Nested differences surface as one whole-value change on
// the parent key; paths are never expanded recursively.
func structuralChanges(before, after map[string]any) map[string]domain.FieldChange {
	changes := make(map[string]domain.FieldChange)

	for key, beforeValue := range before {
		afterValue, present := after[key]
		if !present || canon(beforeValue) != canon(afterValue) {
			changes[key] = domain.FieldChange{Before: beforeValue, After: afterValue}
		}
	}
	for key, afterValue := range after {
		if _, present := before[key]; !present {
			changes[key] = domain.FieldChange{Before: nil, After: afterValue}
		}
	}

	if len(changes) == 0 {
		return nil
	}
	return changes
}
