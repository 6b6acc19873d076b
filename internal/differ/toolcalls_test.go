package differ_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verticelabs/tracediff/internal/differ"
	"github.com/verticelabs/tracediff/internal/testutils"
)

func TestToolCalls_RemovedIsMasked(t *testing.T) {
	diff := compareDocs(t,
		`{"execution_steps": [{"tool_name": "fetch", "request": {"password": "abc"}, "duration_ms": 10, "status": "ok"}]}`,
		`{"execution_steps": []}`,
	)

	require.Len(t, diff.ToolCalls.Removed, 1)
	entry := diff.ToolCalls.Removed[0]
	assert.Equal(t, "fetch", entry.Name)
	assert.Contains(t, entry.Summary, "[MASKED]")
	assert.NotContains(t, entry.Summary, "abc")
	assert.Contains(t, entry.Summary, "10ms")
	assert.Contains(t, entry.Summary, "ok")
}

func TestToolCalls_MatchingBySignature(t *testing.T) {
	// Same name + same request prefix matches even when the list order
	// changed; the leftover call on each side reports as added/removed.
	diff := compareDocs(t,
		`{"execution_steps": [
			{"tool_name": "a", "request": {"q": 1}},
			{"tool_name": "b", "request": {"q": 2}}
		]}`,
		`{"execution_steps": [
			{"tool_name": "b", "request": {"q": 2}},
			{"tool_name": "a", "request": {"q": 1}},
			{"tool_name": "c", "request": {"q": 3}}
		]}`,
	)

	assert.Equal(t, 2, diff.ToolCalls.Unchanged)
	assert.Empty(t, diff.ToolCalls.Removed)
	require.Len(t, diff.ToolCalls.Added, 1)
	assert.Equal(t, "c", diff.ToolCalls.Added[0].Name)
}

func TestToolCalls_ModifiedFields(t *testing.T) {
	diff := compareDocs(t,
		`{"execution_steps": [{"tool_name": "fetch", "request": {"url": "x"}, "status": "ok", "duration_ms": 5}]}`,
		`{"execution_steps": [{"tool_name": "fetch", "request": {"url": "x"}, "status": "error", "duration_ms": 90}]}`,
	)

	require.Len(t, diff.ToolCalls.Modified, 1)
	mod := diff.ToolCalls.Modified[0]
	assert.Equal(t, "fetch", mod.Name)
	assert.Contains(t, mod.Changes, "status")
	assert.Contains(t, mod.Changes, "duration_ms")
	assert.NotContains(t, mod.Changes, "request")
	assert.Equal(t, 0, diff.ToolCalls.Unchanged)
}

func TestToolCalls_GreedyFirstAvailableMatch(t *testing.T) {
	// Two identical signatures on each side pair up one-to-one: no double
	// claiming of the same before record.
	diff := compareDocs(t,
		`{"execution_steps": [
			{"tool_name": "dup", "request": {"q": 1}, "status": "ok"},
			{"tool_name": "dup", "request": {"q": 1}, "status": "error"}
		]}`,
		`{"execution_steps": [
			{"tool_name": "dup", "request": {"q": 1}, "status": "ok"},
			{"tool_name": "dup", "request": {"q": 1}, "status": "ok"}
		]}`,
	)

	// First after claims the identical before; second after matches the
	// error one (same signature) and reports the status change.
	assert.Equal(t, 1, diff.ToolCalls.Unchanged)
	require.Len(t, diff.ToolCalls.Modified, 1)
	assert.Empty(t, diff.ToolCalls.Added)
	assert.Empty(t, diff.ToolCalls.Removed)
}

func TestToolCalls_StepIDFallback(t *testing.T) {
	diff := compareDocs(t,
		`{"execution_steps": [{"step_id": "s1", "request": {}}]}`,
		`{"execution_steps": []}`,
	)
	require.Len(t, diff.ToolCalls.Removed, 1)
	assert.Equal(t, "s1", diff.ToolCalls.Removed[0].Name)
}

func TestToolCalls_RequestPrefixDistinguishes(t *testing.T) {
	// Same tool name but different request serializations do not match.
	diff := compareDocs(t,
		`{"execution_steps": [{"tool_name": "fetch", "request": {"url": "a"}}]}`,
		`{"execution_steps": [{"tool_name": "fetch", "request": {"url": "b"}}]}`,
	)
	assert.Len(t, diff.ToolCalls.Added, 1)
	assert.Len(t, diff.ToolCalls.Removed, 1)
}

func TestToolCalls_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	diff := compareDocs(t,
		`{"execution_steps": [{"tool_name": "fetch", "request": {"blob": "`+long+`"}}]}`,
		`{"execution_steps": []}`,
	)

	require.Len(t, diff.ToolCalls.Removed, 1)
	summary := diff.ToolCalls.Removed[0].Summary
	// "req=" carries at most the preview length of serialized request.
	_, preview, found := strings.Cut(summary, "req=")
	require.True(t, found)
	assert.LessOrEqual(t, len(preview), 50)
}

func TestToolCalls_CustomPreviewLength(t *testing.T) {
	engine := differ.New(differ.Config{PreviewLength: 10})
	diff := engine.Compare(
		testutils.Document(t, `{"execution_steps": [{"tool_name": "t", "request": {"key": "0123456789abcdef"}}]}`),
		testutils.Document(t, `{"execution_steps": []}`),
	)

	require.Len(t, diff.ToolCalls.Removed, 1)
	_, preview, found := strings.Cut(diff.ToolCalls.Removed[0].Summary, "req=")
	require.True(t, found)
	assert.LessOrEqual(t, len(preview), 10)
}

func TestToolCalls_ExtraSensitiveKeys(t *testing.T) {
	engine := differ.New(differ.Config{ExtraSensitiveKeys: []string{"ssn"}})
	diff := engine.Compare(
		testutils.Document(t, `{"execution_steps": [{"tool_name": "t", "request": {"ssn": "123-45"}}]}`),
		testutils.Document(t, `{"execution_steps": []}`),
	)

	require.Len(t, diff.ToolCalls.Removed, 1)
	assert.NotContains(t, diff.ToolCalls.Removed[0].Summary, "123-45")
}
