package differ_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verticelabs/tracediff/internal/differ"
	"github.com/verticelabs/tracediff/internal/testutils"
	"github.com/verticelabs/tracediff/pkg/domain"
)

const richTrace = `{
	"applied_assets": {
		"prompt": {"asset_id": "p1", "name": "greeting", "version": 2, "source": "repo"},
		"policy": {"asset_id": "pol1", "version": 1},
		"queries": [{"name": "daily"}, {"name": "weekly"}]
	},
	"plan_raw": {"goal": "report", "steps": 2},
	"plan_validated": {"goal": "report", "steps": 2, "valid": true},
	"execution_steps": [
		{"tool_name": "fetch", "request": {"url": "a"}, "duration_ms": 10, "status": "ok"},
		{"tool_name": "render", "request": {"rows": 5}, "duration_ms": 3, "status": "ok"}
	],
	"references": [
		{"ref_type": "doc", "name": "manual"},
		{"ref_type": "sql", "statement": "select 1"}
	],
	"answer": {"blocks": [{"type": "text", "title": "A"}, {"type": "chart", "title": "B"}]},
	"ui_render": {"rendered_blocks": [{"block_type": "chart", "component_name": "Bar", "ok": true}]}
}`

func TestCompare_EmptyTraces(t *testing.T) {
	engine := differ.New(differ.Config{})

	before := testutils.Document(t, `{
		"execution_steps": [], "references": [],
		"answer": {"blocks": []}, "applied_assets": {}
	}`)
	after := testutils.Document(t, `{
		"execution_steps": [], "references": [],
		"answer": {"blocks": []}, "applied_assets": {}
	}`)

	diff := engine.Compare(before, after)

	assert.Equal(t, 0, diff.Summary.TotalChanges)
	assert.Empty(t, diff.Summary.SectionsWithChanges)
	assert.False(t, diff.HasChanges())
}

// Diffing a document against an identical copy of itself must always come
// back clean, section by section.
func TestCompare_Idempotence(t *testing.T) {
	engine := differ.New(differ.Config{})
	diff := engine.Compare(testutils.Document(t, richTrace), testutils.Document(t, richTrace))

	assert.Equal(t, 0, diff.Summary.TotalChanges)
	assert.Empty(t, diff.Summary.SectionsWithChanges)

	assert.Equal(t, domain.ChangeUnchanged, diff.AppliedAssets.Prompt.ChangeType)
	assert.Equal(t, domain.ChangeUnchanged, diff.AppliedAssets.Queries.ChangeType)
	assert.Equal(t, domain.PlanSame, diff.Plan.Status)
	assert.Empty(t, diff.ToolCalls.Added)
	assert.Empty(t, diff.ToolCalls.Removed)
	assert.Empty(t, diff.ToolCalls.Modified)
	assert.Equal(t, 2, diff.ToolCalls.Unchanged)
	assert.Empty(t, diff.References.ByType)
	for _, block := range diff.AnswerBlocks.Blocks {
		assert.Equal(t, domain.ChangeUnchanged, block.ChangeType)
	}
	assert.Empty(t, diff.UIRender.Changes)
}

func TestCompare_NilDocuments(t *testing.T) {
	engine := differ.New(differ.Config{})
	diff := engine.Compare(nil, nil)
	assert.Equal(t, 0, diff.Summary.TotalChanges)
}

// diff(A,B) and diff(B,A) must report the same set of changed items with
// every added/removed label swapped and every before/after pair reversed.
func TestCompare_DirectionalSymmetry(t *testing.T) {
	other := `{
		"applied_assets": {
			"prompt": {"asset_id": "p1", "name": "greeting", "version": 3, "source": "repo"}
		},
		"plan_raw": {"goal": "report", "steps": 3},
		"execution_steps": [
			{"tool_name": "fetch", "request": {"url": "a"}, "duration_ms": 10, "status": "ok"}
		],
		"references": [{"ref_type": "doc", "name": "handbook"}],
		"answer": {"blocks": [{"type": "text", "title": "A"}]},
		"ui_render": {"rendered_blocks": []}
	}`

	engine := differ.New(differ.Config{})
	forward := engine.Compare(testutils.Document(t, richTrace), testutils.Document(t, other))
	backward := engine.Compare(testutils.Document(t, other), testutils.Document(t, richTrace))

	assert.Equal(t, forward.Summary.TotalChanges, backward.Summary.TotalChanges)
	assert.ElementsMatch(t, forward.Summary.SectionsWithChanges, backward.Summary.SectionsWithChanges)

	// Tool calls: added and removed swap wholesale.
	assert.Equal(t, len(forward.ToolCalls.Added), len(backward.ToolCalls.Removed))
	assert.Equal(t, len(forward.ToolCalls.Removed), len(backward.ToolCalls.Added))

	// References: the doc-type sets mirror each other.
	require.Contains(t, forward.References.ByType, "doc")
	require.Contains(t, backward.References.ByType, "doc")
	assert.Equal(t, forward.References.ByType["doc"].Added, backward.References.ByType["doc"].Removed)
	assert.Equal(t, forward.References.ByType["doc"].Removed, backward.References.ByType["doc"].Added)

	// Prompt: same field set, each pair reversed.
	fw := forward.AppliedAssets.Prompt.Changes
	bw := backward.AppliedAssets.Prompt.Changes
	require.Len(t, fw, 1)
	require.Len(t, bw, 1)
	assert.Equal(t, fw["version"].Before, bw["version"].After)
	assert.Equal(t, fw["version"].After, bw["version"].Before)
}

// Determinism: two runs over the same inputs yield structurally identical
// reports (no clock, randomness or map-order dependence in the output).
func TestCompare_Deterministic(t *testing.T) {
	other := `{"execution_steps": [{"tool_name": "x", "request": {"p": 1}}]}`
	engine := differ.New(differ.Config{})

	first := engine.Compare(testutils.Document(t, richTrace), testutils.Document(t, other))
	second := engine.Compare(testutils.Document(t, richTrace), testutils.Document(t, other))

	if delta := cmp.Diff(first, second); delta != "" {
		t.Fatalf("reports differ between runs (-first +second):\n%s", delta)
	}
}

func TestSummary_ArithmeticAndSectionOrder(t *testing.T) {
	before := testutils.Document(t, `{
		"applied_assets": {
			"prompt": {"asset_id": "p1", "version": 1},
			"policy": {"asset_id": "pol", "version": 1}
		},
		"plan_raw": {"steps": 1},
		"execution_steps": [{"tool_name": "gone", "request": {}}],
		"references": [{"ref_type": "doc", "name": "old"}],
		"answer": {"blocks": [{"type": "text", "title": "T"}]},
		"ui_render": {"rendered_blocks": [{"block_type": "a", "ok": true}]}
	}`)
	after := testutils.Document(t, `{
		"applied_assets": {
			"prompt": {"asset_id": "p1", "version": 2},
			"policy": {"asset_id": "pol", "version": 1},
			"mapping": {"asset_id": "m", "version": 1}
		},
		"plan_raw": {"steps": 2},
		"plan_validated": {"ok": true},
		"execution_steps": [],
		"references": [{"ref_type": "doc", "name": "new"}],
		"answer": {"blocks": [{"type": "table", "title": "T"}]},
		"ui_render": {"rendered_blocks": [{"block_type": "a", "ok": false}]}
	}`)

	diff := differ.New(differ.Config{}).Compare(before, after)

	// applied assets: prompt modified + mapping added          = 2
	// plan: raw changed + validated changed                    = 2
	// tool calls: one removed                                  = 1
	// references: one added + one removed                      = 2
	// answer blocks: old text removed + new table added        = 2
	// ui render: ok flipped at index 0                         = 1
	assert.Equal(t, 10, diff.Summary.TotalChanges)

	assert.Equal(t, []string{
		domain.SectionAppliedAssets,
		domain.SectionPlan,
		domain.SectionToolCalls,
		domain.SectionReferences,
		domain.SectionAnswerBlocks,
		domain.SectionUIRender,
	}, diff.Summary.SectionsWithChanges)
}
