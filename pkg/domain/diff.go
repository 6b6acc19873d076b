package domain

// ChangeType classifies the result of comparing one item across two traces.
type ChangeType string

const (
	ChangeAdded     ChangeType = "added"
	ChangeRemoved   ChangeType = "removed"
	ChangeModified  ChangeType = "modified"
	ChangeUnchanged ChangeType = "unchanged"
)

// Plan section status vocabulary. The plan comparator predates the ChangeType
// constants and reports "same" instead of "unchanged"; the asymmetry is kept
// so consumers of the wire format keep working.
const (
	PlanSame     = "same"
	PlanModified = "modified"
)

// Human-readable section names, in evaluation order. sections_with_changes
// lists them in this order.
const (
	SectionAppliedAssets = "Applied Assets"
	SectionPlan          = "Plan"
	SectionToolCalls     = "Tool Calls"
	SectionReferences    = "References"
	SectionAnswerBlocks  = "Answer Blocks"
	SectionUIRender      = "UI Render"
)

// FieldChange is one field-level before/after pair.
type FieldChange struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// DiffItem wraps the comparison of a single optional item. Changes is
// populated only when ChangeType is modified.
type DiffItem[T any] struct {
	ChangeType ChangeType             `json:"change_type"`
	Before     *T                     `json:"before,omitempty"`
	After      *T                     `json:"after,omitempty"`
	Changes    map[string]FieldChange `json:"changes,omitempty"`
}

// QueriesDiff compares the applied query lists by their ordered display names.
// Reordering and content changes are indistinguishable at this level: any
// difference in the serialized name lists reports as modified.
type QueriesDiff struct {
	ChangeType ChangeType `json:"change_type"`
	Before     []string   `json:"before,omitempty"`
	After      []string   `json:"after,omitempty"`
}

// AppliedAssetsDiff covers the four compared asset sub-items.
type AppliedAssetsDiff struct {
	Prompt  DiffItem[AssetRef] `json:"prompt"`
	Policy  DiffItem[AssetRef] `json:"policy"`
	Mapping DiffItem[AssetRef] `json:"mapping"`
	Queries QueriesDiff        `json:"queries"`
}

// PlanDiff compares plan_raw and plan_validated via shallow key-union
// structural comparison. Status is PlanModified when either sub-object has at
// least one changed field, else PlanSame.
type PlanDiff struct {
	Status           string                 `json:"status"`
	RawChanges       map[string]FieldChange `json:"raw_changes,omitempty"`
	ValidatedChanges map[string]FieldChange `json:"validated_changes,omitempty"`
}

// ToolCallEntry is one added or removed tool call, with a masked one-line
// summary safe to surface to operators.
type ToolCallEntry struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// ToolCallModification is a matched tool call whose fields differ.
type ToolCallModification struct {
	Name    string                 `json:"name"`
	Changes map[string]FieldChange `json:"changes"`
}

// ToolCallsDiff is the execution_steps section result.
type ToolCallsDiff struct {
	Added     []ToolCallEntry        `json:"added,omitempty"`
	Removed   []ToolCallEntry        `json:"removed,omitempty"`
	Modified  []ToolCallModification `json:"modified,omitempty"`
	Unchanged int                    `json:"unchanged"`
}

// ReferenceSetChange lists reference names that appeared or disappeared for
// one ref type. Membership is by value; order and duplicates are not
// distinguished.
type ReferenceSetChange struct {
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
}

// ReferencesDiff groups reference changes by ref type. Types with no changes
// are omitted.
type ReferencesDiff struct {
	ByType map[string]ReferenceSetChange `json:"by_type,omitempty"`
}

// AnswerBlockChange is one answer block's comparison outcome.
//
// Index is in the before-list coordinate space for removed and matched
// blocks, and in the after-list space for added blocks. When list lengths
// differ the final ordering therefore interleaves two index spaces; this
// mirrors the upstream report format and is deliberately left unresolved.
type AnswerBlockChange struct {
	Index      int                    `json:"index"`
	Type       string                 `json:"type,omitempty"`
	Title      string                 `json:"title,omitempty"`
	ChangeType ChangeType             `json:"change_type"`
	Changes    map[string]FieldChange `json:"changes,omitempty"`
}

// AnswerBlocksDiff is the answer.blocks section result, sorted by Index.
type AnswerBlocksDiff struct {
	Blocks []AnswerBlockChange `json:"blocks,omitempty"`
}

// RenderedBlockChange is one positional UI-render difference. Unchanged
// positions are filtered out of the section result.
type RenderedBlockChange struct {
	Index      int                    `json:"index"`
	BlockType  string                 `json:"block_type,omitempty"`
	Component  string                 `json:"component_name,omitempty"`
	ChangeType ChangeType             `json:"change_type"`
	Changes    map[string]FieldChange `json:"changes,omitempty"`
}

// UIRenderDiff is the ui_render section result, plus aggregate error counts
// (blocks whose ok flag is false) computed independently of the per-index
// changes.
type UIRenderDiff struct {
	Changes          []RenderedBlockChange `json:"changes,omitempty"`
	ErrorCountBefore int                   `json:"error_count_before"`
	ErrorCountAfter  int                   `json:"error_count_after"`
}

// Summary aggregates all sections.
type Summary struct {
	TotalChanges        int      `json:"total_changes"`
	SectionsWithChanges []string `json:"sections_with_changes"`
}

// TraceDiff is the full comparison report of two trace documents.
type TraceDiff struct {
	AppliedAssets AppliedAssetsDiff `json:"applied_assets"`
	Plan          PlanDiff          `json:"plan"`
	ToolCalls     ToolCallsDiff     `json:"tool_calls"`
	References    ReferencesDiff    `json:"references"`
	AnswerBlocks  AnswerBlocksDiff  `json:"answer_blocks"`
	UIRender      UIRenderDiff      `json:"ui_render"`
	Summary       Summary           `json:"summary"`
}

// HasChanges reports whether the diff found anything at all.
func (d *TraceDiff) HasChanges() bool {
	return d.Summary.TotalChanges > 0
}
