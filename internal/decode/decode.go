// Package decode turns untyped trace documents (JSON-compatible maps) into
// the fully-typed structures in pkg/domain.
//
// All defaulting lives here: missing sections become empty values, malformed
// optional fields degrade to defaults, and every record keeps its raw map so
// the comparators can run shallow key-union diffs. Decoding is total: it
// never returns an error, no matter how malformed the input is.
package decode

import (
	"github.com/mitchellh/mapstructure"

	"github.com/verticelabs/tracediff/pkg/domain"
)

// documentDTO frames the recognized top-level keys of a trace document.
type documentDTO struct {
	AppliedAssets  map[string]any `mapstructure:"applied_assets"`
	PlanRaw        map[string]any `mapstructure:"plan_raw"`
	PlanValidated  map[string]any `mapstructure:"plan_validated"`
	ExecutionSteps []any          `mapstructure:"execution_steps"`
	References     []any          `mapstructure:"references"`
	Answer         map[string]any `mapstructure:"answer"`
	UIRender       map[string]any `mapstructure:"ui_render"`
}

// Document decodes one raw trace document. A nil input yields an empty
// document that compares as unchanged against another empty document.
func Document(raw map[string]any) *domain.TraceDocument {
	var dto documentDTO
	// Field errors are deliberately discarded: a section of the wrong type
	// decodes to its zero value and the rest of the document still loads.
	_ = mapstructure.Decode(raw, &dto)

	doc := &domain.TraceDocument{
		AppliedAssets: appliedAssets(dto.AppliedAssets),
		PlanRaw:       dto.PlanRaw,
		PlanValidated: dto.PlanValidated,
		Steps:         Steps(dto.ExecutionSteps),
	}

	for _, entry := range dto.References {
		doc.References = append(doc.References, reference(entry))
	}
	for _, entry := range asList(dto.Answer["blocks"]) {
		doc.Answer.Blocks = append(doc.Answer.Blocks, answerBlock(entry))
	}
	for _, entry := range asList(dto.UIRender["rendered_blocks"]) {
		doc.UIRender.RenderedBlocks = append(doc.UIRender.RenderedBlocks, renderedBlock(entry))
	}

	return doc
}

func appliedAssets(section map[string]any) domain.AppliedAssets {
	return domain.AppliedAssets{
		Prompt:  assetRef(section["prompt"]),
		Policy:  assetRef(section["policy"]),
		Mapping: assetRef(section["mapping"]),
		Queries: assetList(section["queries"]),
		Screens: assetList(section["screens"]),
	}
}

func assetRef(v any) *domain.AssetRef {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	ref := domain.AssetRef{Raw: m}
	_ = mapstructure.Decode(m, &ref)
	return &ref
}

func assetList(v any) []domain.AssetRef {
	var refs []domain.AssetRef
	for _, entry := range asList(v) {
		if ref := assetRef(entry); ref != nil {
			refs = append(refs, *ref)
		} else {
			// Non-object list entries still occupy a slot so positional
			// name lists line up with the source document.
			refs = append(refs, domain.AssetRef{Raw: map[string]any{}})
		}
	}
	return refs
}

// Steps decodes a raw execution_steps list. Non-object entries decode to
// empty records rather than being dropped, so list positions are preserved.
func Steps(entries []any) []domain.StepRecord {
	var steps []domain.StepRecord
	for _, entry := range entries {
		steps = append(steps, Step(entry))
	}
	return steps
}

// Step decodes a single step record.
func Step(v any) domain.StepRecord {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.StepRecord{Raw: map[string]any{}}
	}
	return domain.StepRecord{
		ToolName:      asString(m["tool_name"]),
		StepID:        asString(m["step_id"]),
		Request:       m["request"],
		Response:      m["response"],
		DurationMS:    asNumber(m["duration_ms"]),
		Status:        asString(m["status"]),
		Orchestration: orchestration(m["orchestration"]),
		Raw:           m,
	}
}

func orchestration(v any) *domain.OrchestrationMeta {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	meta := &domain.OrchestrationMeta{
		GroupIndex: int(asNumber(m["group_index"])),
		ToolID:     asString(m["tool_id"]),
		ToolType:   asString(m["tool_type"]),
	}
	if meta.ToolType == "" {
		meta.ToolType = "unknown"
	}
	for _, dep := range asList(m["depends_on"]) {
		if id, ok := dep.(string); ok {
			meta.DependsOn = append(meta.DependsOn, id)
		}
	}
	if mapping, ok := m["output_mapping"].(map[string]any); ok {
		for key, value := range mapping {
			if target, ok := value.(string); ok {
				if meta.OutputMapping == nil {
					meta.OutputMapping = make(map[string]string)
				}
				meta.OutputMapping[key] = target
			}
		}
	}
	return meta
}

func reference(v any) domain.Reference {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.Reference{Raw: map[string]any{}}
	}
	return domain.Reference{
		RefType:   asString(m["ref_type"]),
		Name:      asString(m["name"]),
		Statement: asString(m["statement"]),
		Raw:       m,
	}
}

func answerBlock(v any) domain.AnswerBlock {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.AnswerBlock{Raw: map[string]any{}}
	}
	return domain.AnswerBlock{
		Type:  asString(m["type"]),
		Title: asString(m["title"]),
		Raw:   m,
	}
}

func renderedBlock(v any) domain.RenderedBlock {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.RenderedBlock{Raw: map[string]any{}}
	}
	return domain.RenderedBlock{
		BlockType:     asString(m["block_type"]),
		ComponentName: asString(m["component_name"]),
		OK:            m["ok"] == true,
		Error:         asString(m["error"]),
		Raw:           m,
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}
