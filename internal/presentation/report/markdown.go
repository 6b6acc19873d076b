// Package report renders a TraceDiff as markdown. Output is deterministic:
// map-backed parts of the report are written in sorted key order.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/verticelabs/tracediff/pkg/domain"
)

// Markdown renders the full diff report.
func Markdown(diff *domain.TraceDiff) string {
	var sb strings.Builder

	sb.WriteString("# Trace Diff\n\n")
	if !diff.HasChanges() {
		sb.WriteString("No changes detected.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("**Total changes:** %d\n\n", diff.Summary.TotalChanges))
	sb.WriteString(fmt.Sprintf("**Sections:** %s\n", strings.Join(diff.Summary.SectionsWithChanges, ", ")))

	writeAppliedAssets(&sb, diff.AppliedAssets)
	writePlan(&sb, diff.Plan)
	writeToolCalls(&sb, diff.ToolCalls)
	writeReferences(&sb, diff.References)
	writeAnswerBlocks(&sb, diff.AnswerBlocks)
	writeUIRender(&sb, diff.UIRender)

	return sb.String()
}

func writeAppliedAssets(sb *strings.Builder, diff domain.AppliedAssetsDiff) {
	items := []struct {
		name string
		item domain.DiffItem[domain.AssetRef]
	}{
		{"prompt", diff.Prompt},
		{"policy", diff.Policy},
		{"mapping", diff.Mapping},
	}

	changed := diff.Queries.ChangeType != domain.ChangeUnchanged
	for _, entry := range items {
		if entry.item.ChangeType != domain.ChangeUnchanged {
			changed = true
		}
	}
	if !changed {
		return
	}

	sb.WriteString("\n## Applied Assets\n\n")
	for _, entry := range items {
		switch entry.item.ChangeType {
		case domain.ChangeUnchanged:
		case domain.ChangeModified:
			sb.WriteString(fmt.Sprintf("- **%s** modified (`%s` → `%s`)\n",
				entry.name, entry.item.Before.IdentityKey(), entry.item.After.IdentityKey()))
			writeFieldChanges(sb, entry.item.Changes, "  ")
		case domain.ChangeAdded:
			sb.WriteString(fmt.Sprintf("- **%s** added (`%s`)\n", entry.name, entry.item.After.IdentityKey()))
		case domain.ChangeRemoved:
			sb.WriteString(fmt.Sprintf("- **%s** removed (`%s`)\n", entry.name, entry.item.Before.IdentityKey()))
		}
	}
	if diff.Queries.ChangeType != domain.ChangeUnchanged {
		sb.WriteString(fmt.Sprintf("- **queries** %s (before: %s, after: %s)\n",
			diff.Queries.ChangeType,
			jsonish(diff.Queries.Before), jsonish(diff.Queries.After)))
	}
}

func writePlan(sb *strings.Builder, diff domain.PlanDiff) {
	if diff.Status != domain.PlanModified {
		return
	}
	sb.WriteString("\n## Plan\n")
	if len(diff.RawChanges) > 0 {
		sb.WriteString("\n**plan_raw**\n\n")
		writeFieldChanges(sb, diff.RawChanges, "")
	}
	if len(diff.ValidatedChanges) > 0 {
		sb.WriteString("\n**plan_validated**\n\n")
		writeFieldChanges(sb, diff.ValidatedChanges, "")
	}
}

func writeToolCalls(sb *strings.Builder, diff domain.ToolCallsDiff) {
	if len(diff.Added)+len(diff.Removed)+len(diff.Modified) == 0 {
		return
	}
	sb.WriteString("\n## Tool Calls\n\n")
	for _, entry := range diff.Added {
		sb.WriteString(fmt.Sprintf("- added: %s\n", entry.Summary))
	}
	for _, entry := range diff.Removed {
		sb.WriteString(fmt.Sprintf("- removed: %s\n", entry.Summary))
	}
	for _, entry := range diff.Modified {
		sb.WriteString(fmt.Sprintf("- modified: **%s**\n", entry.Name))
		writeFieldChanges(sb, entry.Changes, "  ")
	}
	if diff.Unchanged > 0 {
		sb.WriteString(fmt.Sprintf("- unchanged: %d\n", diff.Unchanged))
	}
}

func writeReferences(sb *strings.Builder, diff domain.ReferencesDiff) {
	if len(diff.ByType) == 0 {
		return
	}
	sb.WriteString("\n## References\n\n")
	for _, refType := range sortedKeys(diff.ByType) {
		change := diff.ByType[refType]
		label := refType
		if label == "" {
			label = "(untyped)"
		}
		sb.WriteString(fmt.Sprintf("- **%s**:", label))
		if len(change.Added) > 0 {
			sb.WriteString(fmt.Sprintf(" +%s", strings.Join(change.Added, ", +")))
		}
		if len(change.Removed) > 0 {
			sb.WriteString(fmt.Sprintf(" -%s", strings.Join(change.Removed, ", -")))
		}
		sb.WriteString("\n")
	}
}

func writeAnswerBlocks(sb *strings.Builder, diff domain.AnswerBlocksDiff) {
	changed := false
	for _, block := range diff.Blocks {
		if block.ChangeType != domain.ChangeUnchanged {
			changed = true
			break
		}
	}
	if !changed {
		return
	}

	sb.WriteString("\n## Answer Blocks\n\n")
	for _, block := range diff.Blocks {
		if block.ChangeType == domain.ChangeUnchanged {
			continue
		}
		sb.WriteString(fmt.Sprintf("- [%d] %s %q (%s)\n", block.Index, block.Type, block.Title, block.ChangeType))
		writeFieldChanges(sb, block.Changes, "  ")
	}
}

func writeUIRender(sb *strings.Builder, diff domain.UIRenderDiff) {
	if len(diff.Changes) == 0 && diff.ErrorCountBefore == diff.ErrorCountAfter {
		return
	}
	sb.WriteString("\n## UI Render\n\n")
	for _, change := range diff.Changes {
		sb.WriteString(fmt.Sprintf("- [%d] %s/%s (%s)\n",
			change.Index, change.BlockType, change.Component, change.ChangeType))
		writeFieldChanges(sb, change.Changes, "  ")
	}
	sb.WriteString(fmt.Sprintf("- render errors: %d → %d\n", diff.ErrorCountBefore, diff.ErrorCountAfter))
}

func writeFieldChanges(sb *strings.Builder, changes map[string]domain.FieldChange, indent string) {
	for _, key := range sortedKeys(changes) {
		change := changes[key]
		sb.WriteString(fmt.Sprintf("%s- `%s`: %s → %s\n", indent, key, jsonish(change.Before), jsonish(change.After)))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func jsonish(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
