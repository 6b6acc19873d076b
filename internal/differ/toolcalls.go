package differ

import (
	"fmt"

	"github.com/verticelabs/tracediff/pkg/domain"
)

// compareToolCalls matches the two execution_steps lists by signature: tool
// name (step_id as fallback) plus a truncated serialization of the request.
// Matching is greedy left-to-right with first-available-match semantics:
// each before record can be claimed by at most one after record, and once
// claimed it leaves the candidate pool.
func (e *Engine) compareToolCalls(before, after []domain.StepRecord) domain.ToolCallsDiff {
	diff := domain.ToolCallsDiff{}

	matched := make([]bool, len(before))
	for _, afterStep := range after {
		signature := e.signature(afterStep)

		matchIndex := -1
		for i, beforeStep := range before {
			if !matched[i] && e.signature(beforeStep) == signature {
				matchIndex = i
				break
			}
		}

		if matchIndex < 0 {
			diff.Added = append(diff.Added, e.toolCallEntry(afterStep))
			continue
		}
		matched[matchIndex] = true

		if changes := structuralChanges(before[matchIndex].Raw, afterStep.Raw); changes != nil {
			diff.Modified = append(diff.Modified, domain.ToolCallModification{
				Name:    afterStep.Name(),
				Changes: changes,
			})
		} else {
			diff.Unchanged++
		}
	}

	for i, beforeStep := range before {
		if !matched[i] {
			diff.Removed = append(diff.Removed, e.toolCallEntry(beforeStep))
		}
	}

	return diff
}

// signature identifies a step for matching purposes. The request portion is
// truncated so huge payloads with a common prefix still pair up; the raw
// (unmasked) serialization is used since signatures never leave the engine.
func (e *Engine) signature(step domain.StepRecord) string {
	return step.Name() + ":" + truncate(canon(step.Request), e.previewLen)
}

// toolCallEntry builds the operator-facing summary for an added or removed
// call. The request preview is masked before truncation so a sensitive value
// can never leak through the cut-off point.
func (e *Engine) toolCallEntry(step domain.StepRecord) domain.ToolCallEntry {
	status := step.Status
	if status == "" {
		status = "?"
	}
	duration := "?"
	if v, ok := step.Raw["duration_ms"]; ok {
		duration = domain.Stringify(v)
	}
	preview := truncate(canon(maskValue(step.Request, e.sensitiveKeys)), e.previewLen)
	return domain.ToolCallEntry{
		Name: step.Name(),
		Summary: fmt.Sprintf("%s (%sms, %s) req=%s",
			step.Name(), duration, status, preview),
	}
}
