// Package topology rebuilds a grouped execution plan from flat step records
// when a trace carries no first-class plan object.
//
// Reconstruction is best-effort and never fails: records without
// orchestration metadata are skipped, records without a tool_id are dropped,
// and every other malformed field degrades to a default upstream at the
// decode boundary.
package topology

import (
	"sort"

	"github.com/verticelabs/tracediff/pkg/domain"
)

// Reconstruct builds an OrchestrationTrace from decoded step records.
//
// Strategy starts at serial and latches to dag the first time a group is
// seen holding more than one tool; it never reads back down, whatever the
// record order. The parallel strategy is never produced here; it only
// exists in plans authored upstream.
func Reconstruct(steps []domain.StepRecord) *domain.OrchestrationTrace {
	grouped := groupTools(steps)

	indices := make([]int, 0, len(grouped))
	for index := range grouped {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	trace := &domain.OrchestrationTrace{
		Strategy:        domain.StrategySerial,
		ExecutionGroups: make([]domain.ExecutionGroup, 0, len(indices)),
	}

	seen := make(map[string]bool)
	for _, index := range indices {
		tools := grouped[index]
		for i := range tools {
			tools[i].DependencyGroups = dependencyGroups(tools[i], index, indices, grouped)
		}
		group := domain.ExecutionGroup{
			GroupIndex:        index,
			Tools:             tools,
			ParallelExecution: len(tools) > 1,
		}
		if group.ParallelExecution {
			trace.Strategy = domain.StrategyDAG
		}
		trace.ExecutionGroups = append(trace.ExecutionGroups, group)

		for _, tool := range tools {
			if !seen[tool.ToolID] {
				seen[tool.ToolID] = true
				trace.ToolIDs = append(trace.ToolIDs, tool.ToolID)
			}
		}
	}

	trace.TotalGroups = len(trace.ExecutionGroups)
	trace.TotalTools = len(trace.ToolIDs)
	return trace
}

// groupTools folds the step list into a map of group index to tools,
// preserving encounter order within each group. Records without
// orchestration metadata or without a tool_id do not participate.
func groupTools(steps []domain.StepRecord) map[int][]domain.Tool {
	grouped := make(map[int][]domain.Tool)
	for _, step := range steps {
		meta := step.Orchestration
		if meta == nil || meta.ToolID == "" {
			continue
		}
		grouped[meta.GroupIndex] = append(grouped[meta.GroupIndex], domain.Tool{
			ToolID:        meta.ToolID,
			ToolType:      meta.ToolType,
			DependsOn:     meta.DependsOn,
			OutputMapping: meta.OutputMapping,
		})
	}
	return grouped
}

// dependencyGroups resolves each depends_on entry to the first group, scanned
// in ascending index order, that schedules a tool with that ID. Only groups
// strictly before the tool's own group are eligible, so a forward or self
// reference can never be recorded. Duplicate hits collapse to one entry.
func dependencyGroups(tool domain.Tool, ownIndex int, indices []int, grouped map[int][]domain.Tool) []int {
	var groups []int
	recorded := make(map[int]bool)

	for _, dep := range tool.DependsOn {
		for _, candidate := range indices {
			if candidate >= ownIndex {
				break
			}
			if !containsTool(grouped[candidate], dep) {
				continue
			}
			// First group found wins; later groups that also schedule the
			// same tool ID are ignored.
			if !recorded[candidate] {
				recorded[candidate] = true
				groups = append(groups, candidate)
			}
			break
		}
	}

	sort.Ints(groups)
	return groups
}

func containsTool(tools []domain.Tool, id string) bool {
	for _, tool := range tools {
		if tool.ToolID == id {
			return true
		}
	}
	return false
}
