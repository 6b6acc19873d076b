// Package graph renders reconstructed execution plans as Mermaid diagrams
// for terminal output and docs embedding.
package graph

import (
	"fmt"
	"strings"

	"github.com/verticelabs/tracediff/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (graph TD) from a
// reconstructed plan:
//   - one subgraph per execution group, labelled with its index and marked
//     when it runs in parallel;
//   - tool nodes as [[Subroutine]] shapes, labelled "id (type)";
//   - dotted arrows from each resolved dependency group to the dependent
//     tool.
func GenerateMermaid(trace *domain.OrchestrationTrace) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if trace == nil || len(trace.ExecutionGroups) == 0 {
		sb.WriteString("    empty[\"(no orchestration metadata)\"]\n")
		return sb.String()
	}

	for _, group := range trace.ExecutionGroups {
		label := fmt.Sprintf("Group %d", group.GroupIndex)
		if group.ParallelExecution {
			label += " (parallel)"
		}
		sb.WriteString(fmt.Sprintf("    subgraph g%d[\"%s\"]\n", group.GroupIndex, label))
		for _, tool := range group.Tools {
			safeID := sanitizeMermaidID(tool.ToolID)
			sb.WriteString(fmt.Sprintf("        %s[[\"%s (%s)\"]]\n", safeID, tool.ToolID, tool.ToolType))
		}
		sb.WriteString("    end\n")
	}

	// Dependency edges. Arrows point from the earlier group's tool to the
	// dependent tool; unresolved depends_on entries draw no edge.
	for _, group := range trace.ExecutionGroups {
		for _, tool := range group.Tools {
			safeID := sanitizeMermaidID(tool.ToolID)
			for _, dep := range tool.DependsOn {
				if !trace.HasTool(dep) {
					continue
				}
				sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", sanitizeMermaidID(dep), safeID))
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\n    %%%% strategy: %s, %d tools in %d groups\n",
		trace.Strategy, trace.TotalTools, trace.TotalGroups))

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
