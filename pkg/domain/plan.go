package domain

// Strategy is the overall shape of a reconstructed plan.
type Strategy string

const (
	StrategySerial   Strategy = "serial"
	StrategyParallel Strategy = "parallel"
	StrategyDAG      Strategy = "dag"
)

// Tool is one scheduled unit of work inside an execution plan.
type Tool struct {
	ToolID   string   `json:"tool_id"`
	ToolType string   `json:"tool_type"`
	// DependsOn lists tool IDs that must complete before this one runs.
	DependsOn []string `json:"depends_on,omitempty"`
	// DependencyGroups holds the indices of earlier groups that contain a
	// dependency of this tool. Every entry is strictly less than the owning
	// group's index.
	DependencyGroups []int             `json:"dependency_groups,omitempty"`
	OutputMapping    map[string]string `json:"output_mapping,omitempty"`
}

// ExecutionGroup is one ordered stage of the plan. Tools keep their encounter
// order from the source step list.
type ExecutionGroup struct {
	GroupIndex        int    `json:"group_index"`
	Tools             []Tool `json:"tools"`
	ParallelExecution bool   `json:"parallel_execution"`
}

// OrchestrationTrace is a reconstructed execution plan. It is built once per
// reconstruction call and never mutated afterwards.
//
// Strategy is inferred: it starts at serial and latches to dag the first time
// any group holds more than one tool. The reconstruction path never emits
// parallel; that value only appears in plans authored upstream as first-class
// trace documents.
type OrchestrationTrace struct {
	Strategy        Strategy         `json:"strategy"`
	ExecutionGroups []ExecutionGroup `json:"execution_groups"`
	TotalGroups     int              `json:"total_groups"`
	// TotalTools counts distinct tool IDs, not records: the same tool ID
	// scheduled in two groups counts once.
	TotalTools int      `json:"total_tools"`
	ToolIDs    []string `json:"tool_ids"`
}

// HasTool reports whether the plan schedules the given tool ID anywhere.
func (t *OrchestrationTrace) HasTool(id string) bool {
	for _, existing := range t.ToolIDs {
		if existing == id {
			return true
		}
	}
	return false
}
