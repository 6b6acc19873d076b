package domain

// TraceDocument is the fully-typed, default-filled view of one recorded
// execution. It is produced once at the decode boundary; missing sections
// decode to empty values so the comparators never need nil-checks.
type TraceDocument struct {
	AppliedAssets AppliedAssets  `json:"applied_assets"`
	PlanRaw       map[string]any `json:"plan_raw,omitempty"`
	PlanValidated map[string]any `json:"plan_validated,omitempty"`
	Steps         []StepRecord   `json:"execution_steps,omitempty"`
	References    []Reference    `json:"references,omitempty"`
	Answer        Answer         `json:"answer"`
	UIRender      UIRender       `json:"ui_render"`
}

// AppliedAssets holds the configuration artifacts bound into an execution.
// Prompt, policy and mapping are single optional records; queries and screens
// are lists.
type AppliedAssets struct {
	Prompt  *AssetRef  `json:"prompt,omitempty"`
	Policy  *AssetRef  `json:"policy,omitempty"`
	Mapping *AssetRef  `json:"mapping,omitempty"`
	Queries []AssetRef `json:"queries,omitempty"`
	Screens []AssetRef `json:"screens,omitempty"`
}

// AssetRef identifies one applied asset. Version is kept as-is (number or
// string in the wire format).
type AssetRef struct {
	AssetID string         `json:"asset_id,omitempty" mapstructure:"asset_id"`
	Name    string         `json:"name,omitempty" mapstructure:"name"`
	Version any            `json:"version,omitempty" mapstructure:"version"`
	Source  string         `json:"source,omitempty" mapstructure:"source"`
	Raw     map[string]any `json:"-" mapstructure:"-"`
}

// IdentityKey builds the comparison key for an asset: "{asset_id or name}@{version or ?}".
// Two assets with the same key are considered the same revision.
func (a AssetRef) IdentityKey() string {
	id := a.AssetID
	if id == "" {
		id = a.Name
	}
	version := "?"
	if a.Version != nil {
		version = Stringify(a.Version)
	}
	return id + "@" + version
}

// DisplayName returns the human-readable label for the asset ("?" if it has none).
func (a AssetRef) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.AssetID != "" {
		return a.AssetID
	}
	return "?"
}

// StepRecord is one tool call inside execution_steps. Raw keeps the original
// key/value map for shallow structural comparison of matched records.
type StepRecord struct {
	ToolName      string             `json:"tool_name,omitempty"`
	StepID        string             `json:"step_id,omitempty"`
	Request       any                `json:"request,omitempty"`
	Response      any                `json:"response,omitempty"`
	DurationMS    float64            `json:"duration_ms,omitempty"`
	Status        string             `json:"status,omitempty"`
	Orchestration *OrchestrationMeta `json:"orchestration,omitempty"`
	Raw           map[string]any     `json:"-"`
}

// Name returns the tool name with step_id as fallback ("?" if both are empty).
func (s StepRecord) Name() string {
	if s.ToolName != "" {
		return s.ToolName
	}
	if s.StepID != "" {
		return s.StepID
	}
	return "?"
}

// OrchestrationMeta is the scheduling annotation a step may carry. Records
// without it are ignored by the topology reconstructor.
type OrchestrationMeta struct {
	GroupIndex    int               `json:"group_index"`
	ToolID        string            `json:"tool_id"`
	ToolType      string            `json:"tool_type"`
	DependsOn     []string          `json:"depends_on,omitempty"`
	OutputMapping map[string]string `json:"output_mapping,omitempty"`
}

// Reference is one citation/source attached to a trace.
type Reference struct {
	RefType   string         `json:"ref_type,omitempty"`
	Name      string         `json:"name,omitempty"`
	Statement string         `json:"statement,omitempty"`
	Raw       map[string]any `json:"-"`
}

// DisplayName returns name, falling back to statement, then "?".
func (r Reference) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Statement != "" {
		return r.Statement
	}
	return "?"
}

// Answer is the final answer section of a trace.
type Answer struct {
	Blocks []AnswerBlock `json:"blocks,omitempty"`
}

// AnswerBlock is one typed block of the answer.
type AnswerBlock struct {
	Type  string         `json:"type,omitempty"`
	Title string         `json:"title,omitempty"`
	Raw   map[string]any `json:"-"`
}

// UIRender is the rendered-output section of a trace.
type UIRender struct {
	RenderedBlocks []RenderedBlock `json:"rendered_blocks,omitempty"`
}

// RenderedBlock is one rendered UI block. OK is false both for an explicit
// render failure and for a record that carries no ok flag at all, matching
// the loose truthiness of the wire format.
type RenderedBlock struct {
	BlockType     string         `json:"block_type,omitempty"`
	ComponentName string         `json:"component_name,omitempty"`
	OK            bool           `json:"ok"`
	Error         string         `json:"error,omitempty"`
	Raw           map[string]any `json:"-"`
}
