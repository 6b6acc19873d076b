package tracediff

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/verticelabs/tracediff/internal/decode"
	"github.com/verticelabs/tracediff/internal/differ"
	"github.com/verticelabs/tracediff/internal/topology"
	"github.com/verticelabs/tracediff/pkg/domain"
	"github.com/verticelabs/tracediff/pkg/observability"
)

// Differ is the high-level entry point for the library. It wraps the internal
// comparison engine and provides a simplified API for consumers. A Differ is
// immutable after construction and safe for concurrent use.
type Differ struct {
	engine    *differ.Engine
	collector observability.Collector
}

// Option defines a functional option for configuring a Differ.
type Option func(*config)

type config struct {
	extraSensitiveKeys []string
	previewLength      int
	logger             *slog.Logger
	collector          observability.Collector
}

// WithSensitiveKeys extends the built-in mask list (password, token, secret,
// api_key, auth, credential). Built-in keys can never be removed.
func WithSensitiveKeys(keys ...string) Option {
	return func(c *config) {
		c.extraSensitiveKeys = append(c.extraSensitiveKeys, keys...)
	}
}

// WithPreviewLength caps the serialized request preview used in tool-call
// summaries and matching signatures (default 50).
func WithPreviewLength(n int) Option {
	return func(c *config) {
		c.previewLength = n
	}
}

// WithLogger sets a custom structured logger. The default logger discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithCollector registers an observability collector that is notified after
// each comparison and reconstruction.
func WithCollector(collector observability.Collector) Option {
	return func(c *config) {
		c.collector = collector
	}
}

// New builds a Differ.
func New(opts ...Option) *Differ {
	cfg := &config{collector: observability.Nop{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Differ{
		engine: differ.New(differ.Config{
			ExtraSensitiveKeys: cfg.extraSensitiveKeys,
			PreviewLength:      cfg.previewLength,
			Logger:             cfg.logger,
		}),
		collector: cfg.collector,
	}
}

// Compare produces the full section-by-section report for a before/after
// pair of decoded documents. Nil documents compare as empty ones.
func (d *Differ) Compare(before, after *domain.TraceDocument) *domain.TraceDiff {
	diff := d.engine.Compare(before, after)
	d.collector.CompareObserved(diff.Summary.TotalChanges, diff.Summary.SectionsWithChanges)
	return diff
}

// CompareRaw decodes two untyped JSON documents and compares them.
func (d *Differ) CompareRaw(before, after map[string]any) *domain.TraceDiff {
	return d.Compare(decode.Document(before), decode.Document(after))
}

// Reconstruct rebuilds a grouped execution plan from decoded step records.
func (d *Differ) Reconstruct(steps []domain.StepRecord) *domain.OrchestrationTrace {
	trace := topology.Reconstruct(steps)
	d.collector.ReconstructObserved(string(trace.Strategy), trace.TotalGroups, trace.TotalTools)
	return trace
}

// ReconstructRaw decodes a raw step list and rebuilds its execution plan.
func (d *Differ) ReconstructRaw(steps []any) *domain.OrchestrationTrace {
	return d.Reconstruct(decode.Steps(steps))
}

// defaultDiffer backs the package-level convenience functions.
var defaultDiffer = New()

// Compare runs the default Differ on two decoded documents.
func Compare(before, after *domain.TraceDocument) *domain.TraceDiff {
	return defaultDiffer.Compare(before, after)
}

// CompareRaw runs the default Differ on two untyped documents.
func CompareRaw(before, after map[string]any) *domain.TraceDiff {
	return defaultDiffer.CompareRaw(before, after)
}

// Reconstruct rebuilds an execution plan with the default Differ.
func Reconstruct(steps []domain.StepRecord) *domain.OrchestrationTrace {
	return defaultDiffer.Reconstruct(steps)
}

// ReconstructRaw rebuilds an execution plan from raw step records.
func ReconstructRaw(steps []any) *domain.OrchestrationTrace {
	return defaultDiffer.ReconstructRaw(steps)
}

// Decode turns an untyped JSON document into a typed, default-filled one.
// It never fails; malformed fields degrade to defaults.
func Decode(raw map[string]any) *domain.TraceDocument {
	return decode.Document(raw)
}

// LoadDocument reads and decodes a trace document from a JSON file. This is
// an edge helper for CLIs and tests; it is the only place file or parse
// errors can occur.
func LoadDocument(path string) (*domain.TraceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace document: %w", err)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing trace document %s: %w", path, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotAnObject)
	}
	return decode.Document(obj), nil
}
