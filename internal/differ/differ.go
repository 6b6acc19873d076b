// Package differ computes structured diffs between two trace documents.
//
// Each of the six sections is compared independently with its own matching
// strategy, then the results are aggregated into one TraceDiff. Every
// comparison is a pure, total function: malformed or missing data compares
// as absent/unchanged, and identical documents always produce a report with
// zero changes.
package differ

import (
	"log/slog"

	"github.com/verticelabs/tracediff/internal/logging"
	"github.com/verticelabs/tracediff/pkg/domain"
)

// Config tunes an Engine. The zero value is usable: built-in sensitive keys,
// a 50-character request preview and a silent logger.
type Config struct {
	// ExtraSensitiveKeys extends the built-in mask list. The built-ins can
	// never be removed.
	ExtraSensitiveKeys []string
	// PreviewLength caps the serialized request preview in summaries and the
	// request portion of tool-call matching signatures.
	PreviewLength int
	Logger        *slog.Logger
}

const defaultPreviewLength = 50

// Engine compares trace documents. It carries no mutable state, so a single
// Engine may be shared across goroutines.
type Engine struct {
	sensitiveKeys []string
	previewLen    int
	logger        *slog.Logger
}

// New builds an Engine from cfg.
func New(cfg Config) *Engine {
	keys := make([]string, 0, len(defaultSensitiveKeys)+len(cfg.ExtraSensitiveKeys))
	keys = append(keys, defaultSensitiveKeys...)
	keys = append(keys, cfg.ExtraSensitiveKeys...)

	previewLen := cfg.PreviewLength
	if previewLen <= 0 {
		previewLen = defaultPreviewLength
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Engine{
		sensitiveKeys: keys,
		previewLen:    previewLen,
		logger:        logger,
	}
}

// Compare produces the full report for a before/after pair of documents.
// Nil documents compare as empty ones.
func (e *Engine) Compare(before, after *domain.TraceDocument) *domain.TraceDiff {
	if before == nil {
		before = &domain.TraceDocument{}
	}
	if after == nil {
		after = &domain.TraceDocument{}
	}

	diff := &domain.TraceDiff{
		AppliedAssets: e.compareAppliedAssets(before.AppliedAssets, after.AppliedAssets),
		Plan:          e.comparePlan(before, after),
		ToolCalls:     e.compareToolCalls(before.Steps, after.Steps),
		References:    e.compareReferences(before.References, after.References),
		AnswerBlocks:  e.compareAnswerBlocks(before.Answer.Blocks, after.Answer.Blocks),
		UIRender:      e.compareUIRender(before.UIRender.RenderedBlocks, after.UIRender.RenderedBlocks),
	}
	diff.Summary = summarize(diff)

	e.logger.Debug("trace comparison complete",
		"total_changes", diff.Summary.TotalChanges,
		"sections", diff.Summary.SectionsWithChanges)

	return diff
}

// summarize aggregates per-section change counts. Sections contribute
// independently, and the section name list preserves the fixed evaluation
// order: Applied Assets, Plan, Tool Calls, References, Answer Blocks,
// UI Render.
func summarize(diff *domain.TraceDiff) domain.Summary {
	summary := domain.Summary{SectionsWithChanges: []string{}}

	record := func(section string, count int) {
		if count == 0 {
			return
		}
		summary.TotalChanges += count
		summary.SectionsWithChanges = append(summary.SectionsWithChanges, section)
	}

	record(domain.SectionAppliedAssets, countAssetChanges(diff.AppliedAssets))
	record(domain.SectionPlan, countPlanChanges(diff.Plan))
	record(domain.SectionToolCalls,
		len(diff.ToolCalls.Added)+len(diff.ToolCalls.Removed)+len(diff.ToolCalls.Modified))
	record(domain.SectionReferences, countReferenceChanges(diff.References))
	record(domain.SectionAnswerBlocks, countAnswerChanges(diff.AnswerBlocks))
	record(domain.SectionUIRender, len(diff.UIRender.Changes))

	return summary
}

func countAssetChanges(diff domain.AppliedAssetsDiff) int {
	count := 0
	for _, changeType := range []domain.ChangeType{
		diff.Prompt.ChangeType,
		diff.Policy.ChangeType,
		diff.Mapping.ChangeType,
		diff.Queries.ChangeType,
	} {
		if changeType != domain.ChangeUnchanged {
			count++
		}
	}
	return count
}

func countPlanChanges(diff domain.PlanDiff) int {
	count := 0
	if len(diff.RawChanges) > 0 {
		count++
	}
	if len(diff.ValidatedChanges) > 0 {
		count++
	}
	return count
}

func countReferenceChanges(diff domain.ReferencesDiff) int {
	count := 0
	for _, change := range diff.ByType {
		count += len(change.Added) + len(change.Removed)
	}
	return count
}

func countAnswerChanges(diff domain.AnswerBlocksDiff) int {
	count := 0
	for _, block := range diff.Blocks {
		if block.ChangeType != domain.ChangeUnchanged {
			count++
		}
	}
	return count
}
