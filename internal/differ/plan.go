package differ

import (
	"github.com/verticelabs/tracediff/pkg/domain"
)

// comparePlan runs the shallow structural compare over plan_raw and
// plan_validated independently. Status says "same" rather than "unchanged";
// this section kept its original vocabulary and consumers depend on it.
func (e *Engine) comparePlan(before, after *domain.TraceDocument) domain.PlanDiff {
	diff := domain.PlanDiff{
		Status:           domain.PlanSame,
		RawChanges:       structuralChanges(before.PlanRaw, after.PlanRaw),
		ValidatedChanges: structuralChanges(before.PlanValidated, after.PlanValidated),
	}
	if len(diff.RawChanges) > 0 || len(diff.ValidatedChanges) > 0 {
		diff.Status = domain.PlanModified
	}
	return diff
}
