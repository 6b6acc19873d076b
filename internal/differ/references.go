package differ

import (
	"github.com/verticelabs/tracediff/pkg/domain"
)

// compareReferences groups both reference lists by ref_type and, for every
// type seen on either side, reports the names present only after (added) and
// only before (removed). Membership is by value: order and duplicate counts
// are not distinguished. Types with no changes are omitted from the result.
func (e *Engine) compareReferences(before, after []domain.Reference) domain.ReferencesDiff {
	beforeByType := groupReferenceNames(before)
	afterByType := groupReferenceNames(after)

	byType := make(map[string]domain.ReferenceSetChange)
	for _, refType := range typeUnion(beforeByType, afterByType) {
		change := domain.ReferenceSetChange{
			Added:   missingFrom(afterByType[refType], beforeByType[refType]),
			Removed: missingFrom(beforeByType[refType], afterByType[refType]),
		}
		if len(change.Added) > 0 || len(change.Removed) > 0 {
			byType[refType] = change
		}
	}

	if len(byType) == 0 {
		return domain.ReferencesDiff{}
	}
	return domain.ReferencesDiff{ByType: byType}
}

func groupReferenceNames(refs []domain.Reference) map[string][]string {
	grouped := make(map[string][]string)
	for _, ref := range refs {
		grouped[ref.RefType] = append(grouped[ref.RefType], ref.DisplayName())
	}
	return grouped
}

// typeUnion lists every ref type seen on either side, before-side types
// first, then after-only types, each in encounter order of the grouped maps'
// insertion. Map iteration order does not matter for the result shape since
// the output is itself a map keyed by type.
func typeUnion(before, after map[string][]string) []string {
	var types []string
	seen := make(map[string]bool)
	for refType := range before {
		if !seen[refType] {
			seen[refType] = true
			types = append(types, refType)
		}
	}
	for refType := range after {
		if !seen[refType] {
			seen[refType] = true
			types = append(types, refType)
		}
	}
	return types
}

// missingFrom returns the entries of list that do not occur anywhere in
// other. Set difference by value: duplicates collapse to one entry.
func missingFrom(list, other []string) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, name := range list {
		if !seen[name] && !containsString(other, name) {
			seen[name] = true
			missing = append(missing, name)
		}
	}
	return missing
}

func containsString(list []string, s string) bool {
	for _, entry := range list {
		if entry == s {
			return true
		}
	}
	return false
}
