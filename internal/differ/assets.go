package differ

import (
	"github.com/verticelabs/tracediff/pkg/domain"
)

// compareAppliedAssets covers the four compared sub-items: the three single
// asset slots plus the query list. Screens travel in trace documents but are
// not part of this report.
func (e *Engine) compareAppliedAssets(before, after domain.AppliedAssets) domain.AppliedAssetsDiff {
	return domain.AppliedAssetsDiff{
		Prompt:  compareAsset(before.Prompt, after.Prompt),
		Policy:  compareAsset(before.Policy, after.Policy),
		Mapping: compareAsset(before.Mapping, after.Mapping),
		Queries: compareQueries(before.Queries, after.Queries),
	}
}

// compareAsset compares one optional asset slot. Two present assets are
// considered the same revision when their identity keys match; when they
// differ, only version, name and source surface in the change map; other
// fields are deliberately not reported even if they changed.
func compareAsset(before, after *domain.AssetRef) domain.DiffItem[domain.AssetRef] {
	switch {
	case before == nil && after == nil:
		return domain.DiffItem[domain.AssetRef]{ChangeType: domain.ChangeUnchanged}
	case before == nil:
		return domain.DiffItem[domain.AssetRef]{ChangeType: domain.ChangeAdded, After: after}
	case after == nil:
		return domain.DiffItem[domain.AssetRef]{ChangeType: domain.ChangeRemoved, Before: before}
	}

	if before.IdentityKey() == after.IdentityKey() {
		return domain.DiffItem[domain.AssetRef]{ChangeType: domain.ChangeUnchanged, Before: before, After: after}
	}

	changes := make(map[string]domain.FieldChange)
	if canon(before.Version) != canon(after.Version) {
		changes["version"] = domain.FieldChange{Before: before.Version, After: after.Version}
	}
	if before.Name != after.Name {
		changes["name"] = domain.FieldChange{Before: before.Name, After: after.Name}
	}
	if before.Source != after.Source {
		changes["source"] = domain.FieldChange{Before: before.Source, After: after.Source}
	}

	return domain.DiffItem[domain.AssetRef]{
		ChangeType: domain.ChangeModified,
		Before:     before,
		After:      after,
		Changes:    changes,
	}
}

// compareQueries compares the applied query lists via their ordered display
// names. Any difference at all, content or pure reordering, reports as one
// modified entry with no finer-grained sub-diff.
func compareQueries(before, after []domain.AssetRef) domain.QueriesDiff {
	switch {
	case len(before) == 0 && len(after) == 0:
		return domain.QueriesDiff{ChangeType: domain.ChangeUnchanged}
	case len(before) == 0:
		return domain.QueriesDiff{ChangeType: domain.ChangeAdded, After: assetNames(after)}
	case len(after) == 0:
		return domain.QueriesDiff{ChangeType: domain.ChangeRemoved, Before: assetNames(before)}
	}

	beforeNames := assetNames(before)
	afterNames := assetNames(after)
	if canon(beforeNames) == canon(afterNames) {
		return domain.QueriesDiff{ChangeType: domain.ChangeUnchanged, Before: beforeNames, After: afterNames}
	}
	return domain.QueriesDiff{ChangeType: domain.ChangeModified, Before: beforeNames, After: afterNames}
}

func assetNames(refs []domain.AssetRef) []string {
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.DisplayName()
	}
	return names
}
