package differ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verticelabs/tracediff/internal/differ"
	"github.com/verticelabs/tracediff/internal/testutils"
	"github.com/verticelabs/tracediff/pkg/domain"
)

func compareDocs(t *testing.T, before, after string) *domain.TraceDiff {
	t.Helper()
	engine := differ.New(differ.Config{})
	return engine.Compare(testutils.Document(t, before), testutils.Document(t, after))
}

func TestAppliedAssets_VersionBump(t *testing.T) {
	diff := compareDocs(t,
		`{"applied_assets": {"prompt": {"asset_id": "p1", "version": 1}}}`,
		`{"applied_assets": {"prompt": {"asset_id": "p1", "version": 2}}}`,
	)

	prompt := diff.AppliedAssets.Prompt
	assert.Equal(t, domain.ChangeModified, prompt.ChangeType)
	require.Contains(t, prompt.Changes, "version")
	assert.Equal(t, float64(1), prompt.Changes["version"].Before)
	assert.Equal(t, float64(2), prompt.Changes["version"].After)
}

func TestAppliedAssets_AddedRemovedAbsent(t *testing.T) {
	diff := compareDocs(t,
		`{"applied_assets": {"policy": {"asset_id": "pol", "version": 1}}}`,
		`{"applied_assets": {"mapping": {"asset_id": "m", "version": 1}}}`,
	)

	assert.Equal(t, domain.ChangeUnchanged, diff.AppliedAssets.Prompt.ChangeType, "absent on both sides")
	assert.Equal(t, domain.ChangeRemoved, diff.AppliedAssets.Policy.ChangeType)
	assert.Equal(t, domain.ChangeAdded, diff.AppliedAssets.Mapping.ChangeType)
	require.NotNil(t, diff.AppliedAssets.Mapping.After)
	assert.Equal(t, "m@1", diff.AppliedAssets.Mapping.After.IdentityKey())
}

// Only version, name and source surface in the change map. Other fields may
// differ without being reported; that narrowing is part of the contract.
func TestAppliedAssets_ChangeNarrowing(t *testing.T) {
	diff := compareDocs(t,
		`{"applied_assets": {"prompt": {"asset_id": "p1", "version": 1, "source": "repo", "owner": "alice"}}}`,
		`{"applied_assets": {"prompt": {"asset_id": "p1", "version": 2, "source": "s3", "owner": "bob"}}}`,
	)

	changes := diff.AppliedAssets.Prompt.Changes
	assert.Contains(t, changes, "version")
	assert.Contains(t, changes, "source")
	assert.NotContains(t, changes, "owner")
	assert.NotContains(t, changes, "asset_id")
}

func TestAppliedAssets_SameIdentityKeyIsUnchanged(t *testing.T) {
	// Identity key is "{asset_id or name}@{version or ?}": a source change
	// alone does not flip the asset to modified.
	diff := compareDocs(t,
		`{"applied_assets": {"prompt": {"asset_id": "p1", "version": 1, "source": "repo"}}}`,
		`{"applied_assets": {"prompt": {"asset_id": "p1", "version": 1, "source": "s3"}}}`,
	)
	assert.Equal(t, domain.ChangeUnchanged, diff.AppliedAssets.Prompt.ChangeType)
}

func TestAppliedAssets_Queries(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   domain.ChangeType
	}{
		{
			name:   "both empty",
			before: `{}`,
			after:  `{}`,
			want:   domain.ChangeUnchanged,
		},
		{
			name:   "added",
			before: `{}`,
			after:  `{"applied_assets": {"queries": [{"name": "q"}]}}`,
			want:   domain.ChangeAdded,
		},
		{
			name:   "removed",
			before: `{"applied_assets": {"queries": [{"name": "q"}]}}`,
			after:  `{}`,
			want:   domain.ChangeRemoved,
		},
		{
			name:   "same names",
			before: `{"applied_assets": {"queries": [{"name": "a"}, {"name": "b"}]}}`,
			after:  `{"applied_assets": {"queries": [{"name": "a"}, {"name": "b"}]}}`,
			want:   domain.ChangeUnchanged,
		},
		{
			// Reordering is indistinguishable from a content change at this
			// level: both report as one opaque modification.
			name:   "reordered",
			before: `{"applied_assets": {"queries": [{"name": "a"}, {"name": "b"}]}}`,
			after:  `{"applied_assets": {"queries": [{"name": "b"}, {"name": "a"}]}}`,
			want:   domain.ChangeModified,
		},
		{
			name:   "fallback to asset_id then placeholder",
			before: `{"applied_assets": {"queries": [{"asset_id": "q1"}, {}]}}`,
			after:  `{"applied_assets": {"queries": [{"asset_id": "q1"}, {}]}}`,
			want:   domain.ChangeUnchanged,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diff := compareDocs(t, tc.before, tc.after)
			assert.Equal(t, tc.want, diff.AppliedAssets.Queries.ChangeType)
		})
	}
}

func TestPlan_ShallowCompare(t *testing.T) {
	diff := compareDocs(t,
		`{"plan_raw": {"goal": "x", "nested": {"a": 1}}, "plan_validated": {"ok": true}}`,
		`{"plan_raw": {"goal": "x", "nested": {"a": 2}}, "plan_validated": {"ok": true}}`,
	)

	assert.Equal(t, domain.PlanModified, diff.Plan.Status)
	// The nested difference surfaces as one whole-value change on the
	// parent key, never as an expanded path.
	require.Contains(t, diff.Plan.RawChanges, "nested")
	assert.NotContains(t, diff.Plan.RawChanges, "nested.a")
	assert.NotContains(t, diff.Plan.RawChanges, "goal")
	assert.Empty(t, diff.Plan.ValidatedChanges)
}

func TestPlan_SameStatus(t *testing.T) {
	diff := compareDocs(t, `{"plan_raw": {"a": 1}}`, `{"plan_raw": {"a": 1}}`)
	assert.Equal(t, domain.PlanSame, diff.Plan.Status)
}
