package differ

import (
	"github.com/verticelabs/tracediff/pkg/domain"
)

// compareUIRender compares rendered blocks purely by position; no signature
// or type matching. An index present on one side only is added/removed; an
// index present on both sides with differing fields is modified; identical
// positions are filtered out entirely. Error counts (blocks without a true
// ok flag) are reported independently of the per-index changes.
func (e *Engine) compareUIRender(before, after []domain.RenderedBlock) domain.UIRenderDiff {
	diff := domain.UIRenderDiff{
		ErrorCountBefore: countRenderErrors(before),
		ErrorCountAfter:  countRenderErrors(after),
	}

	longest := len(before)
	if len(after) > longest {
		longest = len(after)
	}

	for i := 0; i < longest; i++ {
		switch {
		case i >= len(before):
			diff.Changes = append(diff.Changes, domain.RenderedBlockChange{
				Index:      i,
				BlockType:  after[i].BlockType,
				Component:  after[i].ComponentName,
				ChangeType: domain.ChangeAdded,
			})
		case i >= len(after):
			diff.Changes = append(diff.Changes, domain.RenderedBlockChange{
				Index:      i,
				BlockType:  before[i].BlockType,
				Component:  before[i].ComponentName,
				ChangeType: domain.ChangeRemoved,
			})
		default:
			changes := structuralChanges(before[i].Raw, after[i].Raw)
			if changes == nil {
				continue
			}
			diff.Changes = append(diff.Changes, domain.RenderedBlockChange{
				Index:      i,
				BlockType:  after[i].BlockType,
				Component:  after[i].ComponentName,
				ChangeType: domain.ChangeModified,
				Changes:    changes,
			})
		}
	}

	return diff
}

func countRenderErrors(blocks []domain.RenderedBlock) int {
	count := 0
	for _, block := range blocks {
		if !block.OK {
			count++
		}
	}
	return count
}
