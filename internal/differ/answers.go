package differ

import (
	"sort"

	"github.com/verticelabs/tracediff/pkg/domain"
)

// compareAnswerBlocks matches answer blocks with a positional+typed
// heuristic: a block can only pair with a same-typed block at the same index
// or one position away, which tolerates a single insertion or deletion
// without losing the match. Matching is greedy left-to-right over the after
// list; each before block can be claimed once.
//
// The result is re-sorted by index. Removed and matched blocks carry their
// before-list index, added blocks their after-list index, so when the lists
// have different lengths the ordering interleaves two index spaces. That
// ambiguity is inherited from the upstream report format on purpose.
func (e *Engine) compareAnswerBlocks(before, after []domain.AnswerBlock) domain.AnswerBlocksDiff {
	var blocks []domain.AnswerBlockChange

	matched := make([]bool, len(before))
	for afterIndex, afterBlock := range after {
		matchIndex := -1
		for beforeIndex, beforeBlock := range before {
			if matched[beforeIndex] {
				continue
			}
			if beforeBlock.Type != afterBlock.Type {
				continue
			}
			if distance(beforeIndex, afterIndex) > 1 {
				continue
			}
			matchIndex = beforeIndex
			break
		}

		if matchIndex < 0 {
			blocks = append(blocks, domain.AnswerBlockChange{
				Index:      afterIndex,
				Type:       afterBlock.Type,
				Title:      afterBlock.Title,
				ChangeType: domain.ChangeAdded,
			})
			continue
		}
		matched[matchIndex] = true

		change := domain.AnswerBlockChange{
			Index:      matchIndex,
			Type:       afterBlock.Type,
			Title:      afterBlock.Title,
			ChangeType: domain.ChangeUnchanged,
		}
		if changes := structuralChanges(before[matchIndex].Raw, afterBlock.Raw); changes != nil {
			change.ChangeType = domain.ChangeModified
			change.Changes = changes
		}
		blocks = append(blocks, change)
	}

	for beforeIndex, beforeBlock := range before {
		if !matched[beforeIndex] {
			blocks = append(blocks, domain.AnswerBlockChange{
				Index:      beforeIndex,
				Type:       beforeBlock.Type,
				Title:      beforeBlock.Title,
				ChangeType: domain.ChangeRemoved,
			})
		}
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Index < blocks[j].Index
	})

	return domain.AnswerBlocksDiff{Blocks: blocks}
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
