/*
Package tracediff compares hierarchical execution-trace snapshots and
reconstructs execution topology from flat step metadata.

It is a pure, stateless library: a comparison decomposes two trace documents
into six sections (applied assets, plan, tool calls, references, answer
blocks, rendered UI), diffs each with a section-specific strategy, and
aggregates the results into one report. Topology reconstruction independently
rebuilds a serial/dag execution plan from per-step orchestration metadata.

Both operations are total functions over loosely-typed JSON documents:
malformed or missing data degrades to safe defaults and no input ever
produces an error. Sensitive request fields (passwords, tokens, keys) are
masked in every human-readable summary.

# Usage

	before, _ := tracediff.LoadDocument("before.json")
	after, _ := tracediff.LoadDocument("after.json")

	diff := tracediff.Compare(before, after)
	if diff.HasChanges() {
		fmt.Println(diff.Summary.SectionsWithChanges)
	}

	plan := tracediff.Reconstruct(after.Steps)
	fmt.Println(plan.Strategy, plan.TotalGroups)

A Differ can be configured with functional options (extra mask keys, preview
length, logger, metrics collector); the package-level functions use a default
Differ with library defaults.
*/
package tracediff
