package cli

import (
	"fmt"
	"io"

	"github.com/verticelabs/tracediff"
	"github.com/verticelabs/tracediff/internal/presentation/graph"
)

// RunGraph reconstructs the execution topology of one trace file and writes
// it as a Mermaid flowchart.
func RunGraph(out io.Writer, path string) error {
	doc, err := tracediff.LoadDocument(path)
	if err != nil {
		return err
	}

	trace := tracediff.Reconstruct(doc.Steps)
	fmt.Fprint(out, graph.GenerateMermaid(trace))
	return nil
}
