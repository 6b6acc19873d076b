package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/verticelabs/tracediff"
	"github.com/verticelabs/tracediff/internal/logging"
	"github.com/verticelabs/tracediff/internal/presentation/report"
)

// DiffOptions configures the diff command.
type DiffOptions struct {
	BeforePath string
	AfterPath  string
	JSON       bool
	Plain      bool
	Verbose    bool
	Config     Config
}

// RunDiff compares two trace files and writes the report to out. The
// returned code follows scripting conventions: 0 when the traces are
// identical, 1 when changes were found. Load/parse failures return an error
// and the caller exits 2.
func RunDiff(out io.Writer, opts DiffOptions) (int, error) {
	before, err := tracediff.LoadDocument(opts.BeforePath)
	if err != nil {
		return 0, err
	}
	after, err := tracediff.LoadDocument(opts.AfterPath)
	if err != nil {
		return 0, err
	}

	differ := newDiffer(opts.Config, opts.Verbose)
	diff := differ.Compare(before, after)

	if opts.JSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(diff); err != nil {
			return 0, fmt.Errorf("encoding diff: %w", err)
		}
	} else {
		style := opts.Config.Render.Style
		if opts.Plain {
			style = "plain"
		}
		render := NewRenderer(style)
		fmt.Fprint(out, render(report.Markdown(diff)))
	}

	if diff.HasChanges() {
		return 1, nil
	}
	return 0, nil
}

func newDiffer(cfg Config, verbose bool) *tracediff.Differ {
	opts := []tracediff.Option{
		tracediff.WithSensitiveKeys(cfg.SensitiveKeys...),
	}
	if cfg.PreviewLength > 0 {
		opts = append(opts, tracediff.WithPreviewLength(cfg.PreviewLength))
	}
	if verbose {
		opts = append(opts, tracediff.WithLogger(logging.New(slog.LevelDebug)))
	}
	return tracediff.New(opts...)
}
