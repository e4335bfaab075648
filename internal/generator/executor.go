package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aymanbagabas/go-udiff"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Diff   bool      // With DryRun: print a unified diff for files that would change
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute runs operations with validation
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Execute or report
	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			if opts.Diff {
				if err := writeDiffs(opts.Writer, op); err != nil {
					return err
				}
			}
			continue
		}

		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return nil
}

// writeDiffs prints what a file-writing operation would change on disk.
// New files are diffed against empty content.
func writeDiffs(w io.Writer, op Operation) error {
	p, ok := op.(Previewer)
	if !ok {
		return nil
	}

	previews, err := p.Previews()
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	for _, pv := range previews {
		existing, err := os.ReadFile(pv.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("preview failed: %w", err)
		}
		if bytes.Equal(existing, pv.Content) {
			continue
		}
		fmt.Fprint(w, udiff.Unified(pv.Path, pv.Path, string(existing), string(pv.Content)))
	}
	return nil
}
