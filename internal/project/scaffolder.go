package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tbredin/siegmeyer/internal/filesystem"
	"github.com/tbredin/siegmeyer/internal/generator"
	"github.com/tbredin/siegmeyer/internal/output"
)

// Stage names, in execution order.
const (
	StageDirectories = "directories"
	StageCopies      = "copies"
	StageTemplates   = "templates"
)

// Stage is one step of a scaffold run.
type Stage struct {
	Name string
	Ops  []generator.Operation
}

// ScaffoldOptions configures a scaffold run.
type ScaffoldOptions struct {
	DryRun bool      // Report operations without touching the disk
	Diff   bool      // With DryRun: show a unified diff per changed file
	Writer io.Writer // Progress output (defaults to output.Writer())
}

// Scaffolder lays a Plan down under a project root.
type Scaffolder struct {
	assets   fs.FS
	plan     Plan
	renderer *generator.Renderer
	walk     filesystem.WalkOptions
}

// NewScaffolder creates a scaffolder that reads from assets.
func NewScaffolder(assets fs.FS, plan Plan) *Scaffolder {
	return &Scaffolder{
		assets:   assets,
		plan:     plan,
		renderer: generator.NewRenderer(),
	}
}

// Stages builds the operations for root and pctx, grouped by stage.
func (s *Scaffolder) Stages(root string, pctx Context) []Stage {
	dest := func(rel string) string {
		return filepath.Join(root, filepath.FromSlash(rel))
	}

	dirs := make([]generator.Operation, 0, len(s.plan.Directories))
	for _, d := range s.plan.Directories {
		dirs = append(dirs, &generator.MkdirOp{Path: dest(d), Root: root})
	}

	copies := make([]generator.Operation, 0, len(s.plan.Copies))
	for _, c := range s.plan.Copies {
		if c.Dir {
			copies = append(copies, &generator.CopyDirOp{
				Source: s.assets,
				From:   c.From,
				Path:   dest(c.To),
				Walk:   s.walk,
				Root:   root,
			})
			continue
		}
		copies = append(copies, &generator.CopyFileOp{
			Source: s.assets,
			From:   c.From,
			Path:   dest(c.To),
			Root:   root,
		})
	}

	vars := pctx.Vars()
	templates := make([]generator.Operation, 0, len(s.plan.Templates))
	for _, t := range s.plan.Templates {
		templates = append(templates, &generator.RenderOp{
			Renderer: s.renderer,
			Source:   s.assets,
			From:     t.From,
			Path:     dest(t.To),
			Vars:     vars,
			Escape:   generator.EscapeFor(t.To),
			Root:     root,
		})
	}

	return []Stage{
		{Name: StageDirectories, Ops: dirs},
		{Name: StageCopies, Ops: copies},
		{Name: StageTemplates, Ops: templates},
	}
}

// Scaffold creates directories, copies static assets and renders templates
// under root, one stage after another. root must already exist.
//
// Existing files are overwritten. A failure stops the run and leaves
// whatever was already written in place.
func (s *Scaffolder) Scaffold(ctx context.Context, root string, pctx Context, opts ScaffoldOptions) error {
	if err := s.plan.Validate(); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}
	if err := checkRoot(root); err != nil {
		return err
	}
	if opts.Writer == nil {
		opts.Writer = output.Writer()
	}

	for _, stage := range s.Stages(root, pctx) {
		output.Verbose("Running stage", "stage", stage.Name, "operations", len(stage.Ops))

		err := generator.Execute(ctx, stage.Ops, generator.ExecuteOptions{
			DryRun: opts.DryRun,
			Force:  true,
			Diff:   opts.Diff,
			Writer: opts.Writer,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", stage.Name, err)
		}
	}
	return nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("project root %s does not exist", root)
		}
		return fmt.Errorf("cannot stat project root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project root %s is not a directory", root)
	}
	return nil
}
