package project

import (
	"context"
	"fmt"
)

// Collector gathers the answers for a run.
type Collector interface {
	Collect(ctx context.Context) (Context, error)
}

// Installer starts the dependency installers for a scaffolded project.
// The returned channel is closed once every installer has finished.
type Installer interface {
	Install(ctx context.Context, dir string) <-chan struct{}
}

// PipelineOptions configures a Pipeline run.
type PipelineOptions struct {
	Scaffold    ScaffoldOptions
	SkipInstall bool
}

// Result describes a finished pipeline run.
type Result struct {
	Context Context
	// Installed is closed when the installers finish. It is nil when
	// installation was skipped.
	Installed <-chan struct{}
}

// Pipeline runs a generation from first question to installers.
type Pipeline struct {
	collector  Collector
	scaffolder *Scaffolder
	installer  Installer
}

// NewPipeline wires the pipeline stages together. installer may be nil,
// in which case installation is always skipped.
func NewPipeline(collector Collector, scaffolder *Scaffolder, installer Installer) *Pipeline {
	return &Pipeline{
		collector:  collector,
		scaffolder: scaffolder,
		installer:  installer,
	}
}

// Run collects answers, scaffolds root and starts the installers.
//
// Installers are started only after every file is in place and are not
// waited for; the caller decides whether to block on Result.Installed.
// Dry runs never start installers.
func (p *Pipeline) Run(ctx context.Context, root string, opts PipelineOptions) (Result, error) {
	pctx, err := p.collector.Collect(ctx)
	if err != nil {
		return Result{}, err
	}

	if err := p.scaffolder.Scaffold(ctx, root, pctx, opts.Scaffold); err != nil {
		return Result{Context: pctx}, fmt.Errorf("scaffolding %s: %w", root, err)
	}

	result := Result{Context: pctx}
	if opts.SkipInstall || opts.Scaffold.DryRun || p.installer == nil {
		return result, nil
	}

	result.Installed = p.installer.Install(ctx, root)
	return result, nil
}
