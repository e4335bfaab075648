package installer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/tbredin/siegmeyer/internal/exec"
	"github.com/tbredin/siegmeyer/internal/output"
)

// DependenciesInstalled is printed once the front-end commands have finished,
// whether or not they succeeded.
const DependenciesInstalled = "dependencies installed"

// Default commands.
var (
	DefaultDependencies = []string{"npm install", "bower install"}
	DefaultBundler      = "bundle install"
)

var labelColors = []lipgloss.Color{"6", "5", "3", "4", "2"}

// Options configures an Invoker.
type Options struct {
	Dependencies []string  // Front-end commands, run one after another
	Bundler      string    // Run alongside the front-end commands
	Quiet        bool      // Discard command output
	Writer       io.Writer // Labelled command output and messages (defaults to output.Shared())

	// Command replaces os/exec.CommandContext, for tests
	Command exec.CommandFunc
}

// Invoker starts the installers for a project directory.
type Invoker struct {
	registry     *exec.Registry
	dependencies []string
	bundler      string
	quiet        bool
	out          io.Writer
	command      exec.CommandFunc
}

// New creates an Invoker. Empty or duplicate command lines are rejected.
func New(opts Options) (*Invoker, error) {
	out := opts.Writer
	if out == nil {
		out = output.Shared()
	}

	inv := &Invoker{
		registry: exec.NewRegistry(),
		quiet:    opts.Quiet,
		out:      &syncWriter{w: out},
		command:  opts.Command,
	}

	for _, line := range opts.Dependencies {
		cmd, err := newInstallCommand(line, "front-end dependencies")
		if err != nil {
			return nil, fmt.Errorf("dependency command %q: %w", line, err)
		}
		if err := inv.registry.Add(cmd); err != nil {
			return nil, err
		}
		inv.dependencies = append(inv.dependencies, cmd.Name())
	}

	cmd, err := newInstallCommand(opts.Bundler, "Ruby gems")
	if err != nil {
		return nil, fmt.Errorf("bundler command %q: %w", opts.Bundler, err)
	}
	if err := inv.registry.Add(cmd); err != nil {
		return nil, err
	}
	inv.bundler = cmd.Name()

	return inv, nil
}

// Commands returns the configured commands in the order they are started.
func (i *Invoker) Commands() []exec.Runner {
	return i.registry.All()
}

// Install starts both steps in dir and returns a channel that is closed
// when both have finished. Cancelling ctx does not stop them.
func (i *Invoker) Install(ctx context.Context, dir string) <-chan struct{} {
	ctx = context.WithoutCancel(ctx)
	executor := exec.NewExecutor(&exec.Options{
		Dir:     dir,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
		Command: i.command,
	})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for _, name := range i.dependencies {
			i.run(ctx, executor, name)
		}
		fmt.Fprintln(i.out, DependenciesInstalled)
	}()

	go func() {
		defer wg.Done()
		i.run(ctx, executor, i.bundler)
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

// run executes one registered command, labelling its output with the tool
// name. Errors are only logged.
func (i *Invoker) run(ctx context.Context, executor *exec.Executor, name string) {
	output.Verbose("Running installer", "command", name)

	if !i.quiet {
		pw := exec.NewPrefixWriter(i.out, i.label(name), i.color(name))
		executor = executor.WithOutput(pw, pw)
		defer pw.Flush()
	}

	if err := i.registry.Run(ctx, name, executor); err != nil {
		output.Verbose("Installer failed", "command", name, "error", err)
		return
	}
	output.Verbose("Installer finished", "command", name)
}

func (i *Invoker) label(name string) string {
	r, _ := i.registry.Lookup(name)
	return r.(*installCommand).label()
}

func (i *Invoker) color(name string) lipgloss.Color {
	for n, r := range i.registry.All() {
		if r.Name() == name {
			return labelColors[n%len(labelColors)]
		}
	}
	return ""
}

// syncWriter serialises writes from concurrently running commands.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
