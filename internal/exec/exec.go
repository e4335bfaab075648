package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output to drain after the
// process exits or is killed.
const waitDelay = 2 * time.Second

// CommandFunc builds the *exec.Cmd for a tool invocation. The default is
// os/exec.CommandContext, so cancelling ctx kills the process.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Executor runs external commands in a fixed directory and environment.
type Executor struct {
	stdout  io.Writer
	stderr  io.Writer
	env     []string
	dir     string
	command CommandFunc
}

// Options configures an Executor. Nil streams default to os.Stdout and
// os.Stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    []string // Added to the inherited environment
	Dir    string   // Working directory

	// Command replaces os/exec.CommandContext, for tests
	Command CommandFunc
}

// NewExecutor creates an executor. opts may be nil.
func NewExecutor(opts *Options) *Executor {
	e := &Executor{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		command: exec.CommandContext,
	}
	if opts == nil {
		return e
	}

	if opts.Stdout != nil {
		e.stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		e.stderr = opts.Stderr
	}
	if opts.Command != nil {
		e.command = opts.Command
	}
	e.env = opts.Env
	e.dir = opts.Dir
	return e
}

// WithOutput returns a copy of the executor writing to the given streams.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	clone := *e
	clone.stdout = stdout
	clone.stderr = stderr
	return &clone
}

// Dir returns the working directory commands run in.
func (e *Executor) Dir() string {
	return e.dir
}

// Run starts name with args and waits for it to exit.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	return e.run(ctx, Command{Tool: name, Args: args})
}

func (e *Executor) run(ctx context.Context, c Command) error {
	cmd := e.command(ctx, c.Tool, c.Args...)

	cmd.Dir = e.dir
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if env := append(append([]string{}, e.env...), c.Env...); len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("%s cancelled: %w", c.Tool, ctx.Err())
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s not found, is it installed and on PATH? %w", c.Tool, err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s exited with status %d: %w", c, exitErr.ExitCode(), err)
	}
	return fmt.Errorf("running %s: %w", c, err)
}

// Command is one tool invocation, e.g. "bower install".
type Command struct {
	Tool string
	Args []string
	Env  []string // Extra environment, on top of the executor's
	Dir  string   // Overrides the executor's directory when set
}

// ParseCommand splits a command line on whitespace. Quoting is not
// supported.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	return Command{Tool: fields[0], Args: fields[1:]}, nil
}

// Run executes the command with e.
func (c Command) Run(ctx context.Context, e *Executor) error {
	return e.run(ctx, c)
}

// String returns the command line.
func (c Command) String() string {
	return strings.Join(append([]string{c.Tool}, c.Args...), " ")
}
