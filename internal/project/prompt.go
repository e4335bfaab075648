package project

import (
	"context"
	"fmt"
	"io"

	"github.com/tbredin/siegmeyer"
	"github.com/tbredin/siegmeyer/internal/input"
	"github.com/tbredin/siegmeyer/internal/output"
)

// AppNameQuestion is the only question a run asks.
const AppNameQuestion = "What is your app's name?"

// PromptCollector greets the user and asks for the app name.
type PromptCollector struct {
	prompter *input.Prompter
	out      io.Writer
	version  string
	width    int
}

// NewPromptCollector creates a collector reading answers from in and
// writing the greeting and question to out.
func NewPromptCollector(in io.Reader, out io.Writer) *PromptCollector {
	if out == nil {
		out = output.Writer()
	}
	return &PromptCollector{
		prompter: input.NewPrompter(in, out),
		out:      out,
		version:  siegmeyer.Version,
		width:    output.TerminalWidth(),
	}
}

// Collect shows the banner and returns the answer as a Context.
// An empty answer is kept as is. If no answer can be read the error wraps
// input.ErrNoInput.
func (c *PromptCollector) Collect(ctx context.Context) (Context, error) {
	input.Banner(c.out, c.version, c.width)

	name, err := c.prompter.Ask(AppNameQuestion)
	if err != nil {
		return Context{}, fmt.Errorf("reading app name: %w", err)
	}

	output.Verbose("Collected answers", "app_name", name)
	return NewContext(name), nil
}
