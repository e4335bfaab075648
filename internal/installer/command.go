package installer

import (
	"context"

	"github.com/tbredin/siegmeyer/internal/exec"
)

// installCommand is one configured command line, e.g. "npm install".
type installCommand struct {
	cmd         exec.Command
	description string
}

func newInstallCommand(line, description string) (*installCommand, error) {
	cmd, err := exec.ParseCommand(line)
	if err != nil {
		return nil, err
	}
	return &installCommand{cmd: cmd, description: description}, nil
}

func (c *installCommand) Name() string {
	return c.cmd.String()
}

func (c *installCommand) Description() string {
	return c.description
}

func (c *installCommand) Run(ctx context.Context, e *exec.Executor) error {
	return c.cmd.Run(ctx, e)
}

// label prefixes every output line of the command.
func (c *installCommand) label() string {
	return "[" + c.cmd.Tool + "] "
}
