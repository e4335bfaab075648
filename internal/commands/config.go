package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tbredin/siegmeyer/internal/config"
	"github.com/tbredin/siegmeyer/internal/input"
	"github.com/tbredin/siegmeyer/internal/output"
)

// ConfigCmd creates and returns the 'config' command group
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the siegmeyer config file",
	}

	cmd.AddCommand(configInitCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			prompter := input.NewPrompter(cmd.InOrStdin(), output.Writer())
			if err := runConfigInit(path, force, prompter); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&path, "path", config.FileName, "Where to write the config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file without asking")

	return cmd
}

func runConfigInit(path string, force bool, prompter *input.Prompter) error {
	if _, err := os.Stat(path); err == nil && !force {
		if !prompter.Confirm(fmt.Sprintf("%s exists. Overwrite?", path), false) {
			output.Info("Left existing config untouched")
			return nil
		}
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	output.Success(fmt.Sprintf("Wrote %s", path))
	return nil
}
