package commands

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbredin/siegmeyer/internal/assets"
	"github.com/tbredin/siegmeyer/internal/config"
	"github.com/tbredin/siegmeyer/internal/generator"
	"github.com/tbredin/siegmeyer/internal/installer"
	"github.com/tbredin/siegmeyer/internal/output"
	"github.com/tbredin/siegmeyer/internal/project"
)

// PlanCmd creates and returns the 'plan' command, which lists what 'new' creates
func PlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "List the directories, files and installers 'new' uses",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if err := runPlan(cfg); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}
}

func runPlan(cfg *config.Config) error {
	plan := project.DefaultPlan()
	if err := plan.Validate(); err != nil {
		return err
	}
	bundle := assets.FS()

	output.Info("Directories:")
	for _, d := range plan.Directories {
		output.Step(d + "/")
	}

	output.Info("Copies:")
	for _, c := range plan.Copies {
		from, to := c.From, c.To
		if c.Dir {
			from, to = from+"/", to+"/"
		}
		output.Step(fmt.Sprintf("%s ← %s", to, from))
	}

	output.Info("Templates:")
	for _, t := range plan.Templates {
		src, err := fs.ReadFile(bundle, t.From)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", t.From, err)
		}
		keys := generator.Placeholders(string(src))
		output.Step(fmt.Sprintf("%s ← %s (%s)", t.To, t.From, strings.Join(keys, ", ")))
	}

	inv, err := installer.New(installer.Options{
		Dependencies: cfg.Install.Dependencies,
		Bundler:      cfg.Install.Bundler,
	})
	if err != nil {
		return fmt.Errorf("configuring installers: %w", err)
	}

	output.Info("Installers:")
	if cfg.Install.Skip {
		output.Step("(skipped by config)")
	}
	for _, c := range inv.Commands() {
		output.Step(fmt.Sprintf("%s (%s)", c.Name(), c.Description()))
	}
	return nil
}
