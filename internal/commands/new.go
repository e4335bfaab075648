package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/tbredin/siegmeyer/internal/assets"
	"github.com/tbredin/siegmeyer/internal/config"
	"github.com/tbredin/siegmeyer/internal/exec"
	"github.com/tbredin/siegmeyer/internal/installer"
	"github.com/tbredin/siegmeyer/internal/output"
	"github.com/tbredin/siegmeyer/internal/project"
)

type newOptions struct {
	dir         string
	skipInstall bool
	dryRun      bool
	diff        bool
	in          io.Reader

	// command replaces os/exec.CommandContext for the installers, for tests
	command exec.CommandFunc
}

// NewCmd creates and returns the 'new' command for generating a site
func NewCmd() *cobra.Command {
	opts := newOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new static site",
		Long: heredoc.Doc(`
			Generates a static site skeleton in an existing directory.

			You are asked for the app's name, which ends up in package.json,
			bower.json and the page head. Existing files are overwritten.

			Example:
			  mkdir mysite && cd mysite
			  siegmeyer new
		`),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			opts.in = cmd.InOrStdin()
			if err := runNew(cmd.Context(), cfg, opts); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "Directory to generate into (must exist)")
	cmd.Flags().BoolVar(&opts.skipInstall, "skip-install", false, "Do not run npm, bower or bundler")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be generated without writing")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "With --dry-run, show a diff for each file that would change")

	return cmd
}

func runNew(ctx context.Context, cfg *config.Config, opts newOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.diff && !opts.dryRun {
		output.Warn("--diff has no effect without --dry-run")
	}

	root, err := filepath.Abs(opts.dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", opts.dir, err)
	}

	inv, err := installer.New(installer.Options{
		Dependencies: cfg.Install.Dependencies,
		Bundler:      cfg.Install.Bundler,
		Quiet:        cfg.Install.Quiet,
		Command:      opts.command,
	})
	if err != nil {
		return fmt.Errorf("configuring installers: %w", err)
	}

	pipeline := project.NewPipeline(
		project.NewPromptCollector(opts.in, output.Writer()),
		project.NewScaffolder(assets.FS(), project.DefaultPlan()),
		inv,
	)

	result, err := pipeline.Run(ctx, root, project.PipelineOptions{
		Scaffold: project.ScaffoldOptions{
			DryRun: opts.dryRun,
			Diff:   opts.diff,
		},
		SkipInstall: opts.skipInstall || cfg.Install.Skip,
	})
	if err != nil {
		return err
	}

	if opts.dryRun {
		output.Info("Dry run: nothing was written")
		return nil
	}

	output.Success(fmt.Sprintf("Generated %s in %s", displayName(result.Context.AppName), root))

	if result.Installed == nil {
		output.Info("Next steps:")
		for _, c := range inv.Commands() {
			output.Step(c.Name())
		}
		output.Step("gulp serve")
		return nil
	}

	if cfg.Install.Quiet && output.IsTTY() {
		if err := exec.WaitWithSpinner(ctx, output.Writer(), "Installing dependencies...", result.Installed); err != nil {
			output.Verbose("Spinner stopped", "error", err)
			<-result.Installed
		}
	} else {
		<-result.Installed
	}

	output.Info("Next steps:")
	output.Step("gulp serve")
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "site"
	}
	return name
}
