package commands

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/tbredin/siegmeyer"
	"github.com/tbredin/siegmeyer/internal/config"
	"github.com/tbredin/siegmeyer/internal/output"
)

// RootCmd creates and returns the root command for the siegmeyer CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "siegmeyer",
		Short: "Static site generator scaffolding for gulp, Sass and bower",
		Long: heredoc.Doc(`
			Siegmeyer generates the skeleton of a static site:
			• app/ directories for images, scripts, styles, templates and webfonts
			• gulpfile, Gemfile, bower and npm manifests
			• nunjucks layout and partials

			It then runs npm install, bower install and bundle install for you.
		`),
		Version: siegmeyer.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", "", fmt.Sprintf("Config file (default ./%s or ~/%s)", config.FileName, config.FileName))

	return cmd
}

// VersionCmd prints the siegmeyer version
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the siegmeyer version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(output.Writer(), "siegmeyer v%s\n", siegmeyer.Version)
		},
	}
}

// loadConfig reads the config selected by the --config flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")

	loader := config.NewLoader()
	cfg, err := loader.Load(file)
	if err != nil {
		return nil, err
	}
	if used := loader.ConfigFileUsed(); used != "" {
		output.Verbose("Loaded config", "file", used)
	}
	return cfg, nil
}
