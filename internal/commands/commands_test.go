package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbredin/siegmeyer/internal/config"
	"github.com/tbredin/siegmeyer/internal/input"
	"github.com/tbredin/siegmeyer/internal/installer"
	"github.com/tbredin/siegmeyer/internal/output"
)

// mockCommand re-runs the test binary as a fake package manager
func mockCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the fake package manager
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) == 0 {
		os.Exit(2)
	}

	fmt.Printf("%s ok\n", strings.Join(args, " "))
	os.Exit(0)
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output.SetWriter(&buf)
	t.Cleanup(func() { output.SetWriter(prev) })
	return &buf
}

func TestRunNew_SkipInstall(t *testing.T) {
	buf := captureOutput(t)
	root := t.TempDir()

	err := runNew(context.Background(), config.Default(), newOptions{
		dir:         root,
		skipInstall: true,
		in:          strings.NewReader("MySite\n"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	var manifest struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "MySite", manifest.Name)

	out := buf.String()
	assert.Contains(t, out, "Generated MySite in "+root)
	assert.Contains(t, out, "npm install")
	assert.Contains(t, out, "gulp serve")
	assert.NotContains(t, out, installer.DependenciesInstalled)
}

func TestRunNew_RunsInstallers(t *testing.T) {
	buf := captureOutput(t)
	root := t.TempDir()

	err := runNew(context.Background(), config.Default(), newOptions{
		dir:     root,
		in:      strings.NewReader("MySite\n"),
		command: mockCommand,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Generated MySite")
	assert.Contains(t, out, "[npm] npm install ok")
	assert.Contains(t, out, "[bower] bower install ok")
	assert.Contains(t, out, "[bundle] bundle install ok")
	assert.Contains(t, out, installer.DependenciesInstalled)
}

func TestRunNew_SkipFromConfig(t *testing.T) {
	buf := captureOutput(t)
	cfg := config.Default()
	cfg.Install.Skip = true

	err := runNew(context.Background(), cfg, newOptions{
		dir:     t.TempDir(),
		in:      strings.NewReader("x\n"),
		command: mockCommand,
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), installer.DependenciesInstalled)
}

func TestRunNew_DryRun(t *testing.T) {
	buf := captureOutput(t)
	root := t.TempDir()

	err := runNew(context.Background(), config.Default(), newOptions{
		dir:     root,
		dryRun:  true,
		in:      strings.NewReader("MySite\n"),
		command: mockCommand,
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, buf.String(), "[DRY RUN]")
	assert.NotContains(t, buf.String(), installer.DependenciesInstalled)
}

func TestRunNew_NoInput(t *testing.T) {
	captureOutput(t)
	root := t.TempDir()

	err := runNew(context.Background(), config.Default(), newOptions{
		dir: root,
		in:  strings.NewReader(""),
	})
	require.ErrorIs(t, err, input.ErrNoInput)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunNew_MissingDir(t *testing.T) {
	captureOutput(t)

	err := runNew(context.Background(), config.Default(), newOptions{
		dir:         filepath.Join(t.TempDir(), "missing"),
		skipInstall: true,
		in:          strings.NewReader("x\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRunNew_BadInstallerConfig(t *testing.T) {
	captureOutput(t)
	cfg := config.Default()
	cfg.Install.Bundler = ""

	err := runNew(context.Background(), cfg, newOptions{dir: t.TempDir(), in: strings.NewReader("x\n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuring installers")
}

func TestRunPlan(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, runPlan(config.Default()))

	out := buf.String()
	assert.Contains(t, out, "app/webfonts/")
	assert.Contains(t, out, ".bowerrc ← _bowerrc")
	assert.Contains(t, out, "package.json ← package.json (site_name)")
	assert.Contains(t, out, "bundle install (Ruby gems)")
}

func TestRunConfigInit(t *testing.T) {
	buf := captureOutput(t)
	path := filepath.Join(t.TempDir(), config.FileName)

	require.NoError(t, runConfigInit(path, false, input.NewPrompter(strings.NewReader(""), buf)))
	assert.FileExists(t, path)

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRunConfigInit_KeepsExisting(t *testing.T) {
	buf := captureOutput(t)
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("install:\n  skip: true\n"), 0644))

	require.NoError(t, runConfigInit(path, false, input.NewPrompter(strings.NewReader("n\n"), buf)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "install:\n  skip: true\n", string(data))
	assert.Contains(t, buf.String(), "untouched")
}

func TestRunConfigInit_Force(t *testing.T) {
	buf := captureOutput(t)
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("install:\n  skip: true\n"), 0644))

	require.NoError(t, runConfigInit(path, true, input.NewPrompter(strings.NewReader(""), buf)))

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Install.Skip)
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := RootCmd()
	root.AddCommand(NewCmd(), PlanCmd(), ConfigCmd(), VersionCmd())

	for _, name := range []string{"new", "plan", "config", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestVersionCmd(t *testing.T) {
	buf := captureOutput(t)
	root := RootCmd()
	root.AddCommand(VersionCmd())
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "siegmeyer v")
}
