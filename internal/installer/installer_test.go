package installer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand re-runs the test binary as a fake package manager
func mockCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the fake package manager. Every invocation is
// appended to calls.log in its working directory.
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

	f, err := os.OpenFile("calls.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		os.Exit(3)
	}
	fmt.Fprintln(f, strings.Join(args, " "))
	f.Close()

	switch args[0] {
	case "fail":
		fmt.Fprintln(os.Stderr, "something broke")
		os.Exit(1)
	default:
		fmt.Printf("%s done\n", args[0])
		os.Exit(0)
	}
}

// lockedBuffer is a bytes.Buffer safe to read while installers write.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("installers did not finish")
	}
}

func calls(t *testing.T, dir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "calls.log"))
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func newInvoker(t *testing.T, out *lockedBuffer, deps []string, bundler string) *Invoker {
	t.Helper()
	inv, err := New(Options{
		Dependencies: deps,
		Bundler:      bundler,
		Writer:       out,
		Command:      mockCommand,
	})
	require.NoError(t, err)
	return inv
}

func TestInstall_RunsEveryCommand(t *testing.T) {
	dir := t.TempDir()
	out := &lockedBuffer{}
	inv := newInvoker(t, out, DefaultDependencies, DefaultBundler)

	wait(t, inv.Install(context.Background(), dir))

	got := calls(t, dir)
	assert.ElementsMatch(t, []string{"npm install", "bower install", "bundle install"}, got)
	assert.Less(t, indexOf(got, "npm install"), indexOf(got, "bower install"))
	assert.Contains(t, out.String(), DependenciesInstalled)
}

func TestInstall_LabelsOutput(t *testing.T) {
	dir := t.TempDir()
	out := &lockedBuffer{}
	inv := newInvoker(t, out, DefaultDependencies, DefaultBundler)

	wait(t, inv.Install(context.Background(), dir))

	text := out.String()
	assert.Contains(t, text, "[npm] npm done")
	assert.Contains(t, text, "[bower] bower done")
	assert.Contains(t, text, "[bundle] bundle done")
}

func TestInstall_DependencyFailureStillRunsBundler(t *testing.T) {
	dir := t.TempDir()
	out := &lockedBuffer{}
	inv := newInvoker(t, out, []string{"fail install", "bower install"}, DefaultBundler)

	wait(t, inv.Install(context.Background(), dir))

	got := calls(t, dir)
	assert.Contains(t, got, "fail install")
	assert.Contains(t, got, "bower install")
	assert.Contains(t, got, "bundle install")
	assert.Contains(t, out.String(), DependenciesInstalled)
}

func TestInstall_BundlerFailureIgnored(t *testing.T) {
	dir := t.TempDir()
	out := &lockedBuffer{}
	inv := newInvoker(t, out, DefaultDependencies, "fail install")

	wait(t, inv.Install(context.Background(), dir))

	assert.Contains(t, calls(t, dir), "fail install")
	assert.Contains(t, out.String(), DependenciesInstalled)
}

func TestInstall_MissingTools(t *testing.T) {
	out := &lockedBuffer{}
	inv, err := New(Options{
		Dependencies: []string{"siegmeyer-no-such-tool install"},
		Bundler:      "siegmeyer-no-such-bundler install",
		Writer:       out,
	})
	require.NoError(t, err)

	wait(t, inv.Install(context.Background(), t.TempDir()))
	assert.Contains(t, out.String(), DependenciesInstalled)
}

func TestInstall_Quiet(t *testing.T) {
	dir := t.TempDir()
	out := &lockedBuffer{}
	inv, err := New(Options{
		Dependencies: DefaultDependencies,
		Bundler:      DefaultBundler,
		Quiet:        true,
		Writer:       out,
		Command:      mockCommand,
	})
	require.NoError(t, err)

	wait(t, inv.Install(context.Background(), dir))

	assert.NotContains(t, out.String(), "npm done")
	assert.Equal(t, DependenciesInstalled+"\n", out.String())
	assert.Len(t, calls(t, dir), 3)
}

func TestInstall_IgnoresCancellation(t *testing.T) {
	dir := t.TempDir()
	out := &lockedBuffer{}
	inv := newInvoker(t, out, DefaultDependencies, DefaultBundler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wait(t, inv.Install(ctx, dir))
	assert.Len(t, calls(t, dir), 3)
}

func TestInstall_NoDependencies(t *testing.T) {
	dir := t.TempDir()
	out := &lockedBuffer{}
	inv := newInvoker(t, out, nil, DefaultBundler)

	wait(t, inv.Install(context.Background(), dir))

	assert.Equal(t, []string{"bundle install"}, calls(t, dir))
	assert.Contains(t, out.String(), DependenciesInstalled)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name: "defaults",
			opts: Options{Dependencies: DefaultDependencies, Bundler: DefaultBundler},
		},
		{
			name:    "empty dependency",
			opts:    Options{Dependencies: []string{"  "}, Bundler: DefaultBundler},
			wantErr: "empty command",
		},
		{
			name:    "empty bundler",
			opts:    Options{Dependencies: DefaultDependencies},
			wantErr: "bundler command",
		},
		{
			name:    "duplicate",
			opts:    Options{Dependencies: []string{"npm install", "npm  install"}, Bundler: DefaultBundler},
			wantErr: "already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCommands(t *testing.T) {
	inv, err := New(Options{Dependencies: DefaultDependencies, Bundler: DefaultBundler})
	require.NoError(t, err)

	cmds := inv.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, "npm install", cmds[0].Name())
	assert.Equal(t, "bower install", cmds[1].Name())
	assert.Equal(t, "bundle install", cmds[2].Name())
	assert.Equal(t, "Ruby gems", cmds[2].Description())
}
