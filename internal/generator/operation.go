package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/tbredin/siegmeyer/internal/filesystem"
)

// DefaultFileMode is used when an operation leaves Mode unset.
const DefaultFileMode fs.FileMode = 0644

// DefaultDirMode is used for every directory an operation creates.
const DefaultDirMode fs.FileMode = 0755

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it and
// has no side effects. force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Copy Gemfile (212 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// FilePreview is the content an operation would leave at Path.
type FilePreview struct {
	Path    string
	Content []byte
}

// Previewer is implemented by operations that write files, so dry runs can
// show what would change.
type Previewer interface {
	Previews() ([]FilePreview, error)
}

// MkdirOp creates a single directory.
//
// The parent must already exist; an existing directory at Path is fine.
type MkdirOp struct {
	Path string // Directory to create
	Root string // Optional: descriptions show Path relative to Root
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", op.Path)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot stat %s: %w", op.Path, err)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	err := os.Mkdir(op.Path, DefaultDirMode)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		if info, statErr := os.Stat(op.Path); statErr == nil && info.IsDir() {
			return nil
		}
	}
	return fmt.Errorf("cannot create directory %s: %w", op.Path, err)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create %s/", display(op.Root, op.Path))
}

// CopyFileOp copies one file out of an asset bundle byte for byte.
//
// Validation behavior:
//   - The source must exist in Source and be a regular file
//   - Checks for file conflicts unless force=true
//
// Execution behavior:
//   - Fails if the destination directory does not exist
//   - Overwrites an existing destination file
type CopyFileOp struct {
	Source fs.FS       // Asset bundle
	From   string      // Slash-separated path inside Source
	Path   string      // Destination file path
	Mode   fs.FileMode // File permissions (default 0644)
	Root   string      // Optional: descriptions show Path relative to Root
}

func (op *CopyFileOp) Validate(ctx context.Context, force bool) error {
	info, err := fs.Stat(op.Source, op.From)
	if err != nil {
		return fmt.Errorf("missing asset %s: %w", op.From, err)
	}
	if info.IsDir() {
		return fmt.Errorf("asset %s is a directory", op.From)
	}
	return checkDestination(op.Path, force)
}

func (op *CopyFileOp) Execute(ctx context.Context) error {
	data, err := fs.ReadFile(op.Source, op.From)
	if err != nil {
		return fmt.Errorf("reading asset %s: %w", op.From, err)
	}
	return writeFile(op.Path, data, op.Mode)
}

func (op *CopyFileOp) Previews() ([]FilePreview, error) {
	data, err := fs.ReadFile(op.Source, op.From)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", op.From, err)
	}
	return []FilePreview{{Path: op.Path, Content: data}}, nil
}

func (op *CopyFileOp) Description() string {
	return fmt.Sprintf("Copy %s", display(op.Root, op.Path))
}

// CopyDirOp recursively copies a directory out of an asset bundle,
// preserving its relative structure.
//
// The destination directory itself and any subdirectories are created as
// needed, but the destination's parent must already exist.
type CopyDirOp struct {
	Source fs.FS                  // Asset bundle
	From   string                 // Slash-separated directory inside Source
	Path   string                 // Destination directory
	Mode   fs.FileMode            // Mode for copied files (default 0644)
	Walk   filesystem.WalkOptions // Which bundle entries to skip
	Root   string                 // Optional: descriptions show Path relative to Root
}

func (op *CopyDirOp) Validate(ctx context.Context, force bool) error {
	info, err := fs.Stat(op.Source, op.From)
	if err != nil {
		return fmt.Errorf("missing asset %s: %w", op.From, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset %s is not a directory", op.From)
	}

	files, err := filesystem.Files(op.Source, op.From, op.Walk)
	if err != nil {
		return fmt.Errorf("walking asset %s: %w", op.From, err)
	}
	for _, rel := range files {
		if err := checkDestination(filepath.Join(op.Path, filepath.FromSlash(rel)), force); err != nil {
			return err
		}
	}
	return nil
}

func (op *CopyDirOp) Execute(ctx context.Context) error {
	if err := requireDir(filepath.Dir(op.Path)); err != nil {
		return err
	}

	return filesystem.WalkFS(op.Source, op.From, op.Walk, func(p string, d fs.DirEntry) error {
		target := op.target(p)

		if d.IsDir() {
			if err := os.MkdirAll(target, DefaultDirMode); err != nil {
				return fmt.Errorf("cannot create directory %s: %w", target, err)
			}
			return nil
		}

		data, err := fs.ReadFile(op.Source, p)
		if err != nil {
			return fmt.Errorf("reading asset %s: %w", p, err)
		}
		return writeFile(target, data, op.Mode)
	})
}

func (op *CopyDirOp) Previews() ([]FilePreview, error) {
	files, err := filesystem.Files(op.Source, op.From, op.Walk)
	if err != nil {
		return nil, fmt.Errorf("walking asset %s: %w", op.From, err)
	}

	previews := make([]FilePreview, 0, len(files))
	for _, rel := range files {
		data, err := fs.ReadFile(op.Source, path.Join(op.From, rel))
		if err != nil {
			return nil, fmt.Errorf("reading asset %s: %w", rel, err)
		}
		previews = append(previews, FilePreview{
			Path:    filepath.Join(op.Path, filepath.FromSlash(rel)),
			Content: data,
		})
	}
	return previews, nil
}

func (op *CopyDirOp) Description() string {
	return fmt.Sprintf("Copy %s/", display(op.Root, op.Path))
}

// target maps a bundle path below From to its destination path.
func (op *CopyDirOp) target(p string) string {
	rel := path.Clean(p[len(op.From):])
	return filepath.Join(op.Path, filepath.FromSlash(rel))
}

// RenderOp renders a template out of an asset bundle and writes the result.
type RenderOp struct {
	Renderer *Renderer
	Source   fs.FS             // Asset bundle
	From     string            // Slash-separated template path inside Source
	Path     string            // Destination file path
	Vars     map[string]string // Placeholder values
	Escape   EscapeFunc        // Optional value escaping for the target format
	Mode     fs.FileMode       // File permissions (default 0644)
	Root     string            // Optional: descriptions show Path relative to Root
}

func (op *RenderOp) Validate(ctx context.Context, force bool) error {
	if op.Renderer == nil {
		return fmt.Errorf("no renderer for template %s", op.From)
	}
	if _, err := fs.Stat(op.Source, op.From); err != nil {
		return fmt.Errorf("missing template %s: %w", op.From, err)
	}
	return checkDestination(op.Path, force)
}

func (op *RenderOp) Execute(ctx context.Context) error {
	content, err := op.render()
	if err != nil {
		return err
	}
	return writeFile(op.Path, content, op.Mode)
}

func (op *RenderOp) Previews() ([]FilePreview, error) {
	content, err := op.render()
	if err != nil {
		return nil, err
	}
	return []FilePreview{{Path: op.Path, Content: content}}, nil
}

func (op *RenderOp) Description() string {
	return fmt.Sprintf("Render %s", display(op.Root, op.Path))
}

func (op *RenderOp) render() ([]byte, error) {
	return op.Renderer.RenderFS(op.Source, op.From, op.Vars, op.Escape)
}

// checkDestination rejects destinations occupied by a directory, and
// existing files unless force is set.
func checkDestination(p string, force bool) error {
	info, err := os.Stat(p)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%s exists and is a directory", p)
	case err == nil && !force:
		return fmt.Errorf("file already exists: %s", p)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cannot stat %s: %w", p, err)
	}
	return nil
}

// requireDir fails unless dir exists and is a directory.
func requireDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("destination directory %s does not exist", dir)
		}
		return fmt.Errorf("cannot stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %s is not a directory", dir)
	}
	return nil
}

func writeFile(p string, data []byte, mode fs.FileMode) error {
	if err := requireDir(filepath.Dir(p)); err != nil {
		return err
	}
	if mode == 0 {
		mode = DefaultFileMode
	}
	if err := os.WriteFile(p, data, mode); err != nil {
		return fmt.Errorf("cannot write %s: %w", p, err)
	}
	return nil
}

func display(root, p string) string {
	if root == "" {
		return p
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}
