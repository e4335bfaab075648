package filesystem

import (
	"io/fs"
	"path"
	"strings"
)

// DefaultIgnoreDirs are common directories to skip during traversal
var DefaultIgnoreDirs = []string{
	"node_modules", "bower_components", ".git", ".svn", ".hg",
	".sass-cache", ".idea", ".vscode",
}

// DefaultIgnorePatterns are file patterns that never belong in a project
var DefaultIgnorePatterns = []string{
	".DS_Store", "Thumbs.db", "*.swp", "*~",
}

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs     []string // Directories to skip (nil: DefaultIgnoreDirs)
	IgnorePatterns []string // File patterns to skip (nil: DefaultIgnorePatterns)
	SkipHidden     bool     // Skip dot files and dot directories
}

// WalkFS traverses the subtree of fsys rooted at root.
// The visitor is called for each file and directory, root included, with
// slash-separated paths as fs.WalkDir produces them.
// Return fs.SkipDir from visitor to skip a directory.
func WalkFS(fsys fs.FS, root string, opts WalkOptions, visitor func(path string, d fs.DirEntry) error) error {
	ignoreDirs := opts.IgnoreDirs
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}
	ignorePatterns := opts.IgnorePatterns
	if ignorePatterns == nil {
		ignorePatterns = DefaultIgnorePatterns
	}

	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if p != root {
			name := d.Name()

			if opts.SkipHidden && strings.HasPrefix(name, ".") {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				for _, ignore := range ignoreDirs {
					if name == ignore {
						return fs.SkipDir
					}
				}
			} else {
				for _, pattern := range ignorePatterns {
					if matched, _ := path.Match(pattern, name); matched {
						return nil
					}
				}
			}
		}

		return visitor(p, d)
	})
}

// Files returns the regular files below root, relative to root, in walk order.
func Files(fsys fs.FS, root string, opts WalkOptions) ([]string, error) {
	var files []string
	err := WalkFS(fsys, root, opts, func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		files = append(files, rel)
		return nil
	})
	return files, err
}
