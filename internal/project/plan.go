package project

import (
	"fmt"
	"path"
	"strings"
)

// CopyEntry copies a bundle file or directory to a path in the project.
type CopyEntry struct {
	From string // Slash-separated path inside the asset bundle
	To   string // Slash-separated path relative to the project root
	Dir  bool   // Copy a whole subtree
}

// TemplateEntry renders a bundle template to a path in the project.
type TemplateEntry struct {
	From string
	To   string
}

// Plan lists everything a run creates, in execution order.
type Plan struct {
	Directories []string
	Copies      []CopyEntry
	Templates   []TemplateEntry
}

// DefaultPlan returns the plan for a gulp/Sass/bower site. Each call
// returns a fresh value.
func DefaultPlan() Plan {
	return Plan{
		Directories: []string{
			"app",
			"app/images",
			"app/scripts",
			"app/styles",
			"app/templates",
			"app/webfonts",
		},
		Copies: []CopyEntry{
			{From: "app/styles", To: "app/styles", Dir: true},
			{From: "app/scripts", To: "app/scripts", Dir: true},
			{From: "app/templates", To: "app/templates", Dir: true},
			{From: "_bowerrc", To: ".bowerrc"},
			{From: "_gitignore", To: ".gitignore"},
			{From: "Gemfile", To: "Gemfile"},
			{From: "Gemfile.lock", To: "Gemfile.lock"},
			{From: "gulpfile.js", To: "gulpfile.js"},
			{From: "editorconfig", To: "editorconfig"},
		},
		Templates: []TemplateEntry{
			{From: "_head.html", To: "app/templates/partials/_head.html"},
			{From: "package.json", To: "package.json"},
			{From: "bower.json", To: "bower.json"},
		},
	}
}

// Validate checks that every path stays inside the project root, that
// directories are listed parent before child, and that every copy and
// template lands at the root or inside a planned directory.
func (p Plan) Validate() error {
	planned := make(map[string]bool, len(p.Directories))
	for _, dir := range p.Directories {
		clean, err := cleanRel(dir)
		if err != nil {
			return err
		}
		if parent := path.Dir(clean); parent != "." && !planned[parent] {
			return fmt.Errorf("directory %s is listed before its parent %s", clean, parent)
		}
		planned[clean] = true
	}

	check := func(kind, from, to string) error {
		if _, err := cleanRel(from); err != nil {
			return fmt.Errorf("%s source: %w", kind, err)
		}
		clean, err := cleanRel(to)
		if err != nil {
			return fmt.Errorf("%s destination: %w", kind, err)
		}
		if !insidePlanned(path.Dir(clean), planned) {
			return fmt.Errorf("%s destination %s is outside the planned directories", kind, clean)
		}
		return nil
	}

	for _, c := range p.Copies {
		if err := check("copy", c.From, c.To); err != nil {
			return err
		}
	}
	for _, t := range p.Templates {
		if err := check("template", t.From, t.To); err != nil {
			return err
		}
	}
	return nil
}

// insidePlanned reports whether dir is the root, a planned directory, or
// somewhere below one.
func insidePlanned(dir string, planned map[string]bool) bool {
	if dir == "." {
		return true
	}
	for dir != "." {
		if planned[dir] {
			return true
		}
		dir = path.Dir(dir)
	}
	return false
}

// cleanRel cleans a slash-separated relative path and rejects anything
// that would escape the project root.
func cleanRel(rel string) (string, error) {
	clean := path.Clean(rel)
	if rel == "" || clean == "." || clean == ".." {
		return "", fmt.Errorf("invalid path %q", rel)
	}
	if path.IsAbs(clean) || strings.HasPrefix(clean, "../") || strings.Contains(clean, `\`) {
		return "", fmt.Errorf("invalid path %q", rel)
	}
	return clean, nil
}
